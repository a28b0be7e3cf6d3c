package catalog

// Dish is a fixed menu entry. Reference data only, defined at process
// start and never mutated.
type Dish struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// SpiceLevel is one of the selectable heat levels. Hint carries the
// presentation color used by the front end.
type SpiceLevel struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Hint  string `json:"hint"`
}

// Addon is an optional extra priced per unit.
type Addon struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// DefaultSpice is preselected whenever a dish configuration starts.
const DefaultSpice = "微辣"

var Dishes = []Dish{
	{ID: "m1", Name: "麻辣招牌", Price: 100},
	{ID: "m2", Name: "麻辣總匯", Price: 80},
	{ID: "m4", Name: "綜合煲", Price: 60},
	{ID: "m8", Name: "綜合麵", Price: 60},
	{ID: "m3", Name: "香豆腐煲", Price: 60},
	{ID: "m7", Name: "香豆腐麵", Price: 60},
	{ID: "m5", Name: "鴨血煲", Price: 60},
	{ID: "m9", Name: "鴨血麵", Price: 60},
	{ID: "m10", Name: "乾泡麵", Price: 60},
	{ID: "m6", Name: "豬肉麵", Price: 60},
}

var SpiceLevels = []SpiceLevel{
	{ID: "大辣", Label: "大辣", Hint: "bg-red-600"},
	{ID: "中辣", Label: "中辣", Hint: "bg-red-500"},
	{ID: "小辣", Label: "小辣", Hint: "bg-red-400"},
	{ID: "微辣", Label: "微辣", Hint: "bg-orange-300"},
	{ID: "不辣", Label: "不辣", Hint: "bg-slate-300"},
}

var Addons = []Addon{
	{ID: "a1", Name: "豬肉片", Price: 30},
	{ID: "a2", Name: "牛肉片", Price: 30},
	{ID: "a3", Name: "臭豆腐", Price: 20},
	{ID: "a4", Name: "鴨血", Price: 20},
	{ID: "a11", Name: "菜", Price: 20},
	{ID: "a5", Name: "金針菇", Price: 20},
	{ID: "a6", Name: "玉米筍", Price: 20},
	{ID: "a12", Name: "餛飩", Price: 30},
	{ID: "a8", Name: "貢丸", Price: 20},
	{ID: "a7", Name: "起司球", Price: 20},
	{ID: "a13", Name: "龍蝦沙拉丸", Price: 20},
	{ID: "a9", Name: "魚蛋", Price: 20},
	{ID: "a14", Name: "蟹肉棒", Price: 20},
	{ID: "a10", Name: "豆皮", Price: 10},
	{ID: "a15", Name: "麻辣湯", Price: 35},
	{ID: "a16", Name: "王子麵", Price: 15},
	{ID: "a17", Name: "烏龍麵", Price: 15},
	{ID: "a18", Name: "冬粉", Price: 15},
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func DishByID(id string) (Dish, bool) {
	for _, d := range Dishes {
		if d.ID == id {
			return d, true
		}
	}
	return Dish{}, false
}

func AddonByID(id string) (Addon, bool) {
	for _, a := range Addons {
		if a.ID == id {
			return a, true
		}
	}
	return Addon{}, false
}

func SpiceByID(id string) (SpiceLevel, bool) {
	for _, s := range SpiceLevels {
		if s.ID == id {
			return s, true
		}
	}
	return SpiceLevel{}, false
}
