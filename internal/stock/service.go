package stock

import (
	"errors"
	"time"
)

var ErrMissingFields = errors.New("missing required fields")

// presetNames are always-known ingredients that never become learned
// shortcuts: the operator types them constantly anyway.
var presetNames = map[string]bool{
	"小臭":  true,
	"鴨血":  true,
	"高麗菜": true,
	"豆卷":  true,
	"王子麵": true,
}

// quickPresets head the quick-add list, ahead of learned items.
var quickPresets = []FrequentStockItem{
	{Name: "小臭", Unit: "包"},
	{Name: "鴨血", Unit: "片"},
	{Name: "王子麵", Unit: "箱"},
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Append records a restocking event. The first use of a non-preset
// ingredient name registers it as a frequent item for faster re-entry.
func (s *Service) Append(name string, quantity float64, unit string, cost int) (*StockEntry, error) {
	if name == "" || quantity == 0 || cost == 0 {
		return nil, ErrMissingFields
	}
	if unit == "" {
		unit = DefaultUnit
	}

	now := s.now()
	entry := &StockEntry{
		ID:        NewID(now),
		Timestamp: now,
		Name:      name,
		Quantity:  quantity,
		Unit:      unit,
		Cost:      cost,
	}

	if err := s.repo.Append(entry); err != nil {
		return nil, err
	}

	if !presetNames[name] {
		// AddFrequent dedups by name, so re-learning is harmless.
		if err := s.repo.AddFrequent(FrequentStockItem{Name: name, Unit: unit}); err != nil {
			return nil, err
		}
	}
	return entry, nil
}

// Update edits the date, quantity and cost of an entry. The name is
// immutable after creation by policy.
func (s *Service) Update(id string, ts time.Time, quantity float64, cost int) (*StockEntry, error) {
	entry, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}

	entry.Timestamp = ts
	entry.Quantity = quantity
	entry.Cost = cost

	if err := s.repo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *Service) List() ([]*StockEntry, error) {
	return s.repo.List()
}

// DayGroup is one calendar day of restocking history.
type DayGroup struct {
	Date    string        `json:"date"`
	Entries []*StockEntry `json:"entries"`
}

// ListGroupedByDay buckets history per local calendar day, days in
// first-seen order.
func (s *Service) ListGroupedByDay() ([]DayGroup, error) {
	entries, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	var groups []DayGroup
	index := make(map[string]int)
	for _, e := range entries {
		day := e.Timestamp.Local().Format("2006/01/02")
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Date: day})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups, nil
}

// QuickItems is the quick-add list: fixed presets first, then every
// learned frequent item.
func (s *Service) QuickItems() ([]FrequentStockItem, error) {
	frequent, err := s.repo.ListFrequent()
	if err != nil {
		return nil, err
	}
	out := make([]FrequentStockItem, 0, len(quickPresets)+len(frequent))
	out = append(out, quickPresets...)
	out = append(out, frequent...)
	return out, nil
}
