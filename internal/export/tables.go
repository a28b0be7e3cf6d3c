package export

import (
	"github.com/HRU007/tofu-pos/internal/orders"
	"github.com/HRU007/tofu-pos/internal/stock"
)

// SalesTable flattens the full order history into the report's first
// sheet: one row per product, sold count aggregated across all order
// items, products in first-seen order.
func SalesTable(records []*orders.OrderRecord) [][]interface{} {
	type stat struct {
		count int
		price int
	}
	stats := make(map[string]*stat)
	var names []string

	for _, o := range records {
		for _, it := range o.Items {
			s, ok := stats[it.Dish.Name]
			if !ok {
				s = &stat{price: it.Dish.Price}
				stats[it.Dish.Name] = s
				names = append(names, it.Dish.Name)
			}
			s.count++
		}
	}

	rows := [][]interface{}{
		{"商品名稱", "售出數量", "單價", "總額"},
	}
	for _, name := range names {
		s := stats[name]
		rows = append(rows, []interface{}{name, s.count, s.price, s.count * s.price})
	}
	return rows
}

// StockTable is the second sheet: one row per restocking event.
func StockTable(entries []*stock.StockEntry) [][]interface{} {
	rows := [][]interface{}{
		{"日期", "品項", "數量", "單位", "成本"},
	}
	for _, e := range entries {
		rows = append(rows, []interface{}{
			e.Timestamp.Local().Format("2006/01/02"),
			e.Name,
			e.Quantity,
			e.Unit,
			e.Cost,
		})
	}
	return rows
}
