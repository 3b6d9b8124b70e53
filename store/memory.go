package store

import (
	"context"
	"sort"

	"app/models"
)

// Memory is an in-memory Store over fixed slices of records. It backs the
// reporting engine's tests and mirrors the grouping semantics of the
// Postgres implementation.
type Memory struct {
	Sales     []models.Sale
	Stock     []models.StockItem
	Customers []models.Customer
}

// NewMemory builds a Memory store from record slices.
func NewMemory(sales []models.Sale, stock []models.StockItem, customers []models.Customer) *Memory {
	return &Memory{Sales: sales, Stock: stock, Customers: customers}
}

// matches reports whether a completed sale falls inside the filter window
// and passes the customer filter. Category and product filters apply per
// line item, see matchingItems.
func (m *Memory) matches(s models.Sale, f SalesFilter) bool {
	if s.Status != models.SaleStatusCompleted {
		return false
	}
	if !f.Start.IsZero() && s.SaleDate.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && s.SaleDate.After(f.End) {
		return false
	}
	if f.CustomerID != "" {
		if s.CustomerID == nil || *s.CustomerID != f.CustomerID {
			return false
		}
	}
	return true
}

// matchingItems returns the line items of a sale that pass the category and
// product filters.
func matchingItems(s models.Sale, f SalesFilter) []models.SaleItem {
	if f.Category == "" && f.ProductID == "" {
		return s.Items
	}
	items := make([]models.SaleItem, 0, len(s.Items))
	for _, it := range s.Items {
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.ProductID != "" && it.ProductID != f.ProductID {
			continue
		}
		items = append(items, it)
	}
	return items
}

// saleRevenue is the revenue a sale contributes under the filter: the full
// sale total when no line filter is set, otherwise the matching line subtotals.
func saleRevenue(s models.Sale, f SalesFilter) (float64, int, bool) {
	if f.Category == "" && f.ProductID == "" {
		qty := 0
		for _, it := range s.Items {
			qty += it.QuantitySold
		}
		return s.TotalAmount, qty, true
	}
	items := matchingItems(s, f)
	if len(items) == 0 {
		return 0, 0, false
	}
	var revenue float64
	qty := 0
	for _, it := range items {
		revenue += it.Subtotal
		qty += it.QuantitySold
	}
	return revenue, qty, true
}

func (m *Memory) SalesSummary(_ context.Context, f SalesFilter) (SalesSummary, error) {
	var out SalesSummary
	for _, s := range m.Sales {
		if !m.matches(s, f) {
			continue
		}
		revenue, qty, ok := saleRevenue(s, f)
		if !ok {
			continue
		}
		out.Orders++
		out.Items += qty
		out.Revenue += revenue
	}
	return out, nil
}

func (m *Memory) bucketByKey(f SalesFilter, key func(models.Sale) string) []models.TimeBucket {
	byKey := make(map[string]*models.TimeBucket)
	order := []string{}
	for _, s := range m.Sales {
		if !m.matches(s, f) {
			continue
		}
		revenue, qty, ok := saleRevenue(s, f)
		if !ok {
			continue
		}
		k := key(s)
		b, exists := byKey[k]
		if !exists {
			b = &models.TimeBucket{Key: k}
			byKey[k] = b
			order = append(order, k)
		}
		b.Orders++
		b.Items += qty
		b.Revenue += revenue
	}
	sort.Strings(order)
	out := make([]models.TimeBucket, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	return out
}

func (m *Memory) SalesByDay(_ context.Context, f SalesFilter) ([]models.TimeBucket, error) {
	return m.bucketByKey(f, func(s models.Sale) string {
		return s.SaleDate.Format("2006-01-02")
	}), nil
}

func (m *Memory) SalesByHour(_ context.Context, f SalesFilter) ([]models.TimeBucket, error) {
	return m.bucketByKey(f, func(s models.Sale) string {
		return s.SaleDate.Format("15")
	}), nil
}

// dimBuckets aggregates matching line items under a dimension key, keeping
// first-seen order for entries with equal revenue.
func (m *Memory) dimBuckets(f SalesFilter, key func(models.SaleItem) (id, name string)) []models.DimensionBucket {
	byKey := make(map[string]*models.DimensionBucket)
	order := []string{}
	for _, s := range m.Sales {
		if !m.matches(s, f) {
			continue
		}
		seen := make(map[string]bool)
		for _, it := range matchingItems(s, f) {
			id, name := key(it)
			b, exists := byKey[id]
			if !exists {
				b = &models.DimensionBucket{ID: id, Name: name}
				byKey[id] = b
				order = append(order, id)
			}
			b.Quantity += it.QuantitySold
			b.Revenue += it.Subtotal
			if !seen[id] {
				b.Orders++
				seen[id] = true
			}
		}
	}
	out := make([]models.DimensionBucket, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}

func (m *Memory) SalesByProduct(_ context.Context, f SalesFilter) ([]models.DimensionBucket, error) {
	return m.dimBuckets(f, func(it models.SaleItem) (string, string) {
		return it.ProductID, it.ProductName
	}), nil
}

func (m *Memory) SalesByCategory(_ context.Context, f SalesFilter) ([]models.DimensionBucket, error) {
	return m.dimBuckets(f, func(it models.SaleItem) (string, string) {
		return it.Category, it.Category
	}), nil
}

func (m *Memory) SalesByCustomer(_ context.Context, f SalesFilter) ([]models.DimensionBucket, error) {
	names := make(map[string]string, len(m.Customers))
	for _, c := range m.Customers {
		names[c.ID] = c.Name
	}
	byKey := make(map[string]*models.DimensionBucket)
	order := []string{}
	for _, s := range m.Sales {
		if !m.matches(s, f) || s.CustomerID == nil {
			continue
		}
		revenue, qty, ok := saleRevenue(s, f)
		if !ok {
			continue
		}
		id := *s.CustomerID
		b, exists := byKey[id]
		if !exists {
			name := names[id]
			if name == "" {
				name = id
			}
			b = &models.DimensionBucket{ID: id, Name: name}
			byKey[id] = b
			order = append(order, id)
		}
		b.Orders++
		b.Quantity += qty
		b.Revenue += revenue
	}
	out := make([]models.DimensionBucket, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out, nil
}

func (m *Memory) SalesByPayment(_ context.Context, f SalesFilter) ([]models.PaymentBucket, error) {
	byKey := make(map[string]*models.PaymentBucket)
	order := []string{}
	for _, s := range m.Sales {
		if !m.matches(s, f) {
			continue
		}
		revenue, _, ok := saleRevenue(s, f)
		if !ok {
			continue
		}
		b, exists := byKey[s.PaymentType]
		if !exists {
			b = &models.PaymentBucket{Method: s.PaymentType}
			byKey[s.PaymentType] = b
			order = append(order, s.PaymentType)
		}
		b.Orders++
		b.Revenue += revenue
	}
	out := make([]models.PaymentBucket, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out, nil
}

func (m *Memory) StockItems(_ context.Context, category string) ([]models.StockItem, error) {
	items := make([]models.StockItem, 0, len(m.Stock))
	for _, it := range m.Stock {
		if category != "" && it.Category != category {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

func (m *Memory) DailyUnitsSold(_ context.Context, f SalesFilter) (map[string]float64, error) {
	days := 1.0
	if !f.Start.IsZero() && !f.End.IsZero() {
		if d := f.End.Sub(f.Start).Hours() / 24; d >= 1 {
			days = d
		}
	}
	units := make(map[string]float64)
	for _, s := range m.Sales {
		if !m.matches(s, f) {
			continue
		}
		for _, it := range matchingItems(s, f) {
			units[it.ProductID] += float64(it.QuantitySold)
		}
	}
	for id := range units {
		units[id] /= days
	}
	return units, nil
}
