// Package reports computes the shop's analytics reports: time-windowed
// aggregates, top-N rankings, trend classification, inventory health and the
// merged dashboard. Every report is computed fresh per request from the
// read-only store; nothing here is cached or persisted.
package reports

import (
	"context"
	"log"
	"strconv"
	"time"

	"app/models"
	"app/store"
)

// Limit bounds for top-N requests.
const (
	defaultTopN = 10
	maxTopN     = 100
)

// Filters are the recognized report options, as they arrive from the caller.
type Filters struct {
	StartDate string
	EndDate   string
	Category  string
	Customer  string
	Product   string
	Limit     int
}

// Engine computes reports against a Store. It is stateless and safe for
// concurrent use.
type Engine struct {
	store store.Store
	now   func() time.Time
}

// NewEngine builds an Engine over the given store.
func NewEngine(s store.Store) *Engine {
	return &Engine{store: s, now: time.Now}
}

// window resolves the filter's date strings against the current time.
func (e *Engine) window(f Filters) (Window, error) {
	return resolveWindow(f.StartDate, f.EndDate, e.now())
}

// topN validates the limit option, substituting def when unset.
func topN(limit, def int) (int, error) {
	if limit == 0 {
		return def, nil
	}
	if limit < 0 || limit > maxTopN {
		return 0, &InvalidFilterError{Field: "limit", Value: strconv.Itoa(limit), Reason: "must be between 1 and 100"}
	}
	return limit, nil
}

// salesFilter converts report filters plus a resolved window into the store's
// query filter.
func salesFilter(w Window, f Filters) store.SalesFilter {
	return store.SalesFilter{
		Start:      w.Start,
		End:        w.End,
		Category:   f.Category,
		CustomerID: f.Customer,
		ProductID:  f.Product,
	}
}

// queryErr logs a failed store query with its report context and wraps it.
// The cause is preserved for the caller; nothing is retried.
func queryErr(report string, f store.SalesFilter, err error) error {
	log.Printf("[REPORT] %s query failed (start=%s end=%s category=%q customer=%q product=%q): %v",
		report, f.Start.Format(dateLayout), f.End.Format(dateLayout), f.Category, f.CustomerID, f.ProductID, err)
	return &QueryExecutionError{Report: report, Cause: err}
}

func (e *Engine) salesSummary(ctx context.Context, report string, f store.SalesFilter) (store.SalesSummary, error) {
	s, err := e.store.SalesSummary(ctx, f)
	if err != nil {
		return store.SalesSummary{}, queryErr(report, f, err)
	}
	return s, nil
}

func (e *Engine) salesByDay(ctx context.Context, report string, f store.SalesFilter) ([]models.TimeBucket, error) {
	buckets, err := e.store.SalesByDay(ctx, f)
	if err != nil {
		return nil, queryErr(report, f, err)
	}
	return buckets, nil
}

func (e *Engine) salesByHour(ctx context.Context, report string, f store.SalesFilter) ([]models.TimeBucket, error) {
	buckets, err := e.store.SalesByHour(ctx, f)
	if err != nil {
		return nil, queryErr(report, f, err)
	}
	return buckets, nil
}

func (e *Engine) salesByProduct(ctx context.Context, report string, f store.SalesFilter) ([]models.DimensionBucket, error) {
	buckets, err := e.store.SalesByProduct(ctx, f)
	if err != nil {
		return nil, queryErr(report, f, err)
	}
	return buckets, nil
}

func (e *Engine) salesByCategory(ctx context.Context, report string, f store.SalesFilter) ([]models.DimensionBucket, error) {
	buckets, err := e.store.SalesByCategory(ctx, f)
	if err != nil {
		return nil, queryErr(report, f, err)
	}
	return buckets, nil
}

func (e *Engine) salesByCustomer(ctx context.Context, report string, f store.SalesFilter) ([]models.DimensionBucket, error) {
	buckets, err := e.store.SalesByCustomer(ctx, f)
	if err != nil {
		return nil, queryErr(report, f, err)
	}
	return buckets, nil
}

func (e *Engine) salesByPayment(ctx context.Context, report string, f store.SalesFilter) ([]models.PaymentBucket, error) {
	buckets, err := e.store.SalesByPayment(ctx, f)
	if err != nil {
		return nil, queryErr(report, f, err)
	}
	return buckets, nil
}

func (e *Engine) stockItems(ctx context.Context, report, category string) ([]models.StockItem, error) {
	items, err := e.store.StockItems(ctx, category)
	if err != nil {
		return nil, queryErr(report, store.SalesFilter{Category: category}, err)
	}
	return items, nil
}

// averageOrderValue guards the zero-order case.
func averageOrderValue(s store.SalesSummary) float64 {
	if s.Orders == 0 {
		return 0
	}
	return s.Revenue / float64(s.Orders)
}
