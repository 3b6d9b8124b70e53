// Package store provides read-only aggregate queries over the shop's sales
// and inventory records. The reporting engine only ever talks to this
// interface, so it can run against Postgres in production and against an
// in-memory snapshot in tests.
package store

import (
	"context"
	"time"

	"app/models"
)

// SalesFilter scopes a sales query. Start and End are inclusive instants.
// Empty string filters are ignored.
type SalesFilter struct {
	Start      time.Time
	End        time.Time
	Category   string
	CustomerID string
	ProductID  string
}

// SalesSummary is the flat rollup of completed sales in a window.
type SalesSummary struct {
	Orders  int
	Items   int
	Revenue float64
}

// Store is the query capability the reporting engine consumes. All queries
// cover completed sales only; stock queries read the current snapshot with
// no time filter. An empty result is an empty slice, never an error.
type Store interface {
	SalesSummary(ctx context.Context, f SalesFilter) (SalesSummary, error)
	SalesByDay(ctx context.Context, f SalesFilter) ([]models.TimeBucket, error)
	SalesByHour(ctx context.Context, f SalesFilter) ([]models.TimeBucket, error)
	SalesByProduct(ctx context.Context, f SalesFilter) ([]models.DimensionBucket, error)
	SalesByCategory(ctx context.Context, f SalesFilter) ([]models.DimensionBucket, error)
	SalesByCustomer(ctx context.Context, f SalesFilter) ([]models.DimensionBucket, error)
	SalesByPayment(ctx context.Context, f SalesFilter) ([]models.PaymentBucket, error)
	StockItems(ctx context.Context, category string) ([]models.StockItem, error)
	// DailyUnitsSold returns the average units sold per day for each product
	// over the filter window, used for stockout estimates.
	DailyUnitsSold(ctx context.Context, f SalesFilter) (map[string]float64, error)
}
