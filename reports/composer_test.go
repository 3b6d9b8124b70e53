package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
	"app/store"
)

func strPtr(s string) *string { return &s }

// Fixture: two completed sales and one pending sale on 2026-08-15.
func fixtureSales() []models.Sale {
	day := func(hour int) time.Time {
		return time.Date(2026, 8, 15, hour, 0, 0, 0, time.UTC)
	}
	return []models.Sale{
		{
			ID: "s1", SaleDate: day(10), Status: models.SaleStatusCompleted,
			PaymentType: "cash", Subtotal: 100, TotalAmount: 100,
			CustomerID: strPtr("c1"),
			Items: []models.SaleItem{
				{ProductID: "p1", ProductName: "Coffee Beans", Category: "beverages", QuantitySold: 2, UnitPrice: 50, Subtotal: 100},
			},
		},
		{
			ID: "s2", SaleDate: day(14), Status: models.SaleStatusCompleted,
			PaymentType: "card", Subtotal: 200, TotalAmount: 200,
			CustomerID: strPtr("c2"),
			Items: []models.SaleItem{
				{ProductID: "p2", ProductName: "Grinder", Category: "equipment", QuantitySold: 1, UnitPrice: 200, Subtotal: 200},
			},
		},
		{
			ID: "s3", SaleDate: day(15), Status: models.SaleStatusPending,
			PaymentType: "cash", Subtotal: 50, TotalAmount: 50,
			Items: []models.SaleItem{
				{ProductID: "p1", ProductName: "Coffee Beans", Category: "beverages", QuantitySold: 1, UnitPrice: 50, Subtotal: 50},
			},
		},
	}
}

func fixtureStock() []models.StockItem {
	return []models.StockItem{
		{ProductID: "p0", Name: "Filters", Category: "supplies", Quantity: 0, MinThreshold: 10, UnitCost: 5, SellingPrice: 8},
		{ProductID: "p1", Name: "Coffee Beans", Category: "beverages", Quantity: 5, MinThreshold: 10, UnitCost: 2, SellingPrice: 4},
		{ProductID: "p2", Name: "Grinder", Category: "equipment", Quantity: 15, MinThreshold: 10, UnitCost: 1, SellingPrice: 2},
		{ProductID: "p3", Name: "Mugs", Category: "supplies", Quantity: 40, MinThreshold: 10, UnitCost: 1, SellingPrice: 3},
	}
}

func fixtureCustomers() []models.Customer {
	return []models.Customer{
		{ID: "c1", Name: "Ada"},
		{ID: "c2", Name: "Grace"},
	}
}

func testEngine(s store.Store) *Engine {
	e := NewEngine(s)
	e.now = func() time.Time { return testNow }
	return e
}

func fixtureEngine() *Engine {
	return testEngine(store.NewMemory(fixtureSales(), fixtureStock(), fixtureCustomers()))
}

func TestSalesByPeriodExcludesPendingSales(t *testing.T) {
	e := fixtureEngine()

	report, err := e.SalesByPeriod(context.Background(), Filters{StartDate: "2026-08-15", EndDate: "2026-08-15"})
	require.NoError(t, err)

	assert.Equal(t, 300.0, report.TotalSales)
	assert.Equal(t, 2, report.TotalOrders)
	assert.Equal(t, 150.0, report.AverageOrderValue)
}

func TestSalesByPeriodBucketSumMatchesTotal(t *testing.T) {
	e := fixtureEngine()

	report, err := e.SalesByPeriod(context.Background(), Filters{})
	require.NoError(t, err)

	var sum float64
	for _, b := range report.SalesByDay {
		sum += b.Revenue
	}
	assert.InDelta(t, report.TotalSales, sum, 0.01)
}

func TestSalesByPeriodTrend(t *testing.T) {
	e := fixtureEngine()

	// Single day window: 100 in the morning half, 200 in the afternoon half.
	report, err := e.SalesByPeriod(context.Background(), Filters{StartDate: "2026-08-15", EndDate: "2026-08-15"})
	require.NoError(t, err)

	assert.Equal(t, models.TrendIncreasing, report.Trend.Classification)
	assert.Equal(t, 100.0, report.Trend.Growth)
}

func TestSalesByPeriodPaymentBreakdown(t *testing.T) {
	e := fixtureEngine()

	report, err := e.SalesByPeriod(context.Background(), Filters{})
	require.NoError(t, err)
	require.Len(t, report.PaymentBreakdown, 2)

	assert.Equal(t, "card", report.PaymentBreakdown[0].Method)
	assert.Equal(t, 200.0, report.PaymentBreakdown[0].Revenue)
	assert.Equal(t, "cash", report.PaymentBreakdown[1].Method)
}

func TestSalesByPeriodRejectsBadFilters(t *testing.T) {
	e := fixtureEngine()

	var invalid *InvalidFilterError
	_, err := e.SalesByPeriod(context.Background(), Filters{StartDate: "bogus"})
	require.ErrorAs(t, err, &invalid)

	_, err = e.SalesByPeriod(context.Background(), Filters{Limit: -1})
	require.ErrorAs(t, err, &invalid)

	_, err = e.SalesByPeriod(context.Background(), Filters{Limit: 500})
	require.ErrorAs(t, err, &invalid)
}

func TestSalesByPeriodEmptyWindowIsZeroNotError(t *testing.T) {
	e := fixtureEngine()

	report, err := e.SalesByPeriod(context.Background(), Filters{StartDate: "2025-01-01", EndDate: "2025-01-31"})
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.TotalSales)
	assert.Equal(t, 0, report.TotalOrders)
	assert.Empty(t, report.SalesByDay)
	assert.Empty(t, report.TopProducts)
}

func TestDailySummary(t *testing.T) {
	e := fixtureEngine()

	report, err := e.DailySummary(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-15", report.Date)
	assert.Equal(t, 300.0, report.Summary.TotalSales)
	assert.Equal(t, 2, report.Summary.TotalOrders)
	assert.Equal(t, 3, report.Summary.TotalItems)
	assert.Equal(t, 150.0, report.Summary.AverageOrderValue)

	require.NotEmpty(t, report.TopProducts)
	assert.Equal(t, "p2", report.TopProducts[0].ID)

	// No sales yesterday or last week: comparisons stay at zero.
	assert.Equal(t, 0.0, report.ComparisonYesterday)
	assert.Equal(t, 0.0, report.ComparisonLastWeek)
}

func TestDailySummaryRejectsBadDate(t *testing.T) {
	e := fixtureEngine()

	var invalid *InvalidFilterError
	_, err := e.DailySummary(context.Background(), "08/15/2026")
	require.ErrorAs(t, err, &invalid)
}

func TestTopProductsReport(t *testing.T) {
	e := fixtureEngine()

	report, err := e.TopProducts(context.Background(), Filters{Limit: 1})
	require.NoError(t, err)

	assert.Equal(t, 300.0, report.TotalRevenue)
	require.Len(t, report.TopProducts, 1)
	assert.Equal(t, "p2", report.TopProducts[0].ID)
	// Truncated entry still counts in the denominator.
	assert.InDelta(t, 66.67, report.TopProducts[0].Percentage, 0.01)
}

func TestCustomerSalesSegments(t *testing.T) {
	e := fixtureEngine()

	report, err := e.CustomerSales(context.Background(), Filters{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalCustomers)
	assert.Equal(t, 300.0, report.TotalRevenue)
	assert.Equal(t, 150.0, report.AverageCustomerValue)
	assert.Equal(t, models.CustomerSegments{VIP: 0, Regular: 1, Occasional: 1}, report.Segments)

	require.Len(t, report.CustomerSales, 2)
	assert.Equal(t, "Grace", report.CustomerSales[0].Name)
}

func TestStockLevelsReport(t *testing.T) {
	e := fixtureEngine()

	report, err := e.StockLevels(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 4, report.Summary.TotalProducts)
	assert.Equal(t, 2, report.Summary.LowStockCount)
	assert.Equal(t, 1, report.Summary.OverstockedCount)
	assert.Equal(t, 65.0, report.Summary.TotalValue)
	assert.Equal(t, 50.0, report.Summary.AverageUtilization)

	// Out-of-stock, >20% low share and >10% overstock share all fire.
	require.Len(t, report.Recommendations, 3)
}

func TestStockLevelsCategoryFilter(t *testing.T) {
	e := fixtureEngine()

	report, err := e.StockLevels(context.Background(), "supplies")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.TotalProducts)
}

func TestLowStockReport(t *testing.T) {
	e := fixtureEngine()

	report, err := e.LowStock(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.TotalLowStockItems)
	assert.Equal(t, 2, report.Summary.CriticalItems)
	assert.Equal(t, 0, report.Summary.HighPriorityItems)

	require.Len(t, report.LowStockItems, 2)
	for _, item := range report.LowStockItems {
		assert.LessOrEqual(t, item.Quantity, item.MinLevel)
	}
	require.NotEmpty(t, report.Recommendations)
	assert.Contains(t, report.Recommendations[0], "reorder now")
}

func TestInventoryValuation(t *testing.T) {
	e := fixtureEngine()

	report, err := e.InventoryValuation(context.Background())
	require.NoError(t, err)

	// cost = 0*5 + 5*2 + 15*1 + 40*1 = 65
	// retail = 0*8 + 5*4 + 15*2 + 40*3 = 170
	assert.Equal(t, 65.0, report.Summary.TotalCost)
	assert.Equal(t, 170.0, report.Summary.TotalRetail)
	assert.Equal(t, 105.0, report.Summary.TotalProfit)
	assert.InDelta(t, 61.76, report.Summary.AverageMargin, 0.01)
	assert.Len(t, report.Categories, 3)
}

func TestStockMovementLabelsEstimates(t *testing.T) {
	e := fixtureEngine()

	report, err := e.StockMovement(context.Background(), Filters{})
	require.NoError(t, err)

	// One trading day: 3 observed units out, 80% estimated back in.
	assert.Equal(t, 3, report.Summary.StockOut)
	assert.Equal(t, 2, report.Summary.StockIn)
	assert.Equal(t, -1, report.Summary.NetMovement)
	assert.Equal(t, 2, report.Summary.TotalMovements)

	for _, m := range report.Movements {
		if m.Direction == models.MovementIn {
			assert.Equal(t, models.MovementEstimated, m.Kind)
		} else {
			assert.Equal(t, models.MovementObserved, m.Kind)
		}
	}
}

func TestBusinessSummary(t *testing.T) {
	e := fixtureEngine()

	summary, err := e.BusinessSummary(context.Background(), PeriodMonthly)
	require.NoError(t, err)

	assert.Equal(t, 300.0, summary.Sales.TotalSales)
	assert.Equal(t, 2, summary.Sales.TotalOrders)
	assert.Equal(t, 4, summary.Inventory.TotalProducts)
	assert.Equal(t, 2, summary.Inventory.LowStockCount)

	require.NotEmpty(t, summary.TopCategories)
	assert.Equal(t, "equipment", summary.TopCategories[0].ID)

	// Stable trend over the month: only the three stock advisories fire.
	assert.Equal(t, models.TrendStable, summary.Sales.Trend.Classification)
	require.Len(t, summary.Recommendations, 3)
	for _, rec := range summary.Recommendations {
		assert.NotContains(t, rec, "trending")
	}
}

func TestBusinessSummaryTrendAdvisory(t *testing.T) {
	e := fixtureEngine()

	// Daily window: 100 before noon vs 200 after, so the trend is
	// increasing and its advisory lands after the stock advisories.
	summary, err := e.BusinessSummary(context.Background(), PeriodDaily)
	require.NoError(t, err)

	assert.Equal(t, models.TrendIncreasing, summary.Sales.Trend.Classification)
	require.Len(t, summary.Recommendations, 4)
	assert.Contains(t, summary.Recommendations[3], "trending up")
}

func TestCategoryFilterScopesRevenue(t *testing.T) {
	e := fixtureEngine()

	report, err := e.SalesByPeriod(context.Background(), Filters{Category: "beverages"})
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.TotalSales)
	assert.Equal(t, 1, report.TotalOrders)
}
