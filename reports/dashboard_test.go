package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
	"app/store"
)

func TestDashboardMergesReports(t *testing.T) {
	e := fixtureEngine()

	dashboard, err := e.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 300.0, dashboard.DailySales.Summary.TotalSales)
	assert.Equal(t, 4, dashboard.StockLevels.Summary.TotalProducts)
	assert.Equal(t, 2, dashboard.LowStock.Summary.TotalLowStockItems)
	assert.Len(t, dashboard.TopProducts.TopProducts, 2)
	assert.Len(t, dashboard.TopCustomers, 2)
}

func TestDashboardNoSalesAlertFiresOnlyOnZeroRevenue(t *testing.T) {
	// Sales exist today: no "no sales" alert.
	e := fixtureEngine()
	dashboard, err := e.Dashboard(context.Background())
	require.NoError(t, err)
	for _, a := range dashboard.Alerts {
		assert.NotContains(t, a.Message, "No sales")
	}

	// Same fixtures but "today" has moved past the sales: alert fires.
	e = testEngine(store.NewMemory(fixtureSales(), fixtureStock(), fixtureCustomers()))
	e.now = func() time.Time { return testNow.AddDate(0, 0, 3) }
	dashboard, err = e.Dashboard(context.Background())
	require.NoError(t, err)

	found := false
	for _, a := range dashboard.Alerts {
		if a.Message == "No sales recorded today." {
			found = true
			assert.Equal(t, models.AlertWarning, a.Severity)
		}
	}
	assert.True(t, found)
}

func TestDashboardStockAlerts(t *testing.T) {
	e := fixtureEngine()

	dashboard, err := e.Dashboard(context.Background())
	require.NoError(t, err)

	severities := map[string]int{}
	for _, a := range dashboard.Alerts {
		severities[a.Severity]++
	}

	// Two items stock out within a week -> critical; 2/4 low share -> medium;
	// 1/4 overstock share -> info.
	assert.Equal(t, 1, severities[models.AlertCritical])
	assert.GreaterOrEqual(t, severities[models.AlertMedium], 1)
	assert.Equal(t, 1, severities[models.AlertInfo])
}

// failingStore fails every stock read to exercise all-or-nothing fan-out.
type failingStore struct {
	store.Store
}

func (f failingStore) StockItems(ctx context.Context, category string) ([]models.StockItem, error) {
	return nil, errors.New("connection reset")
}

func TestDashboardFailsAsAUnit(t *testing.T) {
	mem := store.NewMemory(fixtureSales(), fixtureStock(), fixtureCustomers())
	e := testEngine(failingStore{mem})

	dashboard, err := e.Dashboard(context.Background())
	require.Error(t, err)
	assert.Nil(t, dashboard)

	var queryErr *QueryExecutionError
	require.ErrorAs(t, err, &queryErr)
	assert.EqualError(t, errors.Unwrap(err), "connection reset")
}
