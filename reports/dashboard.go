package reports

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"app/models"
)

// Dashboard computes the five constituent reports concurrently and merges
// them with a derived alert list. Any single failure fails the whole
// dashboard: no partial results are returned, and the shared context cancels
// the remaining in-flight queries.
func (e *Engine) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		daily        *models.DailySummaryReport
		stockLevels  *models.StockLevelReport
		lowStock     *models.LowStockReport
		topProducts  *models.TopProductsReport
		topCustomers []models.RankedEntry
	)

	g.Go(func() error {
		var err error
		daily, err = e.DailySummary(ctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		stockLevels, err = e.StockLevels(ctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		lowStock, err = e.LowStock(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		topProducts, err = e.TopProducts(ctx, Filters{Limit: 5})
		return err
	})
	g.Go(func() error {
		window := resolveNamedWindow(PeriodMonthly, e.now())
		customers, err := e.salesByCustomer(ctx, "dashboard", salesFilter(window, Filters{}))
		if err != nil {
			return err
		}
		topCustomers = RankByRevenue(customers, 5)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.Dashboard{
		DailySales:   *daily,
		StockLevels:  *stockLevels,
		LowStock:     *lowStock,
		TopProducts:  *topProducts,
		TopCustomers: topCustomers,
		Alerts:       deriveAlerts(daily, stockLevels, lowStock),
	}, nil
}

// deriveAlerts flattens the merged reports into the dashboard alert list.
func deriveAlerts(daily *models.DailySummaryReport, stock *models.StockLevelReport, low *models.LowStockReport) []models.Alert {
	alerts := []models.Alert{}

	if daily.Summary.TotalSales == 0 {
		alerts = append(alerts, models.Alert{
			Severity: models.AlertWarning,
			Message:  "No sales recorded today.",
		})
	}
	if low.Summary.CriticalItems > 0 {
		alerts = append(alerts, models.Alert{
			Severity: models.AlertCritical,
			Message:  fmt.Sprintf("%d item(s) are about to stock out.", low.Summary.CriticalItems),
		})
	}
	if low.Summary.HighPriorityItems > 0 {
		alerts = append(alerts, models.Alert{
			Severity: models.AlertMedium,
			Message:  fmt.Sprintf("%d item(s) need a reorder within two weeks.", low.Summary.HighPriorityItems),
		})
	}
	if total := stock.Summary.TotalProducts; total > 0 {
		if float64(stock.Summary.LowStockCount) > float64(total)*lowStockShareLimit {
			alerts = append(alerts, models.Alert{
				Severity: models.AlertMedium,
				Message:  "More than 20% of the catalog is low on stock.",
			})
		}
		if float64(stock.Summary.OverstockedCount) > float64(total)*overstockShareLimit {
			alerts = append(alerts, models.Alert{
				Severity: models.AlertInfo,
				Message:  "Over 10% of the catalog is overstocked.",
			})
		}
	}
	return alerts
}
