package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"app/reports"
	"app/store"
)

// engine is the shared report engine, wired to the production store at
// startup via InitReports. Tests swap in a memory store.
var engine *reports.Engine

// InitReports wires the report engine to a store.
func InitReports(s store.Store) {
	engine = reports.NewEngine(s)
}

// parseFilters maps the recognized query parameters onto report filters.
// A limit that is present but not an integer is rejected, not defaulted.
func parseFilters(c *fiber.Ctx) (reports.Filters, error) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return reports.Filters{}, &reports.InvalidFilterError{Field: "limit", Value: raw, Reason: "expected an integer"}
		}
		limit = n
	}
	return reports.Filters{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Category:  c.Query("category"),
		Customer:  c.Query("customer"),
		Product:   c.Query("product"),
		Limit:     limit,
	}, nil
}

// reportError maps engine failures onto HTTP responses: rejected filters are
// the caller's fault, anything else is a failed computation.
func reportError(c *fiber.Ctx, report string, err error) error {
	var invalid *reports.InvalidFilterError
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": invalid.Error()})
	}
	log.Printf("❌ [%s] %v", report, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate " + report + " report"})
}

// HandleGetDailySummary returns the daily sales snapshot.
// GET /api/v1/merchant/reports/daily-summary?date=YYYY-MM-DD
func HandleGetDailySummary(c *fiber.Ctx) error {
	result, err := engine.DailySummary(c.UserContext(), c.Query("date"))
	if err != nil {
		return reportError(c, "daily summary", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

// HandleGetSalesReport returns the period sales report.
// GET /api/v1/merchant/reports/sales
func HandleGetSalesReport(c *fiber.Ctx) error {
	filters, err := parseFilters(c)
	if err != nil {
		return reportError(c, "sales", err)
	}
	result, err := engine.SalesByPeriod(c.UserContext(), filters)
	if err != nil {
		return reportError(c, "sales", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

// HandleGetTopProducts returns the top-N products breakdown.
// GET /api/v1/merchant/reports/top-products
func HandleGetTopProducts(c *fiber.Ctx) error {
	filters, err := parseFilters(c)
	if err != nil {
		return reportError(c, "top products", err)
	}
	result, err := engine.TopProducts(c.UserContext(), filters)
	if err != nil {
		return reportError(c, "top products", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

// HandleGetCustomerSales returns the per-customer sales breakdown.
// GET /api/v1/merchant/reports/customer-sales
func HandleGetCustomerSales(c *fiber.Ctx) error {
	filters, err := parseFilters(c)
	if err != nil {
		return reportError(c, "customer sales", err)
	}
	result, err := engine.CustomerSales(c.UserContext(), filters)
	if err != nil {
		return reportError(c, "customer sales", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

// HandleGetStockLevels returns the classified stock-level report.
// GET /api/v1/merchant/reports/stock-levels?category=...
func HandleGetStockLevels(c *fiber.Ctx) error {
	result, err := engine.StockLevels(c.UserContext(), c.Query("category"))
	if err != nil {
		return reportError(c, "stock levels", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

// HandleGetLowStock returns the low-stock report with urgency tiers.
// GET /api/v1/merchant/reports/low-stock
func HandleGetLowStock(c *fiber.Ctx) error {
	result, err := engine.LowStock(c.UserContext())
	if err != nil {
		return reportError(c, "low stock", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

// HandleGetInventoryValuation returns the inventory valuation report.
// GET /api/v1/merchant/reports/valuation
func HandleGetInventoryValuation(c *fiber.Ctx) error {
	result, err := engine.InventoryValuation(c.UserContext())
	if err != nil {
		return reportError(c, "inventory valuation", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

// HandleGetStockMovement returns the stock movement report.
// GET /api/v1/merchant/reports/stock-movement
func HandleGetStockMovement(c *fiber.Ctx) error {
	filters, err := parseFilters(c)
	if err != nil {
		return reportError(c, "stock movement", err)
	}
	result, err := engine.StockMovement(c.UserContext(), filters)
	if err != nil {
		return reportError(c, "stock movement", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

// HandleGetBusinessSummary returns the named-period business roll-up.
// GET /api/v1/merchant/reports/business-summary?period=daily|weekly|monthly
func HandleGetBusinessSummary(c *fiber.Ctx) error {
	result, err := engine.BusinessSummary(c.UserContext(), c.Query("period", reports.PeriodMonthly))
	if err != nil {
		return reportError(c, "business summary", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}
