package routes

import (
	"app/database"
	"app/handlers"
	"app/middleware"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/version", func(c *fiber.Ctx) error {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return c.Status(fiber.StatusInternalServerError).SendString("no build information available")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
		return c.SendString("<pre>\n" + info.String() + "</pre>\n")
	})

	app.Get("/db", func(c *fiber.Ctx) error {
		if err := database.GetDB().Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Database ping failed: " + err.Error())
		}
		return c.SendString("Database ping successful!")
	})

	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Merchant Routes ---
	merchant := api.Group("/merchant", middleware.JWTMiddleware, middleware.MerchantRequired)

	merchant.Get("/dashboard", handlers.HandleGetDashboard)

	reports := merchant.Group("/reports")
	reports.Get("/daily-summary", handlers.HandleGetDailySummary)
	reports.Get("/sales", handlers.HandleGetSalesReport)
	reports.Get("/top-products", handlers.HandleGetTopProducts)
	reports.Get("/customer-sales", handlers.HandleGetCustomerSales)
	reports.Get("/stock-levels", handlers.HandleGetStockLevels)
	reports.Get("/low-stock", handlers.HandleGetLowStock)
	reports.Get("/valuation", handlers.HandleGetInventoryValuation)
	reports.Get("/stock-movement", handlers.HandleGetStockMovement)
	reports.Get("/business-summary", handlers.HandleGetBusinessSummary)
	reports.Get("/insight", handlers.HandleGetReportInsight)
}
