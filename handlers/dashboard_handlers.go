package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleGetDashboard computes the merged dashboard: five reports in
// parallel plus derived alerts. Fails as a unit if any branch fails.
// GET /api/v1/merchant/dashboard
func HandleGetDashboard(c *fiber.Ctx) error {
	result, err := engine.Dashboard(c.UserContext())
	if err != nil {
		return reportError(c, "dashboard", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}
