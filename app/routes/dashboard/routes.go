package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware, auth.BranchMiddleware)

	api.Get("/stats", auth.RequirePermission("dashboard:read"), GetStatsAPI)
}
