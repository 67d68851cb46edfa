package exports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

func SetupExportRoutes(app *fiber.App) {
	api := app.Group("/api/exports")
	api.Use(auth.AuthMiddleware, auth.BranchMiddleware)

	api.Get("/students", auth.RequirePermission("students:read"), ExportStudentsAPI)
	api.Get("/instructors", auth.RequirePermission("instructors:read"), ExportInstructorsAPI)
	api.Get("/payments", auth.RequirePermission("payments:read"), ExportPaymentsAPI)
}
