package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware, auth.BranchMiddleware)

	api.Get("/", auth.RequirePermission("attendance:read"), GetAttendancesAPI)
	api.Post("/", auth.RequirePermission("attendance:write"), MarkAttendanceAPI)
	api.Post("/bulk", auth.RequirePermission("attendance:write"), BulkMarkAttendanceAPI)
}
