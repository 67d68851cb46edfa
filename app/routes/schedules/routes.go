package schedules

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

func SetupSchedulesRoutes(app *fiber.App) {
	api := app.Group("/api/schedules")
	api.Use(auth.AuthMiddleware, auth.BranchMiddleware)

	api.Get("/", auth.RequirePermission("schedules:read"), GetSchedulesAPI)
	api.Get("/:id", auth.RequirePermission("schedules:read"), GetScheduleByIDAPI)
	api.Post("/", auth.RequirePermission("schedules:write"), CreateScheduleAPI)
	api.Put("/:id", auth.RequirePermission("schedules:write"), UpdateScheduleAPI)
	api.Delete("/:id", auth.RequirePermission("schedules:write"), DeleteScheduleAPI)
}
