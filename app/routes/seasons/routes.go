package seasons

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

func SetupSeasonsRoutes(app *fiber.App) {
	api := app.Group("/api/seasons")
	api.Use(auth.AuthMiddleware, auth.BranchMiddleware)

	api.Get("/", auth.RequirePermission("seasons:read"), GetSeasonsAPI)
	api.Get("/active", auth.RequirePermission("seasons:read"), GetActiveSeasonAPI)
	api.Get("/:id", auth.RequirePermission("seasons:read"), GetSeasonByIDAPI)
	api.Get("/:id/enrollments", auth.RequirePermission("seasons:read"), GetEnrollmentsAPI)
	api.Post("/", auth.RequirePermission("seasons:write"), CreateSeasonAPI)
	api.Put("/:id", auth.RequirePermission("seasons:write"), UpdateSeasonAPI)
	api.Delete("/:id", auth.RequirePermission("seasons:write"), DeleteSeasonAPI)
	api.Post("/:id/enroll", auth.RequirePermission("seasons:write"), EnrollStudentAPI)
	api.Post("/:id/withdraw", auth.RequirePermission("seasons:write"), WithdrawStudentAPI)
}
