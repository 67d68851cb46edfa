package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware, auth.BranchMiddleware)

	api.Get("/", auth.RequirePermission("students:read"), GetStudentsAPI)
	api.Get("/stats", auth.RequirePermission("students:read"), GetStudentStatsAPI)
	api.Get("/:id", auth.RequirePermission("students:read"), GetStudentByIDAPI)
	api.Get("/:id/attendance", auth.RequirePermission("students:read"), GetStudentAttendanceAPI)
	api.Post("/", auth.RequirePermission("students:write"), CreateStudentAPI)
	api.Put("/:id", auth.RequirePermission("students:write"), UpdateStudentAPI)
	api.Delete("/:id", auth.RequirePermission("students:write"), DeleteStudentAPI)
}
