package instructors

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

func SetupInstructorsRoutes(app *fiber.App) {
	api := app.Group("/api/instructors")
	api.Use(auth.AuthMiddleware, auth.BranchMiddleware)

	api.Get("/", auth.RequirePermission("instructors:read"), GetInstructorsAPI)
	api.Get("/:id", auth.RequirePermission("instructors:read"), GetInstructorByIDAPI)
	api.Post("/", auth.RequirePermission("instructors:write"), CreateInstructorAPI)
	api.Put("/:id", auth.RequirePermission("instructors:write"), UpdateInstructorAPI)
	api.Delete("/:id", auth.RequirePermission("instructors:write"), DeleteInstructorAPI)

	// Salary / payroll
	api.Get("/:id/salary", auth.RequirePermission("salaries:read"), GetSalaryAPI)
	api.Put("/:id/salary", auth.RequirePermission("salaries:write"), SetSalaryAPI)
	api.Get("/:id/payout", auth.RequirePermission("salaries:read"), GetPayoutAPI)
}
