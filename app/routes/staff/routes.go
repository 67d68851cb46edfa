package staff

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

func SetupStaffRoutes(app *fiber.App) {
	api := app.Group("/api/staff")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RequirePermission("staff:read"), GetStaffAPI)
	api.Get("/roles", auth.RequirePermission("staff:read"), GetRolesAPI)
	api.Post("/", auth.RequirePermission("staff:write"), CreateStaffAPI)
	api.Put("/:id", auth.RequirePermission("staff:write"), UpdateStaffAPI)
	api.Delete("/:id", auth.RequirePermission("staff:write"), DeleteStaffAPI)
	api.Put("/:id/roles", auth.RequirePermission("staff:write"), SetStaffRolesAPI)
	api.Put("/:id/branches", auth.RequirePermission("staff:write"), SetStaffBranchesAPI)
	api.Put("/roles/:roleId/permissions", auth.RequirePermission("staff:write"), UpdateRolePermissionsAPI)
}
