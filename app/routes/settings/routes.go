package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware, auth.BranchMiddleware)

	api.Get("/", auth.RequirePermission("settings:read"), GetSettingsAPI)
	api.Put("/", auth.RequirePermission("settings:write"), UpdateSettingsAPI)
	api.Get("/academy", auth.RequirePermission("settings:read"), GetAcademyAPI)
	api.Put("/academy", auth.RequirePermission("settings:write"), UpdateAcademyAPI)
}
