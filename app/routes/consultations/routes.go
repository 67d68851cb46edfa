package consultations

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

func SetupConsultationsRoutes(app *fiber.App) {
	api := app.Group("/api/consultations")
	api.Use(auth.AuthMiddleware, auth.BranchMiddleware)

	api.Get("/", auth.RequirePermission("consultations:read"), GetConsultationsAPI)
	api.Get("/:id", auth.RequirePermission("consultations:read"), GetConsultationByIDAPI)
	api.Post("/", auth.RequirePermission("consultations:write"), CreateConsultationAPI)
	api.Put("/:id", auth.RequirePermission("consultations:write"), UpdateConsultationAPI)
	api.Put("/:id/status", auth.RequirePermission("consultations:write"), UpdateStatusAPI)
	api.Delete("/:id", auth.RequirePermission("consultations:write"), DeleteConsultationAPI)
}
