package training

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

func SetupTrainingRoutes(app *fiber.App) {
	api := app.Group("/api/training")
	api.Use(auth.AuthMiddleware, auth.BranchMiddleware)

	api.Get("/records", auth.RequirePermission("training:read"), GetTrainingRecordsAPI)
	api.Post("/records", auth.RequirePermission("training:write"), CreateTrainingRecordAPI)
	api.Put("/records/:id", auth.RequirePermission("training:write"), UpdateTrainingRecordAPI)
	api.Delete("/records/:id", auth.RequirePermission("training:write"), DeleteTrainingRecordAPI)

	api.Get("/tests", auth.RequirePermission("training:read"), GetMonthlyTestsAPI)
	api.Post("/tests", auth.RequirePermission("training:write"), CreateMonthlyTestAPI)
	api.Put("/tests/:id", auth.RequirePermission("training:write"), UpdateMonthlyTestAPI)
	api.Get("/tests/:id/scoreboard", auth.RequirePermission("training:read"), GetScoreboardAPI)
	api.Put("/tests/:id/scores", auth.RequirePermission("training:write"), UpsertTestScoreAPI)
}
