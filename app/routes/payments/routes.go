package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware, auth.BranchMiddleware)

	api.Get("/", auth.RequirePermission("payments:read"), GetPaymentsAPI)
	api.Get("/revenue", auth.RequirePermission("payments:read"), GetMonthlyRevenueAPI)
	api.Get("/:id", auth.RequirePermission("payments:read"), GetPaymentByIDAPI)
	api.Post("/", auth.RequirePermission("payments:write"), CreatePaymentAPI)
	api.Put("/:id", auth.RequirePermission("payments:write"), UpdatePaymentAPI)
	api.Delete("/:id", auth.RequirePermission("payments:write"), DeletePaymentAPI)
}
