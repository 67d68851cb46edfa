package public

import "github.com/gofiber/fiber/v2"

// SetupPublicRoutes registers the unauthenticated endpoints backing
// the slug-addressed booking form, reservation lookup, and public
// scoreboards.
func SetupPublicRoutes(app *fiber.App) {
	p := app.Group("/p")

	p.Get("/reservations/:number", GetReservationAPI)

	p.Get("/:slug/booking", GetBookingConfigAPI)
	p.Get("/:slug/booking/slots", GetBookingSlotsAPI)
	p.Post("/:slug/booking", CreateBookingAPI)

	p.Get("/:slug/scoreboard", GetPublicTestsAPI)
	p.Get("/:slug/scoreboard/:testID", GetPublicScoreboardAPI)
}
