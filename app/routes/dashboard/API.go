package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

func GetStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB(), auth.AcademyID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(fiber.Map{"stats": stats})
}
