package instructors

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/models"
	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
	"github.com/seanyjeong/academy-web-sub001/app/validation"
)

func GetSalaryAPI(c *fiber.Ctx) error {
	// Scope check before touching the salary table.
	if _, err := database.GetInstructorByID(config.GetDB(), auth.AcademyID(c), c.Params("id")); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Instructor not found"})
	}

	salary, err := database.GetInstructorSalary(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "No salary configured"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch salary"})
	}

	return c.JSON(fiber.Map{"salary": salary})
}

func SetSalaryAPI(c *fiber.Ctx) error {
	if _, err := database.GetInstructorByID(config.GetDB(), auth.AcademyID(c), c.Params("id")); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Instructor not found"})
	}

	salary := new(models.Salary)
	if err := c.BodyParser(salary); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	salary.InstructorID = c.Params("id")
	if fields := validation.Struct(salary); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.SetInstructorSalary(config.GetDB(), salary); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save salary"})
	}

	return c.JSON(fiber.Map{"salary": salary})
}

// GetPayoutAPI computes the proposed payout for a period
// (?start=YYYY-MM-DD&end=YYYY-MM-DD, defaulting to the current month).
func GetPayoutAPI(c *fiber.Ctx) error {
	if _, err := database.GetInstructorByID(config.GetDB(), auth.AcademyID(c), c.Params("id")); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Instructor not found"})
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start, end := monthStart, monthStart.AddDate(0, 1, -1)

	if s := c.Query("start"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid start date"})
		}
		start = parsed
	}
	if e := c.Query("end"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid end date"})
		}
		end = parsed
	}
	if end.Before(start) {
		return c.Status(400).JSON(fiber.Map{"error": "End date before start date"})
	}

	payout, err := database.GetProposedPayout(config.GetDB(), c.Params("id"), start, end)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "No salary configured"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute payout"})
	}

	return c.JSON(fiber.Map{"payout": payout})
}
