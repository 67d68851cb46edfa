package training

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/models"
	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
	"github.com/seanyjeong/academy-web-sub001/app/services"
	"github.com/seanyjeong/academy-web-sub001/app/validation"
)

func GetTrainingRecordsAPI(c *fiber.Ctx) error {
	records, err := database.GetTrainingRecords(config.GetDB(), auth.AcademyID(c),
		c.Query("student_id"), c.Query("date"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch training records"})
	}

	return c.JSON(fiber.Map{"records": records, "count": len(records)})
}

func CreateTrainingRecordAPI(c *fiber.Ctx) error {
	record := new(models.TrainingRecord)
	if err := c.BodyParser(record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(record); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	record.AcademyID = auth.AcademyID(c)
	if err := database.CreateTrainingRecord(config.GetDB(), record); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create training record"})
	}

	return c.Status(201).JSON(fiber.Map{"record": record})
}

func UpdateTrainingRecordAPI(c *fiber.Ctx) error {
	record := new(models.TrainingRecord)
	if err := c.BodyParser(record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(record); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	record.ID = c.Params("id")
	record.AcademyID = auth.AcademyID(c)
	if err := database.UpdateTrainingRecord(config.GetDB(), record); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Training record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update training record"})
	}

	return c.JSON(fiber.Map{"record": record})
}

func DeleteTrainingRecordAPI(c *fiber.Ctx) error {
	if err := database.DeleteTrainingRecord(config.GetDB(), auth.AcademyID(c), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Training record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete training record"})
	}

	return c.JSON(fiber.Map{"message": "Training record deleted"})
}

func GetMonthlyTestsAPI(c *fiber.Ctx) error {
	tests, err := database.GetMonthlyTests(config.GetDB(), auth.AcademyID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tests"})
	}

	return c.JSON(fiber.Map{"tests": tests, "count": len(tests)})
}

func CreateMonthlyTestAPI(c *fiber.Ctx) error {
	test := new(models.MonthlyTest)
	if err := c.BodyParser(test); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(test); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	test.AcademyID = auth.AcademyID(c)
	if err := database.CreateMonthlyTest(config.GetDB(), test); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create test"})
	}

	return c.Status(201).JSON(fiber.Map{"test": test})
}

func UpdateMonthlyTestAPI(c *fiber.Ctx) error {
	test := new(models.MonthlyTest)
	if err := c.BodyParser(test); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(test); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	test.ID = c.Params("id")
	test.AcademyID = auth.AcademyID(c)
	if err := database.UpdateMonthlyTest(config.GetDB(), test); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Test not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update test"})
	}

	return c.JSON(fiber.Map{"test": test})
}

func GetScoreboardAPI(c *fiber.Ctx) error {
	test, err := database.GetMonthlyTestByID(config.GetDB(), auth.AcademyID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Test not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch test"})
	}

	ranked, err := services.GetScoreboard(c.Context(), config.GetDB(), config.GetCache(), test.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch scoreboard"})
	}

	return c.JSON(fiber.Map{"test": test, "scoreboard": ranked})
}

// UpsertTestScoreAPI records a score and drops the cached ranking so
// the next scoreboard read is fresh.
func UpsertTestScoreAPI(c *fiber.Ctx) error {
	score := new(models.TestScore)
	if err := c.BodyParser(score); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	score.TestID = c.Params("id")
	if fields := validation.Struct(score); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	// Scoping check: the test must belong to the active branch.
	if _, err := database.GetMonthlyTestByID(config.GetDB(), auth.AcademyID(c), score.TestID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Test not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch test"})
	}

	if err := database.UpsertTestScore(config.GetDB(), score); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record score"})
	}
	services.InvalidateScoreboard(c.Context(), config.GetCache(), score.TestID)

	return c.JSON(fiber.Map{"score": score})
}
