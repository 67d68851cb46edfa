package seasons

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/models"
	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
	"github.com/seanyjeong/academy-web-sub001/app/validation"
)

func GetSeasonsAPI(c *fiber.Ctx) error {
	seasons, err := database.GetSeasons(config.GetDB(), auth.AcademyID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch seasons"})
	}

	return c.JSON(fiber.Map{"seasons": seasons, "count": len(seasons)})
}

func GetActiveSeasonAPI(c *fiber.Ctx) error {
	season, err := database.GetActiveSeason(config.GetDB(), auth.AcademyID(c))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(fiber.Map{"season": nil})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch active season"})
	}

	return c.JSON(fiber.Map{"season": season})
}

func GetSeasonByIDAPI(c *fiber.Ctx) error {
	season, err := database.GetSeasonByID(config.GetDB(), auth.AcademyID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Season not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch season"})
	}

	return c.JSON(fiber.Map{"season": season})
}

func GetEnrollmentsAPI(c *fiber.Ctx) error {
	if _, err := database.GetSeasonByID(config.GetDB(), auth.AcademyID(c), c.Params("id")); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Season not found"})
	}

	enrollments, err := database.GetSeasonEnrollments(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch enrollments"})
	}

	return c.JSON(fiber.Map{"enrollments": enrollments, "count": len(enrollments)})
}

func CreateSeasonAPI(c *fiber.Ctx) error {
	season := new(models.Season)
	if err := c.BodyParser(season); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(season); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	if season.EndDate.Before(season.StartDate) {
		return c.Status(400).JSON(fiber.Map{"error": "End date before start date"})
	}

	season.AcademyID = auth.AcademyID(c)
	if err := database.CreateSeason(config.GetDB(), season); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create season"})
	}

	return c.Status(201).JSON(fiber.Map{"season": season})
}

func UpdateSeasonAPI(c *fiber.Ctx) error {
	season := new(models.Season)
	if err := c.BodyParser(season); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(season); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	if season.EndDate.Before(season.StartDate) {
		return c.Status(400).JSON(fiber.Map{"error": "End date before start date"})
	}

	season.ID = c.Params("id")
	season.AcademyID = auth.AcademyID(c)
	if err := database.UpdateSeason(config.GetDB(), season); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Season not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update season"})
	}

	return c.JSON(fiber.Map{"season": season})
}

func DeleteSeasonAPI(c *fiber.Ctx) error {
	if err := database.DeleteSeason(config.GetDB(), auth.AcademyID(c), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Season not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete season"})
	}

	return c.JSON(fiber.Map{"message": "Season deleted"})
}

func EnrollStudentAPI(c *fiber.Ctx) error {
	type EnrollRequest struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
	}

	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	academyID := auth.AcademyID(c)
	if _, err := database.GetSeasonByID(config.GetDB(), academyID, c.Params("id")); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Season not found"})
	}
	if _, err := database.GetStudentByID(config.GetDB(), academyID, req.StudentID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	enrollment := &models.Enrollment{StudentID: req.StudentID, SeasonID: c.Params("id")}
	if err := database.EnrollStudent(config.GetDB(), enrollment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to enroll student"})
	}

	return c.Status(201).JSON(fiber.Map{"enrollment": enrollment})
}

func WithdrawStudentAPI(c *fiber.Ctx) error {
	type WithdrawRequest struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
	}

	var req WithdrawRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if _, err := database.GetSeasonByID(config.GetDB(), auth.AcademyID(c), c.Params("id")); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Season not found"})
	}

	if err := database.WithdrawStudent(config.GetDB(), c.Params("id"), req.StudentID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Enrollment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to withdraw student"})
	}

	return c.JSON(fiber.Map{"message": "Student withdrawn"})
}
