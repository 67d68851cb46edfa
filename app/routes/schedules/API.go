package schedules

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/models"
	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
	"github.com/seanyjeong/academy-web-sub001/app/validation"
)

func GetSchedulesAPI(c *fiber.Ctx) error {
	schedules, err := database.GetSchedules(config.GetDB(), auth.AcademyID(c), c.Query("day"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schedules"})
	}

	return c.JSON(fiber.Map{"schedules": schedules, "count": len(schedules)})
}

func GetScheduleByIDAPI(c *fiber.Ctx) error {
	schedule, err := database.GetScheduleByID(config.GetDB(), auth.AcademyID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Schedule not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schedule"})
	}

	return c.JSON(fiber.Map{"schedule": schedule})
}

func CreateScheduleAPI(c *fiber.Ctx) error {
	schedule := new(models.Schedule)
	if err := c.BodyParser(schedule); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(schedule); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	if !ValidateTimeRange(schedule.StartTime, schedule.EndTime) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid time range"})
	}

	schedule.AcademyID = auth.AcademyID(c)

	if schedule.InstructorID != nil {
		conflict, err := database.CheckScheduleConflict(config.GetDB(), schedule.AcademyID,
			*schedule.InstructorID, schedule.DayOfWeek, schedule.StartTime, schedule.EndTime, "")
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to check conflicts"})
		}
		if conflict {
			return c.Status(409).JSON(fiber.Map{"error": "Instructor already has a schedule in this time range"})
		}
	}

	if err := database.CreateSchedule(config.GetDB(), schedule); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create schedule"})
	}

	return c.Status(201).JSON(fiber.Map{"schedule": schedule})
}

func UpdateScheduleAPI(c *fiber.Ctx) error {
	schedule := new(models.Schedule)
	if err := c.BodyParser(schedule); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(schedule); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	if !ValidateTimeRange(schedule.StartTime, schedule.EndTime) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid time range"})
	}

	schedule.ID = c.Params("id")
	schedule.AcademyID = auth.AcademyID(c)

	if schedule.InstructorID != nil {
		conflict, err := database.CheckScheduleConflict(config.GetDB(), schedule.AcademyID,
			*schedule.InstructorID, schedule.DayOfWeek, schedule.StartTime, schedule.EndTime, schedule.ID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to check conflicts"})
		}
		if conflict {
			return c.Status(409).JSON(fiber.Map{"error": "Instructor already has a schedule in this time range"})
		}
	}

	if err := database.UpdateSchedule(config.GetDB(), schedule); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Schedule not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update schedule"})
	}

	return c.JSON(fiber.Map{"schedule": schedule})
}

func DeleteScheduleAPI(c *fiber.Ctx) error {
	if err := database.DeleteSchedule(config.GetDB(), auth.AcademyID(c), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Schedule not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete schedule"})
	}

	return c.JSON(fiber.Map{"message": "Schedule deleted"})
}
