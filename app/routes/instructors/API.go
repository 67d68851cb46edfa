package instructors

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/models"
	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
	"github.com/seanyjeong/academy-web-sub001/app/validation"
)

func GetInstructorsAPI(c *fiber.Ctx) error {
	instructors, err := database.GetInstructors(config.GetDB(), auth.AcademyID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch instructors"})
	}

	return c.JSON(fiber.Map{"instructors": instructors, "count": len(instructors)})
}

func GetInstructorByIDAPI(c *fiber.Ctx) error {
	instructor, err := database.GetInstructorByID(config.GetDB(), auth.AcademyID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Instructor not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch instructor"})
	}

	return c.JSON(fiber.Map{"instructor": instructor})
}

func CreateInstructorAPI(c *fiber.Ctx) error {
	instructor := new(models.Instructor)
	if err := c.BodyParser(instructor); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(instructor); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	instructor.AcademyID = auth.AcademyID(c)
	if err := database.CreateInstructor(config.GetDB(), instructor); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create instructor"})
	}

	return c.Status(201).JSON(fiber.Map{"instructor": instructor})
}

func UpdateInstructorAPI(c *fiber.Ctx) error {
	instructor := new(models.Instructor)
	if err := c.BodyParser(instructor); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(instructor); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	instructor.ID = c.Params("id")
	instructor.AcademyID = auth.AcademyID(c)
	if err := database.UpdateInstructor(config.GetDB(), instructor); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Instructor not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update instructor"})
	}

	return c.JSON(fiber.Map{"instructor": instructor})
}

func DeleteInstructorAPI(c *fiber.Ctx) error {
	if err := database.DeleteInstructor(config.GetDB(), auth.AcademyID(c), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Instructor not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete instructor"})
	}

	return c.JSON(fiber.Map{"message": "Instructor deleted"})
}
