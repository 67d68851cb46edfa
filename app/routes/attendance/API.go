package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/models"
	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
	"github.com/seanyjeong/academy-web-sub001/app/validation"
)

func GetAttendancesAPI(c *fiber.Ctx) error {
	attendances, err := database.GetAttendances(config.GetDB(), auth.AcademyID(c),
		c.Query("date"), c.Query("student_id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{"attendances": attendances, "count": len(attendances)})
}

func MarkAttendanceAPI(c *fiber.Ctx) error {
	attendance := new(models.Attendance)
	if err := c.BodyParser(attendance); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(attendance); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	attendance.AcademyID = auth.AcademyID(c)
	userID := auth.CurrentUser(c).ID
	attendance.MarkedBy = &userID

	if err := database.MarkAttendance(config.GetDB(), attendance); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark attendance"})
	}

	return c.JSON(fiber.Map{"attendance": attendance})
}

// BulkMarkAttendanceAPI marks a whole class in one call. Rows are
// validated up front; a row failing mid-way stops the batch and
// reports how many were written.
func BulkMarkAttendanceAPI(c *fiber.Ctx) error {
	type BulkRequest struct {
		Records []*models.Attendance `json:"records" validate:"required,min=1,dive"`
	}

	var req BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	academyID := auth.AcademyID(c)
	userID := auth.CurrentUser(c).ID

	marked := 0
	for _, record := range req.Records {
		record.AcademyID = academyID
		record.MarkedBy = &userID
		if err := database.MarkAttendance(config.GetDB(), record); err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error":  "Failed to mark attendance",
				"marked": marked,
			})
		}
		marked++
	}

	return c.JSON(fiber.Map{"marked": marked})
}
