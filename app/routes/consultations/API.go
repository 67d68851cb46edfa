package consultations

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

func GetConsultationsAPI(c *fiber.Ctx) error {
	consultations, err := database.GetConsultations(config.GetDB(), auth.AcademyID(c),
		c.Query("status"), c.Query("date"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch consultations"})
	}

	return c.JSON(fiber.Map{"consultations": consultations, "count": len(consultations)})
}

func GetConsultationByIDAPI(c *fiber.Ctx) error {
	consultation, err := database.GetConsultationByID(config.GetDB(), auth.AcademyID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Consultation not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch consultation"})
	}

	return c.JSON(fiber.Map{"consultation": consultation})
}

// CreateConsultationAPI records a consultation created by staff, as
// opposed to one arriving through the public booking form.
func CreateConsultationAPI(c *fiber.Ctx) error {
	consultation := new(models.Consultation)
	if err := c.BodyParser(consultation); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(consultation); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	consultation.AcademyID = auth.AcademyID(c)
	consultation.Status = models.ConsultationPending
	consultation.ReservationNo = models.NewReservationNo(time.Now())

	if err := database.CreateConsultation(config.GetDB(), consultation); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create consultation"})
	}

	return c.Status(201).JSON(fiber.Map{"consultation": consultation})
}

func UpdateConsultationAPI(c *fiber.Ctx) error {
	existing, err := database.GetConsultationByID(config.GetDB(), auth.AcademyID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Consultation not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch consultation"})
	}

	consultation := new(models.Consultation)
	if err := c.BodyParser(consultation); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(consultation); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	// Status changes go through the dedicated endpoint.
	consultation.ID = existing.ID
	consultation.AcademyID = existing.AcademyID
	consultation.Status = existing.Status

	if err := database.UpdateConsultation(config.GetDB(), consultation); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update consultation"})
	}

	return c.JSON(fiber.Map{"consultation": consultation})
}

// UpdateStatusAPI advances a consultation through its lifecycle:
// pending -> in_progress -> completed, with cancellation allowed from
// the two non-terminal states.
func UpdateStatusAPI(c *fiber.Ctx) error {
	type StatusRequest struct {
		Status models.ConsultationStatus `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	consultation, err := database.GetConsultationByID(config.GetDB(), auth.AcademyID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Consultation not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch consultation"})
	}

	if !consultation.CanTransition(req.Status) {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid status transition",
			"from":  consultation.Status,
			"to":    req.Status,
		})
	}

	consultation.Status = req.Status
	if req.Status == models.ConsultationInProgress && consultation.AssignedTo == nil {
		userID := auth.CurrentUser(c).ID
		consultation.AssignedTo = &userID
	}

	if err := database.UpdateConsultation(config.GetDB(), consultation); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update consultation"})
	}

	return c.JSON(fiber.Map{"consultation": consultation})
}

func DeleteConsultationAPI(c *fiber.Ctx) error {
	if err := database.DeleteConsultation(config.GetDB(), auth.AcademyID(c), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Consultation not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete consultation"})
	}

	return c.JSON(fiber.Map{"message": "Consultation deleted"})
}
