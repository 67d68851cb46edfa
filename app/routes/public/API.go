package public

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/seanyjeong/academy-web-sub001/app/booking"
	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/models"
	"github.com/seanyjeong/academy-web-sub001/app/services"
	"github.com/seanyjeong/academy-web-sub001/app/validation"
)

func resolveAcademy(c *fiber.Ctx) (*models.Academy, error) {
	academy, err := database.GetAcademyBySlug(config.GetDB(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, c.Status(404).JSON(fiber.Map{"error": "Academy not found"})
		}
		return nil, c.Status(500).JSON(fiber.Map{"error": "Failed to fetch academy"})
	}
	return academy, nil
}

// bookingConfigPayload is what the public booking form needs to
// render: academy identity, weekly hours, slot duration, blocked
// dates, and the earliest selectable date.
func bookingConfigPayload(academy *models.Academy, settings *models.AcademySettings, minDate string) fiber.Map {
	return fiber.Map{
		"academy": fiber.Map{
			"name":    academy.Name,
			"slug":    academy.Slug,
			"phone":   academy.Phone,
			"address": academy.Address,
		},
		"weekly_hours":          settings.WeeklyHours,
		"slot_duration_minutes": settings.SlotDurationMinutes,
		"blocked_dates":         database.BlockedDates(settings.BlockedSlots),
		"min_date":              minDate,
	}
}

func GetBookingConfigAPI(c *fiber.Ctx) error {
	academy, err := resolveAcademy(c)
	if academy == nil {
		return err
	}

	settings, err := database.GetAcademySettings(config.GetDB(), academy.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}

	return c.JSON(bookingConfigPayload(academy, settings, booking.MinBookableDate(time.Local)))
}

// checkBookingDate parses a candidate date and rejects the past. The
// parse comes first so a malformed string reads as malformed, not as
// a past date. A non-empty message means rejection.
func checkBookingDate(dateStr, minDate string) (time.Time, string) {
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, "Invalid date"
	}
	if dateStr < minDate {
		return time.Time{}, "Date is in the past"
	}
	return date, ""
}

// slotsPayload carries the availability bit alongside the generated
// slots: under the permissive policy a day can be available with no
// configured slots, and the form needs to tell that apart from a
// closed or blocked day.
func slotsPayload(dateStr string, date time.Time, settings *models.AcademySettings) fiber.Map {
	blocked := database.BlockedDates(settings.BlockedSlots)
	slots := booking.SlotsForDate(date, settings.WeeklyHours, settings.SlotDurationMinutes, blocked)
	if slots == nil {
		slots = []string{}
	}
	return fiber.Map{
		"date":      dateStr,
		"available": booking.IsDateAvailable(date, settings.WeeklyHours, blocked),
		"slots":     slots,
	}
}

func GetBookingSlotsAPI(c *fiber.Ctx) error {
	academy, err := resolveAcademy(c)
	if academy == nil {
		return err
	}

	dateStr := c.Query("date")
	date, reject := checkBookingDate(dateStr, booking.MinBookableDate(time.Local))
	if reject != "" {
		return c.Status(400).JSON(fiber.Map{"error": reject})
	}

	settings, err := database.GetAcademySettings(config.GetDB(), academy.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}

	return c.JSON(slotsPayload(dateStr, date, settings))
}

// CreateBookingAPI accepts a public booking. The requested date and
// slot are re-checked against the current settings so a form rendered
// before a settings change cannot book a closed slot.
func CreateBookingAPI(c *fiber.Ctx) error {
	academy, err := resolveAcademy(c)
	if academy == nil {
		return err
	}

	consultation := new(models.Consultation)
	if err := c.BodyParser(consultation); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	consultation.AcademyID = academy.ID
	consultation.Status = models.ConsultationPending
	consultation.AssignedTo = nil
	if fields := validation.Struct(consultation); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	date, reject := checkBookingDate(consultation.Date, booking.MinBookableDate(time.Local))
	if reject != "" {
		return c.Status(400).JSON(fiber.Map{"error": reject})
	}

	settings, err := database.GetAcademySettings(config.GetDB(), academy.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}

	blockedDates := database.BlockedDates(settings.BlockedSlots)
	if !booking.IsDateAvailable(date, settings.WeeklyHours, blockedDates) {
		return c.Status(409).JSON(fiber.Map{"error": "Date is not available"})
	}
	if booking.HasAnyHours(settings.WeeklyHours) {
		slots := booking.SlotsForDate(date, settings.WeeklyHours,
			settings.SlotDurationMinutes, blockedDates)
		if !containsSlot(slots, consultation.StartTime) {
			return c.Status(409).JSON(fiber.Map{"error": "Slot is not available"})
		}
	}

	consultation.ReservationNo = models.NewReservationNo(time.Now())
	if err := database.CreateConsultation(config.GetDB(), consultation); err != nil {
		log.Error().Err(err).Str("academy_id", academy.ID).Msg("public booking failed")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	return c.Status(201).JSON(fiber.Map{
		"reservation_no": consultation.ReservationNo,
		"date":           consultation.Date,
		"start_time":     consultation.StartTime,
		"status":         consultation.Status,
	})
}

// GetReservationAPI lets a visitor check a booking by its reservation
// number. Only the fields the visitor submitted come back.
func GetReservationAPI(c *fiber.Ctx) error {
	consultation, err := database.GetConsultationByReservationNo(config.GetDB(), c.Params("number"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Reservation not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch reservation"})
	}

	return c.JSON(fiber.Map{
		"reservation_no": consultation.ReservationNo,
		"name":           consultation.Name,
		"date":           consultation.Date,
		"start_time":     consultation.StartTime,
		"status":         consultation.Status,
	})
}

func GetPublicTestsAPI(c *fiber.Ctx) error {
	academy, err := resolveAcademy(c)
	if academy == nil {
		return err
	}

	settings, err := database.GetAcademySettings(config.GetDB(), academy.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}
	if !settings.ScoreboardPublic {
		return c.Status(404).JSON(fiber.Map{"error": "Scoreboard not available"})
	}

	tests, err := database.GetPublicMonthlyTests(config.GetDB(), academy.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tests"})
	}

	return c.JSON(fiber.Map{"academy": academy.Name, "tests": tests})
}

// GetPublicScoreboardAPI serves a ranked scoreboard without auth. Both
// the academy-level switch and the per-test is_public flag must be on.
func GetPublicScoreboardAPI(c *fiber.Ctx) error {
	academy, err := resolveAcademy(c)
	if academy == nil {
		return err
	}

	settings, err := database.GetAcademySettings(config.GetDB(), academy.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}
	if !settings.ScoreboardPublic {
		return c.Status(404).JSON(fiber.Map{"error": "Scoreboard not available"})
	}

	test, err := database.GetMonthlyTestByID(config.GetDB(), academy.ID, c.Params("testID"))
	if err != nil || !test.IsPublic {
		if err != nil && !errors.Is(err, database.ErrNotFound) {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch test"})
		}
		return c.Status(404).JSON(fiber.Map{"error": "Scoreboard not available"})
	}

	ranked, err := services.GetScoreboard(c.Context(), config.GetDB(), config.GetCache(), test.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch scoreboard"})
	}

	return c.JSON(fiber.Map{
		"test":       fiber.Map{"id": test.ID, "title": test.Title, "month": test.Month},
		"scoreboard": ranked,
	})
}

func containsSlot(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}
