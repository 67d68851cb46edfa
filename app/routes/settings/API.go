package settings

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/models"
	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
	"github.com/seanyjeong/academy-web-sub001/app/validation"
)

func GetSettingsAPI(c *fiber.Ctx) error {
	settings, err := database.GetAcademySettings(config.GetDB(), auth.AcademyID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}

	return c.JSON(fiber.Map{"settings": settings})
}

func UpdateSettingsAPI(c *fiber.Ctx) error {
	settings := new(models.AcademySettings)
	if err := c.BodyParser(settings); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if fields := validateWeeklyHours(settings.WeeklyHours); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	for i, b := range settings.BlockedSlots {
		if fields := validation.Struct(&settings.BlockedSlots[i]); fields != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields, "blocked_slot": b.Date})
		}
	}
	if settings.SlotDurationMinutes <= 0 {
		settings.SlotDurationMinutes = 30
	}

	settings.AcademyID = auth.AcademyID(c)
	if err := database.SaveAcademySettings(config.GetDB(), settings); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save settings"})
	}

	return c.JSON(fiber.Map{"settings": settings})
}

func GetAcademyAPI(c *fiber.Ctx) error {
	academy, err := database.GetAcademyByID(config.GetDB(), auth.AcademyID(c))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Academy not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch academy"})
	}

	return c.JSON(fiber.Map{"academy": academy})
}

func UpdateAcademyAPI(c *fiber.Ctx) error {
	academy := new(models.Academy)
	if err := c.BodyParser(academy); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(academy); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	academy.ID = auth.AcademyID(c)
	if err := database.UpdateAcademy(config.GetDB(), academy); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Academy not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update academy"})
	}

	return c.JSON(fiber.Map{"academy": academy})
}

// validateWeeklyHours rejects unknown weekday keys and ranges that are
// not well-formed "HH:MM-HH:MM" with start before end. Saved settings
// feed the public booking form, so bad ranges are caught here rather
// than silently skipped at slot time.
func validateWeeklyHours(hours map[string][]string) map[string]string {
	fields := map[string]string{}
	for day, ranges := range hours {
		if !models.IsWeekdayKey(day) {
			fields[day] = "unknown weekday key"
			continue
		}
		for _, r := range ranges {
			parts := strings.SplitN(r, "-", 2)
			if len(parts) != 2 || !validTimeRange(parts[0], parts[1]) {
				fields[day] = "invalid time range: " + r
				break
			}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func validTimeRange(start, end string) bool {
	return validHHMM(start) && validHHMM(end) && start < end
}

func validHHMM(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return h < 24 && m < 60
}
