package payments

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

func GetPaymentsAPI(c *fiber.Ctx) error {
	payments, err := database.GetPayments(config.GetDB(), auth.AcademyID(c),
		c.Query("student_id"), c.Query("status"), c.Query("month"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	return c.JSON(fiber.Map{"payments": payments, "count": len(payments)})
}

func GetMonthlyRevenueAPI(c *fiber.Ctx) error {
	months := c.QueryInt("months", 12)
	if months < 1 || months > 36 {
		months = 12
	}

	revenue, err := database.GetMonthlyRevenue(config.GetDB(), auth.AcademyID(c), months)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch revenue"})
	}

	return c.JSON(fiber.Map{"revenue": revenue})
}

func GetPaymentByIDAPI(c *fiber.Ctx) error {
	payment, err := database.GetPaymentByID(config.GetDB(), auth.AcademyID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment"})
	}

	return c.JSON(fiber.Map{"payment": payment})
}

func CreatePaymentAPI(c *fiber.Ctx) error {
	payment := new(models.Payment)
	if err := c.BodyParser(payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(payment); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	payment.AcademyID = auth.AcademyID(c)
	if payment.Status == "" {
		payment.Status = models.PaymentCompleted
	}
	if payment.PaidAt.IsZero() {
		payment.PaidAt = time.Now()
	}

	if _, err := database.GetStudentByID(config.GetDB(), payment.AcademyID, payment.StudentID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	if err := database.CreatePayment(config.GetDB(), payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	return c.Status(201).JSON(fiber.Map{"payment": payment})
}

func UpdatePaymentAPI(c *fiber.Ctx) error {
	payment := new(models.Payment)
	if err := c.BodyParser(payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(payment); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	payment.ID = c.Params("id")
	payment.AcademyID = auth.AcademyID(c)
	if err := database.UpdatePayment(config.GetDB(), payment); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update payment"})
	}

	return c.JSON(fiber.Map{"payment": payment})
}

func DeletePaymentAPI(c *fiber.Ctx) error {
	if err := database.DeletePayment(config.GetDB(), auth.AcademyID(c), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete payment"})
	}

	return c.JSON(fiber.Map{"message": "Payment deleted"})
}
