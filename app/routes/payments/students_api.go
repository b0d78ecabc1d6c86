package payments

import (
	"database/sql"

	"mecda-academy/app/config"
	"mecda-academy/app/database"
	"mecda-academy/app/models"
	"mecda-academy/app/payroll"
	"mecda-academy/app/sync"
	"mecda-academy/app/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetStudentPaymentsAPI lists fee entries, optionally narrowed to one
// grade + month + year period via query params (all three together).
func GetStudentPaymentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	grade, month, year := c.Query("grade"), c.Query("month"), c.Query("year")

	var payments []*models.StudentPayment
	var err error
	if grade != "" && month != "" && year != "" {
		payments, err = database.GetStudentPaymentsByPeriod(db, grade, month, year)
	} else {
		payments, err = database.GetAllStudentPayments(db)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(fiber.Map{"payments": payments, "count": len(payments)})
}

func GetStudentLedgerAPI(c *fiber.Ctx) error {
	payments, err := database.GetStudentPaymentsByStudent(config.GetDB(), c.Params("studentId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(fiber.Map{"payments": payments, "count": len(payments)})
}

func GetStudentPaymentAPI(c *fiber.Ctx) error {
	payment, err := database.GetStudentPaymentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment"})
	}
	return c.JSON(fiber.Map{"payment": payment})
}

// CreateStudentPaymentAPI records a fee entry. The response carries a
// wa.me link with the confirmation message when the student has a
// WhatsApp number; edits never re-offer the link.
func CreateStudentPaymentAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	payment := &models.StudentPayment{}
	if err := c.BodyParser(payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	payment.ID = ""
	if err := validateStudentPayment(payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	payroll.ReconcileStudentPayment(payment)

	if err := database.CreateStudentPayment(db, payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	changeBus.Publish(sync.Event{Table: "student_payments", Action: "create"})

	resp := fiber.Map{"payment": payment}
	if student, err := database.GetStudentByID(db, payment.StudentID); err == nil && student.WhatsApp != "" {
		resp["whatsapp_link"] = utils.WhatsAppLink(student.WhatsApp, utils.StudentPaymentMessage(student, payment))
	}
	return c.Status(201).JSON(resp)
}

func UpdateStudentPaymentAPI(c *fiber.Ctx) error {
	payment := &models.StudentPayment{}
	if err := c.BodyParser(payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	payment.ID = c.Params("id")
	if err := validateStudentPayment(payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	payroll.ReconcileStudentPayment(payment)

	if err := database.UpdateStudentPayment(config.GetDB(), payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update payment"})
	}

	changeBus.Publish(sync.Event{Table: "student_payments", Action: "update"})
	return c.JSON(fiber.Map{"payment": payment})
}

func DeleteStudentPaymentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudentPayment(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete payment"})
	}

	changeBus.Publish(sync.Event{Table: "student_payments", Action: "delete"})
	return c.JSON(fiber.Map{"message": "Payment deleted"})
}

func validateStudentPayment(p *models.StudentPayment) error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	if !models.IsValidGrade(string(p.Grade)) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid grade: "+string(p.Grade))
	}
	if p.TotalFee.IsNegative() || p.PaidAmount.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "amounts must not be negative")
	}
	return nil
}
