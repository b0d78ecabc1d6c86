package payments

import (
	"database/sql"
	"strings"

	"mecda-academy/app/config"
	"mecda-academy/app/database"
	"mecda-academy/app/models"
	"mecda-academy/app/payroll"
	"mecda-academy/app/sync"

	"github.com/gofiber/fiber/v2"
)

// GetTeacherPaymentsAPI lists payout records, optionally narrowed by
// ?month="January 2025" and ?grade=.
func GetTeacherPaymentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	month, grade := c.Query("month"), c.Query("grade")

	var payments []*models.TeacherPayment
	var err error
	if month != "" {
		payments, err = database.GetTeacherPaymentsByMonth(db, month, grade)
	} else {
		payments, err = database.GetAllTeacherPayments(db)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(fiber.Map{"payments": payments, "count": len(payments)})
}

func GetTeacherPayoutHistoryAPI(c *fiber.Ctx) error {
	payments, err := database.GetTeacherPaymentsByTeacher(config.GetDB(), c.Params("teacherId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(fiber.Map{"payments": payments, "count": len(payments)})
}

func GetTeacherPaymentAPI(c *fiber.Ctx) error {
	payment, err := database.GetTeacherPaymentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment"})
	}
	return c.JSON(fiber.Map{"payment": payment})
}

// PreviewTeacherPayoutAPI computes the payout for a scope without
// committing anything. amount_paid in the preview defaults to the full
// payable so the commit form starts pre-filled.
func PreviewTeacherPayoutAPI(c *fiber.Ctx) error {
	teacherID := c.Query("teacher_id")
	month := c.Query("month")
	year := c.Query("year")
	grade := c.Query("grade", models.GradeAll)
	if teacherID == "" || month == "" || year == "" {
		return c.Status(400).JSON(fiber.Map{"error": "teacher_id, month and year are required"})
	}

	summary, err := computePayoutSnapshot(teacherID, month, year, grade)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute payout"})
	}

	return c.JSON(fiber.Map{
		"summary":     summary,
		"amount_paid": summary.AmountPayable,
	})
}

// CreateTeacherPaymentAPI commits a payout record. The snapshot fields
// are recomputed server-side from the matching schedules; whatever the
// client sent for them is discarded.
func CreateTeacherPaymentAPI(c *fiber.Ctx) error {
	payment := &models.TeacherPayment{}
	if err := c.BodyParser(payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	payment.ID = ""
	if err := prepareTeacherPayment(payment); err != nil {
		return teacherPaymentError(c, err)
	}

	if err := database.CreateTeacherPayment(config.GetDB(), payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	changeBus.Publish(sync.Event{Table: "teacher_payments", Action: "create"})
	return c.Status(201).JSON(fiber.Map{"payment": payment, "clearance": payment.ClearanceStatus()})
}

// UpdateTeacherPaymentAPI edits a payout record. Editing re-freezes the
// snapshot against the schedules as they stand now.
func UpdateTeacherPaymentAPI(c *fiber.Ctx) error {
	payment := &models.TeacherPayment{}
	if err := c.BodyParser(payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	payment.ID = c.Params("id")
	if err := prepareTeacherPayment(payment); err != nil {
		return teacherPaymentError(c, err)
	}

	if err := database.UpdateTeacherPayment(config.GetDB(), payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update payment"})
	}

	changeBus.Publish(sync.Event{Table: "teacher_payments", Action: "update"})
	return c.JSON(fiber.Map{"payment": payment, "clearance": payment.ClearanceStatus()})
}

func DeleteTeacherPaymentAPI(c *fiber.Ctx) error {
	if err := database.DeleteTeacherPayment(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete payment"})
	}

	changeBus.Publish(sync.Event{Table: "teacher_payments", Action: "delete"})
	return c.JSON(fiber.Map{"message": "Payment deleted"})
}

// teacherPaymentError maps a prepareTeacherPayment failure to its
// response: validation failures carry a 400 as *fiber.Error, anything
// else is a store read failing during the snapshot computation.
func teacherPaymentError(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Failed to compute payout"})
}

func prepareTeacherPayment(p *models.TeacherPayment) error {
	if err := validate.Struct(p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if p.AmountPaid.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "amount paid must not be negative")
	}
	if p.Grade == "" {
		p.Grade = models.GradeAll
	}

	month, year, ok := splitPeriod(p.Month)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "month must look like \"January 2025\"")
	}

	summary, err := computePayoutSnapshot(p.TeacherID, month, year, p.Grade)
	if err != nil {
		return err
	}
	p.TotalClasses = summary.TotalClasses
	p.TotalHours = summary.TotalHours
	p.AmountPayable = summary.AmountPayable
	return nil
}

// computePayoutSnapshot loads the teacher and the in-scope schedules
// and runs the salary engine. A missing teacher is passed through as
// nil, which the engine resolves to a zero rate.
func computePayoutSnapshot(teacherID, month, year, grade string) (payroll.PayoutSummary, error) {
	db := config.GetDB()

	teacher, err := database.GetTeacherByID(db, teacherID)
	if err != nil && err != sql.ErrNoRows {
		return payroll.PayoutSummary{}, err
	}

	schedules, err := database.GetSchedulesForPayout(db, teacherID, month, year, grade)
	if err != nil {
		return payroll.PayoutSummary{}, err
	}

	return payroll.ComputePayout(teacher, schedules, teacherID, month, year, grade), nil
}

// splitPeriod splits the "Month Year" composite, e.g. "January 2025".
func splitPeriod(period string) (month, year string, ok bool) {
	idx := strings.LastIndex(period, " ")
	if idx <= 0 || idx == len(period)-1 {
		return "", "", false
	}
	return period[:idx], period[idx+1:], true
}
