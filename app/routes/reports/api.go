package reports

import (
	"mecda-academy/app/config"
	"mecda-academy/app/database"
	"mecda-academy/app/models"
	"mecda-academy/app/reports"

	"github.com/gofiber/fiber/v2"
)

// StudentPaymentsReportAPI exports the fee collection ledger,
// optionally narrowed to one grade + month + year period.
func StudentPaymentsReportAPI(c *fiber.Ctx) error {
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

	students, err := database.GetAllStudents(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return respond(c, reports.StudentPaymentsReport(payments, reports.StudentIndex(students)))
}

// TeacherDirectoryReportAPI exports the staff directory and
// compensation listing.
func TeacherDirectoryReportAPI(c *fiber.Ctx) error {
	teachers, err := database.GetAllTeachers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}
	return respond(c, reports.TeacherDirectoryReport(teachers))
}

// TeacherPaymentsReportAPI exports the committed payout ledger,
// optionally narrowed by ?month="January 2025" and ?grade=.
func TeacherPaymentsReportAPI(c *fiber.Ctx) error {
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

	teachers, err := database.GetAllTeachers(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}

	return respond(c, reports.TeacherPaymentsReport(payments, reports.TeacherIndex(teachers)))
}

// ScheduleLogReportAPI exports the class log.
func ScheduleLogReportAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	schedules, err := database.GetAllSchedules(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schedules"})
	}
	teachers, err := database.GetAllTeachers(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}

	return respond(c, reports.ScheduleLogReport(schedules, reports.TeacherIndex(teachers)))
}

// AttendanceBySubjectReportAPI exports per-subject attendance
// percentages.
func AttendanceBySubjectReportAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	records, err := database.GetAllAttendance(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	schedules, err := database.GetAllSchedules(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schedules"})
	}

	return respond(c, reports.AttendanceBySubjectReport(records, schedules))
}

// respond returns the shaped table as JSON, or streams the rendered
// artifact when ?format=pdf or ?format=xlsx is set.
func respond(c *fiber.Ctx, r reports.Report) error {
	format := c.Query("format")
	if format != "pdf" && format != "xlsx" {
		return c.JSON(fiber.Map{"report": r})
	}

	academy, err := database.GetAcademyInfo(config.GetDB())
	if err != nil {
		fallback := models.DefaultAcademyInfo
		academy = &fallback
	}

	var data []byte
	var contentType string
	if format == "pdf" {
		data, err = reports.RenderPDF(academy, r)
		contentType = "application/pdf"
	} else {
		data, err = reports.RenderExcel(academy, r)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to render report"})
	}

	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", `attachment; filename="`+r.Filename+"."+format+`"`)
	return c.Send(data)
}
