package salaryslips

import (
	"database/sql"

	"mecda-academy/app/config"
	"mecda-academy/app/database"
	"mecda-academy/app/models"
	"mecda-academy/app/payroll"
	"mecda-academy/app/reports"

	"github.com/gofiber/fiber/v2"
)

// GetSalarySlipAPI returns a teacher's class-by-class earning breakdown
// for ?month=&year=, optionally scoped by ?grade=. ?format=pdf or
// ?format=xlsx streams the rendered artifact instead of JSON.
func GetSalarySlipAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	teacherID := c.Params("teacherId")
	month := c.Query("month")
	year := c.Query("year")
	grade := c.Query("grade", models.GradeAll)
	if month == "" || year == "" {
		return c.Status(400).JSON(fiber.Map{"error": "month and year are required"})
	}

	teacher, err := database.GetTeacherByID(db, teacherID)
	if err != nil && err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher"})
	}

	scoped, err := database.GetSchedulesForPayout(db, teacherID, month, year, grade)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schedules"})
	}

	slip := reports.SalarySlipReport(teacher, scoped, month, year)
	summary := payroll.ComputePayout(teacher, scoped, teacherID, month, year, grade)

	switch c.Query("format") {
	case "pdf":
		return streamArtifact(c, slip, "pdf")
	case "xlsx":
		return streamArtifact(c, slip, "xlsx")
	}

	return c.JSON(fiber.Map{"slip": slip, "summary": summary})
}

func streamArtifact(c *fiber.Ctx, r reports.Report, format string) error {
	academy := academyProfile()

	var data []byte
	var contentType string
	var err error
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

func academyProfile() *models.AcademyInfo {
	academy, err := database.GetAcademyInfo(config.GetDB())
	if err != nil {
		fallback := models.DefaultAcademyInfo
		return &fallback
	}
	return academy
}
