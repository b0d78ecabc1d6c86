package dashboard

import (
	"time"

	"mecda-academy/app/config"
	"mecda-academy/app/database"
	"mecda-academy/app/routes/auth"
	"mecda-academy/app/utils"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", GetStatsAPI)
}

// GetStatsAPI returns the landing-page headline numbers: active
// headcounts, total revenue collected, this month's session count and
// the per-grade enrollment spread.
func GetStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	students, err := database.CountActiveStudents(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stats"})
	}
	teachers, err := database.CountActiveTeachers(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stats"})
	}
	revenue, err := database.GetTotalRevenue(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stats"})
	}

	now := time.Now()
	classes, err := database.CountSchedulesInPeriod(db, now.Month().String(), now.Format("2006"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stats"})
	}

	byGrade, err := database.GetStudentCountsByGrade(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stats"})
	}

	recent, err := database.GetRecentStudentPayments(db, 5)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stats"})
	}

	return c.JSON(fiber.Map{
		"active_students":    students,
		"active_teachers":    teachers,
		"total_revenue":      revenue,
		"revenue_display":    utils.FormatCurrency(revenue),
		"classes_this_month": classes,
		"students_by_grade":  byGrade,
		"recent_payments":    recent,
	})
}
