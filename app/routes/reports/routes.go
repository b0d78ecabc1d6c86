package reports

import (
	"mecda-academy/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupReportsRoutes(app *fiber.App) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Get("/student-payments", StudentPaymentsReportAPI)
	api.Get("/teacher-directory", TeacherDirectoryReportAPI)
	api.Get("/teacher-payments", TeacherPaymentsReportAPI)
	api.Get("/schedule-log", ScheduleLogReportAPI)
	api.Get("/attendance-by-subject", AttendanceBySubjectReportAPI)
}
