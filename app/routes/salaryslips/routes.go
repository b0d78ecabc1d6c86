package salaryslips

import (
	"mecda-academy/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSalarySlipsRoutes(app *fiber.App) {
	api := app.Group("/api/salary-slips")
	api.Use(auth.AuthMiddleware)

	api.Get("/:teacherId", GetSalarySlipAPI)
}
