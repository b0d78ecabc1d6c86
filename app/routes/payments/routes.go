package payments

import (
	"mecda-academy/app/routes/auth"
	"mecda-academy/app/sync"

	"github.com/gofiber/fiber/v2"
)

var changeBus *sync.Bus

func SetupPaymentsRoutes(app *fiber.App, bus *sync.Bus) {
	changeBus = bus

	students := app.Group("/api/payments/students")
	students.Use(auth.AuthMiddleware)
	students.Get("/", GetStudentPaymentsAPI)
	students.Get("/student/:studentId", GetStudentLedgerAPI)
	students.Get("/:id", GetStudentPaymentAPI)
	students.Post("/", CreateStudentPaymentAPI)
	students.Put("/:id", UpdateStudentPaymentAPI)
	students.Delete("/:id", DeleteStudentPaymentAPI)

	teachers := app.Group("/api/payments/teachers")
	teachers.Use(auth.AuthMiddleware)
	teachers.Get("/", GetTeacherPaymentsAPI)
	teachers.Get("/preview", PreviewTeacherPayoutAPI)
	teachers.Get("/teacher/:teacherId", GetTeacherPayoutHistoryAPI)
	teachers.Get("/:id", GetTeacherPaymentAPI)
	teachers.Post("/", CreateTeacherPaymentAPI)
	teachers.Put("/:id", UpdateTeacherPaymentAPI)
	teachers.Delete("/:id", DeleteTeacherPaymentAPI)
}
