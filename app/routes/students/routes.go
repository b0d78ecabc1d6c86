package students

import (
	"mecda-academy/app/routes/auth"
	"mecda-academy/app/sync"

	"github.com/gofiber/fiber/v2"
)

var changeBus *sync.Bus

func SetupStudentsRoutes(app *fiber.App, bus *sync.Bus) {
	changeBus = bus

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAllStudentsAPI)
	api.Get("/:id", GetStudentAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)
}
