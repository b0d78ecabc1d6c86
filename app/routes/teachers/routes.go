package teachers

import (
	"mecda-academy/app/routes/auth"
	"mecda-academy/app/sync"

	"github.com/gofiber/fiber/v2"
)

var changeBus *sync.Bus

func SetupTeachersRoutes(app *fiber.App, bus *sync.Bus) {
	changeBus = bus

	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAllTeachersAPI)
	api.Get("/:id", GetTeacherAPI)
	api.Post("/", CreateTeacherAPI)
	api.Put("/:id", UpdateTeacherAPI)
	api.Delete("/:id", DeleteTeacherAPI)
}
