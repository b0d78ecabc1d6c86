package schedules

import (
	"mecda-academy/app/routes/auth"
	"mecda-academy/app/sync"

	"github.com/gofiber/fiber/v2"
)

var changeBus *sync.Bus

func SetupSchedulesRoutes(app *fiber.App, bus *sync.Bus) {
	changeBus = bus

	api := app.Group("/api/schedules")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAllSchedulesAPI)
	api.Get("/:id", GetScheduleAPI)
	api.Post("/", CreateScheduleAPI)
	api.Put("/:id", UpdateScheduleAPI)
	api.Delete("/:id", DeleteScheduleAPI)
}
