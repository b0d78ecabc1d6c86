package attendance

import (
	"mecda-academy/app/routes/auth"
	"mecda-academy/app/sync"

	"github.com/gofiber/fiber/v2"
)

var changeBus *sync.Bus

func SetupAttendanceRoutes(app *fiber.App, bus *sync.Bus) {
	changeBus = bus

	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAllAttendanceAPI)
	api.Get("/class/:classId", GetClassAttendanceAPI)
	api.Get("/class/:classId/roster", GetClassRosterAPI)
	api.Post("/class/:classId", MarkAttendanceAPI)
}
