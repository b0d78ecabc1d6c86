package settings

import (
	"mecda-academy/app/config"
	"mecda-academy/app/database"
	"mecda-academy/app/models"
	"mecda-academy/app/routes/auth"
	"mecda-academy/app/sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	changeBus *sync.Bus
	validate  = validator.New()
)

func SetupSettingsRoutes(app *fiber.App, bus *sync.Bus) {
	changeBus = bus

	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)

	api.Get("/academy", GetAcademyInfoAPI)
	api.Put("/academy", UpdateAcademyInfoAPI)
}

// GetAcademyInfoAPI returns the academy branding profile, falling back
// to the seed values if the row is somehow missing.
func GetAcademyInfoAPI(c *fiber.Ctx) error {
	academy, err := database.GetAcademyInfo(config.GetDB())
	if err != nil {
		fallback := models.DefaultAcademyInfo
		academy = &fallback
	}
	return c.JSON(fiber.Map{"academy": academy})
}

func UpdateAcademyInfoAPI(c *fiber.Ctx) error {
	academy := &models.AcademyInfo{}
	if err := c.BodyParser(academy); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(academy); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateAcademyInfo(config.GetDB(), academy); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update academy info"})
	}

	changeBus.Publish(sync.Event{Table: "academy_info", Action: "update"})
	return c.JSON(fiber.Map{"academy": academy})
}
