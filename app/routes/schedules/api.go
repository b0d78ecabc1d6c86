package schedules

import (
	"database/sql"

	"mecda-academy/app/config"
	"mecda-academy/app/database"
	"mecda-academy/app/models"
	"mecda-academy/app/sync"
	"mecda-academy/app/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetAllSchedulesAPI(c *fiber.Ctx) error {
	schedules, err := database.GetAllSchedules(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schedules"})
	}
	return c.JSON(fiber.Map{"schedules": schedules, "count": len(schedules)})
}

func GetScheduleAPI(c *fiber.Ctx) error {
	schedule, err := database.GetScheduleByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Schedule not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schedule"})
	}
	return c.JSON(fiber.Map{"schedule": schedule})
}

func CreateScheduleAPI(c *fiber.Ctx) error {
	schedule := &models.ClassSchedule{}
	if err := c.BodyParser(schedule); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	schedule.ID = ""
	if err := prepareSchedule(schedule); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateSchedule(config.GetDB(), schedule); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create schedule"})
	}

	changeBus.Publish(sync.Event{Table: "schedules", Action: "create"})
	return c.Status(201).JSON(fiber.Map{"schedule": schedule})
}

func UpdateScheduleAPI(c *fiber.Ctx) error {
	schedule := &models.ClassSchedule{}
	if err := c.BodyParser(schedule); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	schedule.ID = c.Params("id")
	if err := prepareSchedule(schedule); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateSchedule(config.GetDB(), schedule); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update schedule"})
	}

	changeBus.Publish(sync.Event{Table: "schedules", Action: "update"})
	return c.JSON(fiber.Map{"schedule": schedule})
}

func DeleteScheduleAPI(c *fiber.Ctx) error {
	if err := database.DeleteSchedule(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete schedule"})
	}

	changeBus.Publish(sync.Event{Table: "schedules", Action: "delete"})
	return c.JSON(fiber.Map{"message": "Schedule deleted"})
}

// prepareSchedule validates the client-supplied fields and rewrites the
// derived ones. TotalHours, Month and Year are always recomputed here;
// values sent by the client are discarded.
func prepareSchedule(s *models.ClassSchedule) error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	if !models.IsValidGrade(string(s.Grade)) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid grade: "+string(s.Grade))
	}
	if s.RateOverride != nil && s.RateOverride.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "rate override must not be negative")
	}

	hours, err := utils.CalculateHours(s.StartTime, s.EndTime)
	if err != nil {
		return err
	}
	month, year, err := utils.PeriodFromDate(s.Date)
	if err != nil {
		return err
	}
	s.TotalHours = hours
	s.Month = month
	s.Year = year
	return nil
}
