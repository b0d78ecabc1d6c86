package teachers

import (
	"database/sql"

	"mecda-academy/app/config"
	"mecda-academy/app/database"
	"mecda-academy/app/models"
	"mecda-academy/app/sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetAllTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.GetAllTeachers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}
	return c.JSON(fiber.Map{"teachers": teachers, "count": len(teachers)})
}

func GetTeacherAPI(c *fiber.Ctx) error {
	teacher, err := database.GetTeacherByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher"})
	}
	return c.JSON(fiber.Map{"teacher": teacher})
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	teacher := &models.Teacher{}
	if err := c.BodyParser(teacher); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	teacher.ID = ""
	if teacher.Status == "" {
		teacher.Status = models.Active
	}
	if err := validateTeacher(teacher); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateTeacher(config.GetDB(), teacher); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create teacher"})
	}

	changeBus.Publish(sync.Event{Table: "teachers", Action: "create"})
	return c.Status(201).JSON(fiber.Map{"teacher": teacher})
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	teacher := &models.Teacher{}
	if err := c.BodyParser(teacher); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	teacher.ID = c.Params("id")
	if err := validateTeacher(teacher); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateTeacher(config.GetDB(), teacher); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update teacher"})
	}

	changeBus.Publish(sync.Event{Table: "teachers", Action: "update"})
	return c.JSON(fiber.Map{"teacher": teacher})
}

func DeleteTeacherAPI(c *fiber.Ctx) error {
	// Schedules and payout records referencing this teacher are kept;
	// views resolve them to "Unknown".
	if err := database.DeleteTeacher(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete teacher"})
	}

	changeBus.Publish(sync.Event{Table: "teachers", Action: "delete"})
	return c.JSON(fiber.Map{"message": "Teacher deleted"})
}

func validateTeacher(t *models.Teacher) error {
	if err := validate.Struct(t); err != nil {
		return err
	}
	for _, g := range t.Grades {
		if !models.IsValidGrade(string(g)) {
			return fiber.NewError(fiber.StatusBadRequest, "invalid grade: "+string(g))
		}
	}
	if t.Rate.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "rate must not be negative")
	}
	return nil
}
