package attendance

import (
	"database/sql"
	"log"

	"mecda-academy/app/config"
	"mecda-academy/app/database"
	"mecda-academy/app/models"
	"mecda-academy/app/sync"

	"github.com/gofiber/fiber/v2"
)

func GetAllAttendanceAPI(c *fiber.Ctx) error {
	records, err := database.GetAllAttendance(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	return c.JSON(fiber.Map{"attendance": records, "count": len(records)})
}

func GetClassAttendanceAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	classID := c.Params("classId")

	records, err := database.GetAttendanceByClass(db, classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	return c.JSON(fiber.Map{
		"attendance": records,
		"marked":     len(records) > 0,
	})
}

// GetClassRosterAPI returns the session plus the active students of its
// grade, the list a marking form is built from. Already-marked sessions
// report marked=true so the caller can render read-only.
func GetClassRosterAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	classID := c.Params("classId")

	schedule, err := database.GetScheduleByID(db, classID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}

	marked, err := database.HasAttendanceForClass(db, classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check attendance"})
	}

	students, err := database.GetActiveStudentsByGrade(db, schedule.Grade)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"schedule": schedule,
		"students": students,
		"marked":   marked,
	})
}

// MarkAttendanceAPI records attendance for one session in a single
// submission. A session that already has any attendance rows cannot be
// marked again; there is no per-row correction path.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	type MarkRequest struct {
		Records []struct {
			StudentID string `json:"student_id"`
			IsPresent bool   `json:"is_present"`
		} `json:"records"`
	}

	db := config.GetDB()
	classID := c.Params("classId")

	schedule, err := database.GetScheduleByID(db, classID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}

	marked, err := database.HasAttendanceForClass(db, classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check attendance"})
	}
	if marked {
		return c.Status(409).JSON(fiber.Map{"error": "Attendance already marked for this class"})
	}

	var req MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Records) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No attendance records provided"})
	}

	// Rows are written one by one; a failure partway leaves the rows
	// already inserted, which the gate above then treats as marked.
	saved := 0
	for _, r := range req.Records {
		a := &models.Attendance{
			StudentID: r.StudentID,
			ClassID:   classID,
			Date:      schedule.Date,
			IsPresent: r.IsPresent,
		}
		if err := database.CreateAttendance(db, a); err != nil {
			log.Printf("attendance insert failed for student %s: %v", r.StudentID, err)
			return c.Status(500).JSON(fiber.Map{
				"error": "Failed to save attendance",
				"saved": saved,
			})
		}
		saved++
	}

	changeBus.Publish(sync.Event{Table: "attendance", Action: "create"})
	return c.Status(201).JSON(fiber.Map{"message": "Attendance marked", "saved": saved})
}
