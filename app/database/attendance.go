package database

import (
	"database/sql"

	"mecda-academy/app/models"

	"github.com/google/uuid"
)

// CreateAttendance inserts one attendance row and assigns its id.
// Marking a session inserts one row per student sequentially; the
// inserts are deliberately not wrapped in a transaction, so a failure
// partway leaves the rows already written (no rollback path exists).
func CreateAttendance(db *sql.DB, a *models.Attendance) error {
	a.ID = uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO attendance (id, student_id, class_id, date, is_present)
		VALUES ($1, $2, $3, $4, $5)
	`, a.ID, a.StudentID, a.ClassID, a.Date, a.IsPresent)
	return err
}

// HasAttendanceForClass reports whether any attendance row references
// the given class session. One row is enough to make the session
// read-only for further marking.
func HasAttendanceForClass(db *sql.DB, classID string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM attendance WHERE class_id = $1)`, classID).Scan(&exists)
	return exists, err
}

// GetAttendanceByClass returns the rows recorded for one session.
func GetAttendanceByClass(db *sql.DB, classID string) ([]*models.Attendance, error) {
	return queryAttendance(db, `
		SELECT id, student_id, class_id, date, is_present
		FROM attendance WHERE class_id = $1
	`, classID)
}

// GetAllAttendance returns every attendance row.
func GetAllAttendance(db *sql.DB) ([]*models.Attendance, error) {
	return queryAttendance(db, `
		SELECT id, student_id, class_id, date, is_present
		FROM attendance ORDER BY date ASC
	`)
}

func queryAttendance(db *sql.DB, query string, args ...interface{}) ([]*models.Attendance, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{}
		if err := rows.Scan(&a.ID, &a.StudentID, &a.ClassID, &a.Date, &a.IsPresent); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
