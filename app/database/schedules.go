package database

import (
	"database/sql"

	"mecda-academy/app/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func scanSchedule(row interface{ Scan(...interface{}) error }) (*models.ClassSchedule, error) {
	s := &models.ClassSchedule{}
	var override decimal.NullDecimal
	err := row.Scan(&s.ID, &s.Grade, &s.Subject, &s.TeacherID, &s.Date,
		&s.StartTime, &s.EndTime, &s.TotalHours, &override, &s.Month, &s.Year)
	if err != nil {
		return nil, err
	}
	if override.Valid {
		s.RateOverride = &override.Decimal
	}
	return s, nil
}

func overrideValue(s *models.ClassSchedule) decimal.NullDecimal {
	if s.RateOverride == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *s.RateOverride, Valid: true}
}

// CreateSchedule inserts a new class session and assigns its id.
// TotalHours, Month and Year must already be derived from the times
// and date by the caller.
func CreateSchedule(db *sql.DB, s *models.ClassSchedule) error {
	s.ID = uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO schedules (id, grade, subject, teacher_id, date, start_time, end_time, total_hours, rate_override, month, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, s.ID, s.Grade, s.Subject, s.TeacherID, s.Date, s.StartTime, s.EndTime,
		s.TotalHours, overrideValue(s), s.Month, s.Year)
	return err
}

// UpdateSchedule replaces the full record.
func UpdateSchedule(db *sql.DB, s *models.ClassSchedule) error {
	_, err := db.Exec(`
		UPDATE schedules
		SET grade = $1, subject = $2, teacher_id = $3, date = $4, start_time = $5,
			end_time = $6, total_hours = $7, rate_override = $8, month = $9, year = $10
		WHERE id = $11
	`, s.Grade, s.Subject, s.TeacherID, s.Date, s.StartTime, s.EndTime,
		s.TotalHours, overrideValue(s), s.Month, s.Year, s.ID)
	return err
}

// DeleteSchedule hard-deletes a class session. Attendance rows keep
// referencing the deleted id and are tolerated downstream.
func DeleteSchedule(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM schedules WHERE id = $1`, id)
	return err
}

// GetScheduleByID returns one class session, or sql.ErrNoRows.
func GetScheduleByID(db *sql.DB, id string) (*models.ClassSchedule, error) {
	row := db.QueryRow(`
		SELECT id, grade, subject, teacher_id, date, start_time, end_time, total_hours, rate_override, month, year
		FROM schedules WHERE id = $1
	`, id)
	return scanSchedule(row)
}

// GetAllSchedules returns every class session ordered by date.
func GetAllSchedules(db *sql.DB) ([]*models.ClassSchedule, error) {
	return querySchedules(db, `
		SELECT id, grade, subject, teacher_id, date, start_time, end_time, total_hours, rate_override, month, year
		FROM schedules ORDER BY date ASC, start_time ASC
	`)
}

// GetSchedulesForPayout returns the sessions matching a payout scope:
// teacher + month + year, optionally narrowed to one grade when grade
// is not "All".
func GetSchedulesForPayout(db *sql.DB, teacherID, month, year, grade string) ([]*models.ClassSchedule, error) {
	query := `
		SELECT id, grade, subject, teacher_id, date, start_time, end_time, total_hours, rate_override, month, year
		FROM schedules
		WHERE teacher_id = $1 AND month = $2 AND year = $3
	`
	args := []interface{}{teacherID, month, year}
	if grade != "" && grade != models.GradeAll {
		query += ` AND grade = $4`
		args = append(args, grade)
	}
	query += ` ORDER BY date ASC, start_time ASC`
	return querySchedules(db, query, args...)
}

func querySchedules(db *sql.DB, query string, args ...interface{}) ([]*models.ClassSchedule, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.ClassSchedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}
