package database

import (
	"database/sql"

	"mecda-academy/app/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func scanTeacher(row interface{ Scan(...interface{}) error }) (*models.Teacher, error) {
	t := &models.Teacher{}
	var grades []string
	err := row.Scan(&t.ID, &t.Name, &t.Subject, pq.Array(&grades), &t.PaymentType,
		&t.Rate, &t.Contact, &t.WhatsApp, &t.Status)
	if err != nil {
		return nil, err
	}
	for _, g := range grades {
		t.Grades = append(t.Grades, models.Grade(g))
	}
	return t, nil
}

func gradesToStrings(grades []models.Grade) []string {
	out := make([]string, len(grades))
	for i, g := range grades {
		out[i] = string(g)
	}
	return out
}

// CreateTeacher inserts a new teacher and assigns its id.
func CreateTeacher(db *sql.DB, t *models.Teacher) error {
	t.ID = uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO teachers (id, name, subject, grades, payment_type, rate, contact, whatsapp, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, t.ID, t.Name, t.Subject, pq.Array(gradesToStrings(t.Grades)), t.PaymentType,
		t.Rate, t.Contact, t.WhatsApp, t.Status)
	return err
}

// UpdateTeacher replaces the full record.
func UpdateTeacher(db *sql.DB, t *models.Teacher) error {
	_, err := db.Exec(`
		UPDATE teachers
		SET name = $1, subject = $2, grades = $3, payment_type = $4,
			rate = $5, contact = $6, whatsapp = $7, status = $8
		WHERE id = $9
	`, t.Name, t.Subject, pq.Array(gradesToStrings(t.Grades)), t.PaymentType,
		t.Rate, t.Contact, t.WhatsApp, t.Status, t.ID)
	return err
}

// DeleteTeacher hard-deletes a teacher. Schedules and payout records
// referencing it are intentionally left in place.
func DeleteTeacher(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM teachers WHERE id = $1`, id)
	return err
}

// GetTeacherByID returns one teacher, or sql.ErrNoRows.
func GetTeacherByID(db *sql.DB, id string) (*models.Teacher, error) {
	row := db.QueryRow(`
		SELECT id, name, subject, grades, payment_type, rate, contact, whatsapp, status
		FROM teachers WHERE id = $1
	`, id)
	return scanTeacher(row)
}

// GetAllTeachers returns every teacher ordered by name.
func GetAllTeachers(db *sql.DB) ([]*models.Teacher, error) {
	rows, err := db.Query(`
		SELECT id, name, subject, grades, payment_type, rate, contact, whatsapp, status
		FROM teachers ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}
