package database

import (
	"database/sql"

	"mecda-academy/app/models"

	"github.com/google/uuid"
)

// CreateStudent inserts a new student and assigns its id.
func CreateStudent(db *sql.DB, s *models.Student) error {
	s.ID = uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO students (id, name, guardian_name, grade, contact, whatsapp, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, s.ID, s.Name, s.GuardianName, s.Grade, s.Contact, s.WhatsApp, s.Status)
	return err
}

// UpdateStudent replaces the full record.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	_, err := db.Exec(`
		UPDATE students
		SET name = $1, guardian_name = $2, grade = $3, contact = $4, whatsapp = $5, status = $6
		WHERE id = $7
	`, s.Name, s.GuardianName, s.Grade, s.Contact, s.WhatsApp, s.Status, s.ID)
	return err
}

// DeleteStudent hard-deletes a student.
func DeleteStudent(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	return err
}

// GetStudentByID returns one student, or sql.ErrNoRows.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	s := &models.Student{}
	err := db.QueryRow(`
		SELECT id, name, guardian_name, grade, contact, whatsapp, status
		FROM students WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.GuardianName, &s.Grade, &s.Contact, &s.WhatsApp, &s.Status)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetAllStudents returns every student ordered by name.
func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	return queryStudents(db, `
		SELECT id, name, guardian_name, grade, contact, whatsapp, status
		FROM students ORDER BY name ASC
	`)
}

// GetActiveStudentsByGrade returns the active students enrolled in
// one grade. Attendance marking writes one row per student returned
// here.
func GetActiveStudentsByGrade(db *sql.DB, grade models.Grade) ([]*models.Student, error) {
	return queryStudents(db, `
		SELECT id, name, guardian_name, grade, contact, whatsapp, status
		FROM students WHERE grade = $1 AND status = 'Active' ORDER BY name ASC
	`, grade)
}

func queryStudents(db *sql.DB, query string, args ...interface{}) ([]*models.Student, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.Name, &s.GuardianName, &s.Grade,
			&s.Contact, &s.WhatsApp, &s.Status); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
