package database

import (
	"database/sql"

	"mecda-academy/app/models"

	"github.com/google/uuid"
)

// CreateTeacherPayment inserts a committed payout record and assigns
// its id. The snapshot fields (TotalClasses, TotalHours,
// AmountPayable) must already be computed by the caller.
func CreateTeacherPayment(db *sql.DB, p *models.TeacherPayment) error {
	p.ID = uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO teacher_payments (id, teacher_id, month, grade, total_classes, total_hours, amount_payable, amount_paid, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, p.ID, p.TeacherID, p.Month, p.Grade, p.TotalClasses, p.TotalHours,
		p.AmountPayable, p.AmountPaid, p.Date)
	return err
}

// UpdateTeacherPayment replaces the full record, including a freshly
// recomputed snapshot.
func UpdateTeacherPayment(db *sql.DB, p *models.TeacherPayment) error {
	_, err := db.Exec(`
		UPDATE teacher_payments
		SET teacher_id = $1, month = $2, grade = $3, total_classes = $4,
			total_hours = $5, amount_payable = $6, amount_paid = $7, date = $8
		WHERE id = $9
	`, p.TeacherID, p.Month, p.Grade, p.TotalClasses, p.TotalHours,
		p.AmountPayable, p.AmountPaid, p.Date, p.ID)
	return err
}

// DeleteTeacherPayment hard-deletes a payout record.
func DeleteTeacherPayment(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM teacher_payments WHERE id = $1`, id)
	return err
}

// GetTeacherPaymentByID returns one payout record, or sql.ErrNoRows.
func GetTeacherPaymentByID(db *sql.DB, id string) (*models.TeacherPayment, error) {
	row := db.QueryRow(`
		SELECT id, teacher_id, month, grade, total_classes, total_hours, amount_payable, amount_paid, date
		FROM teacher_payments WHERE id = $1
	`, id)
	return scanTeacherPayment(row)
}

// GetAllTeacherPayments returns every payout record, newest first.
func GetAllTeacherPayments(db *sql.DB) ([]*models.TeacherPayment, error) {
	return queryTeacherPayments(db, `
		SELECT id, teacher_id, month, grade, total_classes, total_hours, amount_payable, amount_paid, date
		FROM teacher_payments ORDER BY date DESC
	`)
}

// GetTeacherPaymentsByTeacher returns one teacher's payout history,
// newest first.
func GetTeacherPaymentsByTeacher(db *sql.DB, teacherID string) ([]*models.TeacherPayment, error) {
	return queryTeacherPayments(db, `
		SELECT id, teacher_id, month, grade, total_classes, total_hours, amount_payable, amount_paid, date
		FROM teacher_payments WHERE teacher_id = $1 ORDER BY date DESC
	`, teacherID)
}

// GetTeacherPaymentsByMonth returns the payout records for one
// "Month Year" period, optionally narrowed to one grade scope.
func GetTeacherPaymentsByMonth(db *sql.DB, month, grade string) ([]*models.TeacherPayment, error) {
	query := `
		SELECT id, teacher_id, month, grade, total_classes, total_hours, amount_payable, amount_paid, date
		FROM teacher_payments WHERE month = $1
	`
	args := []interface{}{month}
	if grade != "" && grade != models.GradeAll {
		query += ` AND grade = $2`
		args = append(args, grade)
	}
	query += ` ORDER BY date DESC`
	return queryTeacherPayments(db, query, args...)
}

func scanTeacherPayment(row interface{ Scan(...interface{}) error }) (*models.TeacherPayment, error) {
	p := &models.TeacherPayment{}
	err := row.Scan(&p.ID, &p.TeacherID, &p.Month, &p.Grade, &p.TotalClasses,
		&p.TotalHours, &p.AmountPayable, &p.AmountPaid, &p.Date)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func queryTeacherPayments(db *sql.DB, query string, args ...interface{}) ([]*models.TeacherPayment, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.TeacherPayment
	for rows.Next() {
		p, err := scanTeacherPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
