package database

import (
	"database/sql"

	"mecda-academy/app/models"

	"github.com/google/uuid"
)

// CreateStudentPayment inserts a fee ledger entry and assigns its id.
// OutstandingAmount and Status must already be reconciled by the
// caller (payroll.ReconcileStudentPayment).
func CreateStudentPayment(db *sql.DB, p *models.StudentPayment) error {
	p.ID = uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO student_payments (id, student_id, grade, month, year, date, total_fee, paid_amount, outstanding_amount, status, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, p.ID, p.StudentID, p.Grade, p.Month, p.Year, p.Date,
		p.TotalFee, p.PaidAmount, p.OutstandingAmount, p.Status, p.Remarks)
	return err
}

// UpdateStudentPayment replaces the full record.
func UpdateStudentPayment(db *sql.DB, p *models.StudentPayment) error {
	_, err := db.Exec(`
		UPDATE student_payments
		SET student_id = $1, grade = $2, month = $3, year = $4, date = $5,
			total_fee = $6, paid_amount = $7, outstanding_amount = $8, status = $9, remarks = $10
		WHERE id = $11
	`, p.StudentID, p.Grade, p.Month, p.Year, p.Date,
		p.TotalFee, p.PaidAmount, p.OutstandingAmount, p.Status, p.Remarks, p.ID)
	return err
}

// DeleteStudentPayment hard-deletes a fee ledger entry.
func DeleteStudentPayment(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM student_payments WHERE id = $1`, id)
	return err
}

// GetStudentPaymentByID returns one entry, or sql.ErrNoRows.
func GetStudentPaymentByID(db *sql.DB, id string) (*models.StudentPayment, error) {
	row := db.QueryRow(`
		SELECT id, student_id, grade, month, year, date, total_fee, paid_amount, outstanding_amount, status, remarks
		FROM student_payments WHERE id = $1
	`, id)
	return scanStudentPayment(row)
}

// GetAllStudentPayments returns every entry, newest first.
func GetAllStudentPayments(db *sql.DB) ([]*models.StudentPayment, error) {
	return queryStudentPayments(db, `
		SELECT id, student_id, grade, month, year, date, total_fee, paid_amount, outstanding_amount, status, remarks
		FROM student_payments ORDER BY date DESC
	`)
}

// GetStudentPaymentsByStudent returns one student's ledger, newest first.
func GetStudentPaymentsByStudent(db *sql.DB, studentID string) ([]*models.StudentPayment, error) {
	return queryStudentPayments(db, `
		SELECT id, student_id, grade, month, year, date, total_fee, paid_amount, outstanding_amount, status, remarks
		FROM student_payments WHERE student_id = $1 ORDER BY date DESC
	`, studentID)
}

// GetStudentPaymentsByPeriod returns the entries for one grade and
// month/year.
func GetStudentPaymentsByPeriod(db *sql.DB, grade, month, year string) ([]*models.StudentPayment, error) {
	return queryStudentPayments(db, `
		SELECT id, student_id, grade, month, year, date, total_fee, paid_amount, outstanding_amount, status, remarks
		FROM student_payments WHERE grade = $1 AND month = $2 AND year = $3 ORDER BY date DESC
	`, grade, month, year)
}

func scanStudentPayment(row interface{ Scan(...interface{}) error }) (*models.StudentPayment, error) {
	p := &models.StudentPayment{}
	err := row.Scan(&p.ID, &p.StudentID, &p.Grade, &p.Month, &p.Year, &p.Date,
		&p.TotalFee, &p.PaidAmount, &p.OutstandingAmount, &p.Status, &p.Remarks)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func queryStudentPayments(db *sql.DB, query string, args ...interface{}) ([]*models.StudentPayment, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.StudentPayment
	for rows.Next() {
		p, err := scanStudentPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
