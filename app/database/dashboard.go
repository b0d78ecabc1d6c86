package database

import (
	"database/sql"

	"mecda-academy/app/models"

	"github.com/shopspring/decimal"
)

// CountByStatus returns the number of rows in table with the given
// status. table must be one of the fixed entity table names.
func countByStatus(db *sql.DB, table, status string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE status = $1`, status).Scan(&count)
	return count, err
}

// CountActiveStudents returns the number of active students.
func CountActiveStudents(db *sql.DB) (int, error) {
	return countByStatus(db, "students", "Active")
}

// CountActiveTeachers returns the number of active teachers.
func CountActiveTeachers(db *sql.DB) (int, error) {
	return countByStatus(db, "teachers", "Active")
}

// GetTotalRevenue sums paid amounts across the student fee ledger.
func GetTotalRevenue(db *sql.DB) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := db.QueryRow(`SELECT COALESCE(SUM(paid_amount), 0) FROM student_payments`).Scan(&total)
	return total, err
}

// CountSchedulesInPeriod returns how many sessions fall in one
// month/year across all teachers.
func CountSchedulesInPeriod(db *sql.DB, month, year string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM schedules WHERE month = $1 AND year = $2`, month, year).Scan(&count)
	return count, err
}

// GetRecentStudentPayments returns the newest fee entries for the
// dashboard feed.
func GetRecentStudentPayments(db *sql.DB, limit int) ([]*models.StudentPayment, error) {
	return queryStudentPayments(db, `
		SELECT id, student_id, grade, month, year, date, total_fee, paid_amount, outstanding_amount, status, remarks
		FROM student_payments ORDER BY date DESC LIMIT $1
	`, limit)
}

// GetStudentCountsByGrade returns the number of students per grade.
func GetStudentCountsByGrade(db *sql.DB) (map[string]int, error) {
	rows, err := db.Query(`SELECT grade, COUNT(*) FROM students GROUP BY grade`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var grade string
		var count int
		if err := rows.Scan(&grade, &count); err != nil {
			return nil, err
		}
		counts[grade] = count
	}
	return counts, rows.Err()
}
