package database

import (
	"database/sql"
	"log"

	"mecda-academy/app/models"
)

// RunMigrations creates the schema if it does not exist and seeds the
// singleton academy profile.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS academy_info (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			contact TEXT NOT NULL DEFAULT '',
			logo_url TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS teachers (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			subject TEXT NOT NULL,
			grades TEXT[] NOT NULL DEFAULT '{}',
			payment_type TEXT NOT NULL,
			rate NUMERIC(12,2) NOT NULL DEFAULT 0,
			contact TEXT NOT NULL DEFAULT '',
			whatsapp TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'Active'
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			guardian_name TEXT NOT NULL DEFAULT '',
			grade TEXT NOT NULL,
			contact TEXT NOT NULL DEFAULT '',
			whatsapp TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'Active'
		)`,
		`CREATE TABLE IF NOT EXISTS schedules (
			id UUID PRIMARY KEY,
			grade TEXT NOT NULL,
			subject TEXT NOT NULL,
			teacher_id UUID NOT NULL,
			date TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			total_hours NUMERIC(6,2) NOT NULL DEFAULT 0,
			rate_override NUMERIC(12,2),
			month TEXT NOT NULL,
			year TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL,
			class_id UUID NOT NULL,
			date TEXT NOT NULL,
			is_present BOOLEAN NOT NULL DEFAULT false
		)`,
		`CREATE TABLE IF NOT EXISTS student_payments (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL,
			grade TEXT NOT NULL,
			month TEXT NOT NULL,
			year TEXT NOT NULL,
			date TEXT NOT NULL,
			total_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			paid_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			outstanding_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'Unpaid',
			remarks TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS teacher_payments (
			id UUID PRIMARY KEY,
			teacher_id UUID NOT NULL,
			month TEXT NOT NULL,
			grade TEXT NOT NULL DEFAULT 'All',
			total_classes INTEGER NOT NULL DEFAULT 0,
			total_hours NUMERIC(6,2) NOT NULL DEFAULT 0,
			amount_payable NUMERIC(12,2) NOT NULL DEFAULT 0,
			amount_paid NUMERIC(12,2) NOT NULL DEFAULT 0,
			date TEXT NOT NULL
		)`,
		// No foreign keys: deleting a teacher or student must not
		// cascade; orphaned references are rendered as "Unknown".
		`CREATE INDEX IF NOT EXISTS idx_schedules_teacher_period ON schedules (teacher_id, month, year)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_class ON attendance (class_id)`,
		`CREATE INDEX IF NOT EXISTS idx_student_payments_student ON student_payments (student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_student_payments_period ON student_payments (grade, month, year)`,
		`CREATE INDEX IF NOT EXISTS idx_teacher_payments_month ON teacher_payments (month)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	if err := seedAcademyInfo(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func seedAcademyInfo(db *sql.DB) error {
	a := models.DefaultAcademyInfo
	_, err := db.Exec(`
		INSERT INTO academy_info (id, name, address, email, contact, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`, a.ID, a.Name, a.Address, a.Email, a.Contact, a.LogoURL)
	if err != nil {
		log.Printf("Failed to seed academy profile: %v", err)
	}
	return err
}
