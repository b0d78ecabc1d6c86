package database

import (
	"database/sql"

	"mecda-academy/app/models"
)

// GetAcademyInfo returns the singleton academy profile.
func GetAcademyInfo(db *sql.DB) (*models.AcademyInfo, error) {
	a := &models.AcademyInfo{}
	err := db.QueryRow(`
		SELECT id, name, address, email, contact, logo_url
		FROM academy_info WHERE id = $1
	`, models.AcademyInfoID).Scan(&a.ID, &a.Name, &a.Address, &a.Email, &a.Contact, &a.LogoURL)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateAcademyInfo replaces the singleton profile in full.
func UpdateAcademyInfo(db *sql.DB, a *models.AcademyInfo) error {
	a.ID = models.AcademyInfoID
	_, err := db.Exec(`
		INSERT INTO academy_info (id, name, address, email, contact, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			email = EXCLUDED.email,
			contact = EXCLUDED.contact,
			logo_url = EXCLUDED.logo_url
	`, a.ID, a.Name, a.Address, a.Email, a.Contact, a.LogoURL)
	return err
}
