package models

// AcademyInfo is the singleton branding profile used on reports and
// outbound messages. Exactly one row exists, keyed "main".
type AcademyInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Email   string `json:"email" validate:"omitempty,email"`
	Contact string `json:"contact"`
	// LogoURL is either an http(s) URL or a base64 data URI. Only a
	// data URI can be embedded as a report watermark.
	LogoURL string `json:"logo_url"`
}

// AcademyInfoID is the fixed key of the singleton row.
const AcademyInfoID = "main"

// DefaultAcademyInfo seeds the profile on first run.
var DefaultAcademyInfo = AcademyInfo{
	ID:      AcademyInfoID,
	Name:    "MECDA Academy",
	Address: "123 Education Lane, Colombo, Sri Lanka",
	Email:   "info@mecda.edu",
	Contact: "+94 11 234 5678",
}
