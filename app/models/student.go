package models

// Student represents an enrolled student.
type Student struct {
	ID           string       `json:"id"`
	Name         string       `json:"name" validate:"required"`
	GuardianName string       `json:"guardian_name"`
	Grade        Grade        `json:"grade" validate:"required"`
	Contact      string       `json:"contact"`
	WhatsApp     string       `json:"whatsapp"`
	Status       RecordStatus `json:"status" validate:"required,oneof=Active Inactive"`
}
