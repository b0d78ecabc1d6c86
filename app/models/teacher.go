package models

import "github.com/shopspring/decimal"

// Teacher represents a teaching staff member.
//
// Rate is interpreted through PaymentType: Hourly teachers earn Rate
// per hour taught; Monthly teachers earn Rate as a fixed period amount
// spread across the sessions they taught in that period. A schedule's
// RateOverride supersedes Rate for that session only.
type Teacher struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Subject     string          `json:"subject" validate:"required"`
	Grades      []Grade         `json:"grades" validate:"required,min=1"`
	PaymentType PaymentType     `json:"payment_type" validate:"required,oneof=Hourly Monthly"`
	Rate        decimal.Decimal `json:"rate"`
	Contact     string          `json:"contact"`
	WhatsApp    string          `json:"whatsapp"`
	Status      RecordStatus    `json:"status" validate:"required,oneof=Active Inactive"`
}
