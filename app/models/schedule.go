package models

import "github.com/shopspring/decimal"

// ClassSchedule is one scheduled teaching session.
//
// TotalHours is always derived from StartTime/EndTime on write, never
// entered directly. Month and Year are denormalized from Date for
// period filtering and are rewritten whenever Date changes.
type ClassSchedule struct {
	ID        string          `json:"id"`
	Grade     Grade           `json:"grade" validate:"required"`
	Subject   string          `json:"subject" validate:"required"`
	TeacherID string          `json:"teacher_id" validate:"required,uuid"`
	Date      string          `json:"date" validate:"required"` // YYYY-MM-DD
	StartTime string          `json:"start_time" validate:"required"`
	EndTime   string          `json:"end_time" validate:"required"`
	TotalHours decimal.Decimal `json:"total_hours"`
	// RateOverride, when set, supersedes the teacher's base rate for
	// this session in payable computations.
	RateOverride *decimal.Decimal `json:"rate_override,omitempty"`
	Month        string           `json:"month"`
	Year         string           `json:"year"`
}
