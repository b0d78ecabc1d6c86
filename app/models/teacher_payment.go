package models

import "github.com/shopspring/decimal"

// TeacherPayment is a committed payout record for one teacher for one
// period, optionally scoped to a single grade.
//
// TotalClasses, TotalHours and AmountPayable are computed from the
// matching schedules when the record is created or edited and stored
// as a frozen snapshot: schedule changes after commit do not reach
// back into this record.
type TeacherPayment struct {
	ID        string `json:"id"`
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
	// Month is the "Month Year" period composite, e.g. "January 2025".
	Month string `json:"month" validate:"required"`
	// Grade scopes the payout to one grade, or "All".
	Grade         string          `json:"grade"`
	TotalClasses  int             `json:"total_classes"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	AmountPayable decimal.Decimal `json:"amount_payable"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Date          string          `json:"date"` // YYYY-MM-DD
}

// ClearanceStatus is the derived display status of a payout record.
// It is never persisted.
func (p *TeacherPayment) ClearanceStatus() string {
	if p.AmountPaid.GreaterThanOrEqual(p.AmountPayable) {
		return "Cleared"
	}
	return "Partial"
}
