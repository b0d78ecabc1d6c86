package models

import "github.com/shopspring/decimal"

// StudentPayment is a fee ledger entry for one student for one
// month/year.
//
// OutstandingAmount and Status are derived from TotalFee/PaidAmount
// and recomputed server-side before every write; values submitted by
// the client for these two fields are ignored.
type StudentPayment struct {
	ID                string          `json:"id"`
	StudentID         string          `json:"student_id" validate:"required,uuid"`
	Grade             Grade           `json:"grade" validate:"required"`
	Month             string          `json:"month" validate:"required"`
	Year              string          `json:"year" validate:"required"`
	Date              string          `json:"date" validate:"required"` // YYYY-MM-DD
	TotalFee          decimal.Decimal `json:"total_fee"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	Status            PaymentStatus   `json:"status"`
	Remarks           string          `json:"remarks"`
}
