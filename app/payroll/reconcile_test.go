package payroll

import (
	"testing"

	"mecda-academy/app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReconcileStudentPayment(t *testing.T) {
	tests := []struct {
		name            string
		totalFee        string
		paidAmount      string
		wantOutstanding string
		wantStatus      models.PaymentStatus
	}{
		{"nothing paid", "5000", "0", "5000", models.Unpaid},
		{"partial", "5000", "2000", "3000", models.PartiallyPaid},
		{"exact", "5000", "5000", "0", models.Paid},
		{"overpaid clamps outstanding", "5000", "6000", "0", models.Paid},
		{"one short", "5000", "4999.99", "0.01", models.PartiallyPaid},
		{"zero fee zero paid", "0", "0", "0", models.Unpaid},
		{"zero fee with payment", "0", "100", "0", models.Unpaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.StudentPayment{
				TotalFee:   dec(tt.totalFee),
				PaidAmount: dec(tt.paidAmount),
				// Client-supplied derived values must be overwritten.
				Status:            models.Paid,
				OutstandingAmount: dec("-123"),
			}
			ReconcileStudentPayment(p)

			assert.True(t, p.OutstandingAmount.Equal(dec(tt.wantOutstanding)),
				"outstanding = %s", p.OutstandingAmount)
			assert.Equal(t, tt.wantStatus, p.Status)
		})
	}
}

func TestReconcileStudentPaymentSweep(t *testing.T) {
	// Walk paidAmount from 0 to beyond totalFee and check the
	// three-way rule holds at every step.
	fee := dec("1000")
	for paid := int64(0); paid <= 1500; paid += 50 {
		p := &models.StudentPayment{TotalFee: fee, PaidAmount: decimal.NewFromInt(paid)}
		ReconcileStudentPayment(p)

		switch {
		case paid == 0:
			assert.Equal(t, models.Unpaid, p.Status, "paid=%d", paid)
		case paid < 1000:
			assert.Equal(t, models.PartiallyPaid, p.Status, "paid=%d", paid)
		default:
			assert.Equal(t, models.Paid, p.Status, "paid=%d", paid)
		}
		assert.False(t, p.OutstandingAmount.IsNegative(), "paid=%d", paid)
	}
}

func TestTeacherPaymentClearanceStatus(t *testing.T) {
	tests := []struct {
		name    string
		payable string
		paid    string
		want    string
	}{
		{"underpaid", "10000", "4000", "Partial"},
		{"exact", "10000", "10000", "Cleared"},
		{"overpaid", "10000", "12000", "Cleared"},
		{"zero payable", "0", "0", "Cleared"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.TeacherPayment{
				AmountPayable: dec(tt.payable),
				AmountPaid:    dec(tt.paid),
			}
			assert.Equal(t, tt.want, p.ClearanceStatus())
		})
	}
}
