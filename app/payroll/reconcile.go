package payroll

import (
	"mecda-academy/app/models"

	"github.com/shopspring/decimal"
)

// ReconcileStudentPayment recomputes the derived fields of a fee
// ledger entry in place. It must run before every insert or update;
// client-supplied values for OutstandingAmount and Status are
// discarded.
//
//	outstanding = max(0, totalFee - paidAmount)
//	status      = Paid           if paidAmount >= totalFee > 0
//	              Partially Paid if 0 < paidAmount < totalFee
//	              Unpaid         otherwise
func ReconcileStudentPayment(p *models.StudentPayment) {
	outstanding := p.TotalFee.Sub(p.PaidAmount)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	p.OutstandingAmount = outstanding

	switch {
	case p.TotalFee.IsPositive() && p.PaidAmount.GreaterThanOrEqual(p.TotalFee):
		p.Status = models.Paid
	case p.PaidAmount.IsPositive() && p.PaidAmount.LessThan(p.TotalFee):
		p.Status = models.PartiallyPaid
	default:
		p.Status = models.Unpaid
	}
}
