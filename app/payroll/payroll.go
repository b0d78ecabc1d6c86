// Package payroll holds the salary computation engine and the payment
// reconciliation rules. Everything here is a pure function over rows
// already loaded from the database; nothing in this package writes.
package payroll

import (
	"mecda-academy/app/models"

	"github.com/shopspring/decimal"
)

// PayoutSummary is the derived result of a salary computation for one
// (teacher, period, grade-scope) combination. When a payout record is
// committed these three numbers are frozen into it.
type PayoutSummary struct {
	TotalClasses  int             `json:"total_classes"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	AmountPayable decimal.Decimal `json:"amount_payable"`
}

// EffectiveRate resolves the rate a session is paid at: the session's
// override when present, otherwise the teacher's base rate. A nil
// teacher (deleted reference) resolves to zero.
func EffectiveRate(s *models.ClassSchedule, t *models.Teacher) decimal.Decimal {
	if s.RateOverride != nil {
		return *s.RateOverride
	}
	if t == nil {
		return decimal.Zero
	}
	return t.Rate
}

// inScope reports whether a session belongs to a payout scope.
func inScope(s *models.ClassSchedule, teacherID, month, year, gradeScope string) bool {
	if s.TeacherID != teacherID || s.Month != month || s.Year != year {
		return false
	}
	return gradeScope == "" || gradeScope == models.GradeAll || string(s.Grade) == gradeScope
}

// ComputePayout derives {totalClasses, totalHours, amountPayable} for
// a teacher over the sessions matching month/year and gradeScope
// ("All" or empty means no grade filter).
//
// Hourly teachers earn hours x effective rate per session. Monthly
// teachers earn each session's effective rate divided evenly by the
// number of in-scope sessions, so a flat monthly rate sums back to
// itself. Zero matching sessions short-circuits to an all-zero result;
// a nil teacher contributes a zero rate. The payable total is rounded
// to two decimal places once, at the end.
func ComputePayout(t *models.Teacher, schedules []*models.ClassSchedule, teacherID, month, year, gradeScope string) PayoutSummary {
	var scoped []*models.ClassSchedule
	for _, s := range schedules {
		if inScope(s, teacherID, month, year, gradeScope) {
			scoped = append(scoped, s)
		}
	}

	summary := PayoutSummary{
		TotalClasses:  len(scoped),
		TotalHours:    decimal.Zero,
		AmountPayable: decimal.Zero,
	}
	if len(scoped) == 0 {
		return summary
	}

	hourly := t != nil && t.PaymentType == models.Hourly
	count := decimal.NewFromInt(int64(len(scoped)))

	for _, s := range scoped {
		summary.TotalHours = summary.TotalHours.Add(s.TotalHours)
		rate := EffectiveRate(s, t)
		if hourly {
			summary.AmountPayable = summary.AmountPayable.Add(s.TotalHours.Mul(rate))
		} else {
			summary.AmountPayable = summary.AmountPayable.Add(rate.Div(count))
		}
	}

	summary.AmountPayable = summary.AmountPayable.Round(2)
	return summary
}

// SessionEarning returns what one in-scope session pays, given the
// total number of in-scope sessions. It feeds the per-class salary
// slip breakdown and agrees with ComputePayout up to rounding.
func SessionEarning(s *models.ClassSchedule, t *models.Teacher, inScopeCount int) decimal.Decimal {
	rate := EffectiveRate(s, t)
	if t != nil && t.PaymentType == models.Hourly {
		return s.TotalHours.Mul(rate)
	}
	if inScopeCount < 1 {
		inScopeCount = 1
	}
	return rate.Div(decimal.NewFromInt(int64(inScopeCount)))
}
