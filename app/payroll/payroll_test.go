package payroll

import (
	"testing"

	"mecda-academy/app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func hourlyTeacher(rate string) *models.Teacher {
	return &models.Teacher{
		ID:          "t1",
		Name:        "A. Perera",
		Subject:     "Mathematics",
		PaymentType: models.Hourly,
		Rate:        dec(rate),
		Status:      models.Active,
	}
}

func monthlyTeacher(rate string) *models.Teacher {
	t := hourlyTeacher(rate)
	t.PaymentType = models.Monthly
	return t
}

func session(teacherID, month, year string, grade models.Grade, hours string, override *decimal.Decimal) *models.ClassSchedule {
	return &models.ClassSchedule{
		ID:           "s-" + hours,
		Grade:        grade,
		Subject:      "Mathematics",
		TeacherID:    teacherID,
		Date:         "2025-01-10",
		StartTime:    "16:00",
		EndTime:      "18:00",
		TotalHours:   dec(hours),
		RateOverride: override,
		Month:        month,
		Year:         year,
	}
}

func TestComputePayoutHourly(t *testing.T) {
	teacher := hourlyTeacher("500")
	schedules := []*models.ClassSchedule{
		session("t1", "January", "2025", models.Grade6, "2", nil),
		session("t1", "January", "2025", models.Grade6, "3", nil),
	}

	got := ComputePayout(teacher, schedules, "t1", "January", "2025", models.GradeAll)

	assert.Equal(t, 2, got.TotalClasses)
	assert.True(t, got.TotalHours.Equal(dec("5")), "hours = %s", got.TotalHours)
	assert.True(t, got.AmountPayable.Equal(dec("2500")), "payable = %s", got.AmountPayable)
}

func TestComputePayoutMonthlyDistributesRate(t *testing.T) {
	teacher := monthlyTeacher("10000")
	var schedules []*models.ClassSchedule
	for i := 0; i < 4; i++ {
		schedules = append(schedules, session("t1", "January", "2025", models.Grade7, "1.5", nil))
	}

	got := ComputePayout(teacher, schedules, "t1", "January", "2025", models.GradeAll)

	assert.Equal(t, 4, got.TotalClasses)
	assert.True(t, got.AmountPayable.Equal(dec("10000")), "payable = %s", got.AmountPayable)
}

func TestComputePayoutMonthlyUnevenCountRoundsBack(t *testing.T) {
	// 10000 / 3 per session does not terminate; the summed payable
	// must still round back to the flat monthly rate.
	teacher := monthlyTeacher("10000")
	var schedules []*models.ClassSchedule
	for i := 0; i < 3; i++ {
		schedules = append(schedules, session("t1", "March", "2025", models.Grade8, "2", nil))
	}

	got := ComputePayout(teacher, schedules, "t1", "March", "2025", models.GradeAll)

	assert.True(t, got.AmountPayable.Equal(dec("10000")), "payable = %s", got.AmountPayable)
}

func TestComputePayoutRateOverride(t *testing.T) {
	teacher := hourlyTeacher("500")
	override := dec("800")
	schedules := []*models.ClassSchedule{
		session("t1", "January", "2025", models.Grade6, "2", &override),
	}

	got := ComputePayout(teacher, schedules, "t1", "January", "2025", models.GradeAll)

	assert.True(t, got.AmountPayable.Equal(dec("1600")), "payable = %s", got.AmountPayable)
}

func TestComputePayoutZeroSessions(t *testing.T) {
	teacher := monthlyTeacher("10000")

	got := ComputePayout(teacher, nil, "t1", "January", "2025", models.GradeAll)

	assert.Equal(t, 0, got.TotalClasses)
	assert.True(t, got.TotalHours.IsZero())
	assert.True(t, got.AmountPayable.IsZero())
}

func TestComputePayoutAbsentTeacher(t *testing.T) {
	schedules := []*models.ClassSchedule{
		session("t1", "January", "2025", models.Grade6, "2", nil),
	}

	got := ComputePayout(nil, schedules, "t1", "January", "2025", models.GradeAll)

	assert.Equal(t, 1, got.TotalClasses)
	assert.True(t, got.AmountPayable.IsZero(), "absent teacher must pay zero")
}

func TestComputePayoutScopeFilters(t *testing.T) {
	teacher := hourlyTeacher("500")
	schedules := []*models.ClassSchedule{
		session("t1", "January", "2025", models.Grade6, "2", nil),
		session("t1", "January", "2025", models.Grade7, "3", nil),
		session("t1", "February", "2025", models.Grade6, "4", nil),
		session("t2", "January", "2025", models.Grade6, "5", nil),
	}

	tests := []struct {
		name        string
		gradeScope  string
		wantClasses int
		wantPayable string
	}{
		{"all grades", models.GradeAll, 2, "2500"},
		{"grade 6 only", "6", 1, "1000"},
		{"grade 7 only", "7", 1, "1500"},
		{"empty scope means all", "", 2, "2500"},
		{"grade with no sessions", "11", 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePayout(teacher, schedules, "t1", "January", "2025", tt.gradeScope)
			assert.Equal(t, tt.wantClasses, got.TotalClasses)
			assert.True(t, got.AmountPayable.Equal(dec(tt.wantPayable)), "payable = %s", got.AmountPayable)
		})
	}
}

func TestComputePayoutIdempotent(t *testing.T) {
	teacher := monthlyTeacher("12000")
	override := dec("9000")
	schedules := []*models.ClassSchedule{
		session("t1", "January", "2025", models.Grade6, "2", nil),
		session("t1", "January", "2025", models.Grade7, "1.5", &override),
		session("t1", "January", "2025", models.Grade6, "2.25", nil),
	}

	first := ComputePayout(teacher, schedules, "t1", "January", "2025", models.GradeAll)
	second := ComputePayout(teacher, schedules, "t1", "January", "2025", models.GradeAll)

	assert.Equal(t, first.TotalClasses, second.TotalClasses)
	assert.True(t, first.TotalHours.Equal(second.TotalHours))
	assert.True(t, first.AmountPayable.Equal(second.AmountPayable))
}

func TestSessionEarningAgreesWithPayout(t *testing.T) {
	teacher := hourlyTeacher("500")
	override := dec("800")
	schedules := []*models.ClassSchedule{
		session("t1", "January", "2025", models.Grade6, "2", &override),
		session("t1", "January", "2025", models.Grade6, "3", nil),
	}

	total := decimal.Zero
	for _, s := range schedules {
		total = total.Add(SessionEarning(s, teacher, len(schedules)))
	}

	payout := ComputePayout(teacher, schedules, "t1", "January", "2025", models.GradeAll)
	assert.True(t, total.Round(2).Equal(payout.AmountPayable), "%s vs %s", total, payout.AmountPayable)
}

func TestEffectiveRate(t *testing.T) {
	teacher := hourlyTeacher("500")
	override := dec("800")

	withOverride := session("t1", "January", "2025", models.Grade6, "1", &override)
	without := session("t1", "January", "2025", models.Grade6, "1", nil)

	assert.True(t, EffectiveRate(withOverride, teacher).Equal(dec("800")))
	assert.True(t, EffectiveRate(without, teacher).Equal(dec("500")))
	assert.True(t, EffectiveRate(without, nil).IsZero())
}
