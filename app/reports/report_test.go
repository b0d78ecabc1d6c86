package reports

import (
	"testing"

	"mecda-academy/app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestStudentPaymentsReportResolvesNames(t *testing.T) {
	students := StudentIndex([]*models.Student{
		{ID: "st1", Name: "Nimal Silva", Grade: models.Grade8},
	})
	payments := []*models.StudentPayment{
		{ID: "p1", StudentID: "st1", Grade: models.Grade8, Month: "January", Year: "2025",
			Date: "2025-01-05", TotalFee: dec("5000"), PaidAmount: dec("5000"), Status: models.Paid},
		{ID: "p2", StudentID: "deleted", Grade: models.Grade9, Month: "January", Year: "2025",
			Date: "2025-01-06", TotalFee: dec("5000"), PaidAmount: dec("0"), Status: models.Unpaid},
	}

	r := StudentPaymentsReport(payments, students)

	require.Len(t, r.Rows, 2)
	assert.Equal(t, "Nimal Silva", r.Rows[0][1])
	assert.Equal(t, Unknown, r.Rows[1][1])
	assert.Len(t, r.Rows[0], len(r.Headers))
}

func TestSalarySlipReportTotalRow(t *testing.T) {
	teacher := &models.Teacher{
		ID: "t1", Name: "A. Perera", PaymentType: models.Hourly, Rate: dec("500"),
	}
	override := dec("800")
	scoped := []*models.ClassSchedule{
		{ID: "s1", Grade: models.Grade6, Subject: "Maths", TeacherID: "t1",
			Date: "2025-01-10", StartTime: "16:00", EndTime: "18:00",
			TotalHours: dec("2"), RateOverride: &override, Month: "January", Year: "2025"},
		{ID: "s2", Grade: models.Grade6, Subject: "Maths", TeacherID: "t1",
			Date: "2025-01-17", StartTime: "16:00", EndTime: "19:00",
			TotalHours: dec("3"), Month: "January", Year: "2025"},
	}

	r := SalarySlipReport(teacher, scoped, "January", "2025")

	require.Len(t, r.Rows, 3)
	total := r.Rows[2]
	assert.Equal(t, "TOTAL", total[0])
	assert.Equal(t, "5.00 hrs", total[4])
	// 2h @ 800 override + 3h @ 500 base = 3100
	assert.Equal(t, "Rs. 3,100.00", total[6])
}

func TestSalarySlipReportEmptyScope(t *testing.T) {
	r := SalarySlipReport(nil, nil, "January", "2025")

	require.Len(t, r.Rows, 1)
	assert.Equal(t, "TOTAL", r.Rows[0][0])
	assert.Contains(t, r.Title, Unknown)
}

func TestAttendanceBySubjectReport(t *testing.T) {
	schedules := []*models.ClassSchedule{
		{ID: "s1", Subject: "Maths"},
		{ID: "s2", Subject: "Science"},
	}
	records := []*models.Attendance{
		{ClassID: "s1", IsPresent: true},
		{ClassID: "s1", IsPresent: true},
		{ClassID: "s1", IsPresent: false},
		{ClassID: "s2", IsPresent: true},
		{ClassID: "gone", IsPresent: false},
	}

	r := AttendanceBySubjectReport(records, schedules)

	require.Len(t, r.Rows, 3)
	byName := map[string][]string{}
	for _, row := range r.Rows {
		byName[row[0]] = row
	}
	assert.Equal(t, "66.7%", byName["Maths"][4])
	assert.Equal(t, "100.0%", byName["Science"][4])
	assert.Equal(t, "0.0%", byName[Unknown][4])
}

func TestTeacherPaymentsReportClearance(t *testing.T) {
	teachers := TeacherIndex([]*models.Teacher{{ID: "t1", Name: "A. Perera"}})
	payments := []*models.TeacherPayment{
		{ID: "tp1", TeacherID: "t1", Month: "January 2025", Grade: models.GradeAll,
			TotalClasses: 4, TotalHours: dec("8"), AmountPayable: dec("10000"), AmountPaid: dec("10000"), Date: "2025-02-01"},
		{ID: "tp2", TeacherID: "missing", Month: "January 2025", Grade: "6",
			TotalClasses: 2, TotalHours: dec("4"), AmountPayable: dec("5000"), AmountPaid: dec("2000"), Date: "2025-02-01"},
	}

	r := TeacherPaymentsReport(payments, teachers)

	require.Len(t, r.Rows, 2)
	assert.Equal(t, "Cleared", r.Rows[0][8])
	assert.Equal(t, Unknown, r.Rows[1][1])
	assert.Equal(t, "Partial", r.Rows[1][8])
}

func TestRenderArtifactsProduceOutput(t *testing.T) {
	academy := &models.AcademyInfo{
		Name: "MECDA Academy", Address: "Colombo", Email: "info@mecda.edu", Contact: "+94 11 234 5678",
	}
	r := Report{
		Title:    "Smoke Report",
		Headers:  []string{"A", "B"},
		Rows:     [][]string{{"1", "2"}, {"3", "4"}},
		Filename: "smoke",
	}

	pdfBytes, err := RenderPDF(academy, r)
	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 0)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))

	xlsxBytes, err := RenderExcel(academy, r)
	require.NoError(t, err)
	assert.True(t, len(xlsxBytes) > 0)
	// XLSX containers are zip archives.
	assert.Equal(t, "PK", string(xlsxBytes[:2]))
}
