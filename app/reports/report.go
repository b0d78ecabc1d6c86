// Package reports shapes dashboard data into {title, headers, rows}
// tables and renders them as branded PDF and XLSX artifacts. Shaping
// is pure; rendering only reads the academy profile for the branding
// block and watermark.
package reports

import (
	"fmt"
	"time"

	"mecda-academy/app/models"
	"mecda-academy/app/payroll"
	"mecda-academy/app/utils"

	"github.com/shopspring/decimal"
)

// Unknown is rendered wherever a row references a deleted teacher or
// student. Referential gaps are tolerated, never fatal.
const Unknown = "Unknown"

// Report is one shaped table ready for rendering.
type Report struct {
	Title    string     `json:"title"`
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
	Filename string     `json:"filename"`
}

func datestamp() string {
	return time.Now().Format("2006-01-02")
}

func teacherName(teachers map[string]*models.Teacher, id string) string {
	if t, ok := teachers[id]; ok {
		return t.Name
	}
	return Unknown
}

// TeacherIndex keys teachers by id for row shaping.
func TeacherIndex(teachers []*models.Teacher) map[string]*models.Teacher {
	index := make(map[string]*models.Teacher, len(teachers))
	for _, t := range teachers {
		index[t.ID] = t
	}
	return index
}

// StudentIndex keys students by id for row shaping.
func StudentIndex(students []*models.Student) map[string]*models.Student {
	index := make(map[string]*models.Student, len(students))
	for _, s := range students {
		index[s.ID] = s
	}
	return index
}

// StudentPaymentsReport shapes the fee collection ledger.
func StudentPaymentsReport(payments []*models.StudentPayment, students map[string]*models.Student) Report {
	r := Report{
		Title:    "Student Payment Collection Report",
		Headers:  []string{"Payment ID", "Student Name", "Grade", "Month", "Total Fee", "Paid", "Outstanding", "Date", "Status"},
		Filename: "Student_Payments_" + datestamp(),
	}
	for _, p := range payments {
		name := Unknown
		if s, ok := students[p.StudentID]; ok {
			name = s.Name
		}
		r.Rows = append(r.Rows, []string{
			p.ID,
			name,
			"Grade " + string(p.Grade),
			p.Month + " " + p.Year,
			utils.FormatCurrency(p.TotalFee),
			utils.FormatCurrency(p.PaidAmount),
			utils.FormatCurrency(p.OutstandingAmount),
			p.Date,
			string(p.Status),
		})
	}
	return r
}

// TeacherDirectoryReport shapes the staff directory and compensation
// listing.
func TeacherDirectoryReport(teachers []*models.Teacher) Report {
	r := Report{
		Title:    "Teacher Directory & Compensation Report",
		Headers:  []string{"Teacher ID", "Name", "Subject", "Grades", "Payment Type", "Rate", "Contact", "Status"},
		Filename: "Teacher_Records_" + datestamp(),
	}
	for _, t := range teachers {
		grades := ""
		for i, g := range t.Grades {
			if i > 0 {
				grades += ", "
			}
			grades += string(g)
		}
		r.Rows = append(r.Rows, []string{
			t.ID,
			t.Name,
			t.Subject,
			grades,
			string(t.PaymentType),
			utils.FormatCurrency(t.Rate),
			t.Contact,
			string(t.Status),
		})
	}
	return r
}

// TeacherPaymentsReport shapes the committed payout ledger.
func TeacherPaymentsReport(payments []*models.TeacherPayment, teachers map[string]*models.Teacher) Report {
	r := Report{
		Title:    "Teacher Monthly Salary & Hours Report",
		Headers:  []string{"Payment ID", "Teacher", "Month", "Grade Scope", "Classes", "Hours", "Payable", "Paid", "Status", "Date"},
		Filename: "Teacher_Payments_" + datestamp(),
	}
	for _, p := range payments {
		r.Rows = append(r.Rows, []string{
			p.ID,
			teacherName(teachers, p.TeacherID),
			p.Month,
			p.Grade,
			fmt.Sprintf("%d", p.TotalClasses),
			p.TotalHours.StringFixed(2),
			utils.FormatCurrency(p.AmountPayable),
			utils.FormatCurrency(p.AmountPaid),
			p.ClearanceStatus(),
			p.Date,
		})
	}
	return r
}

// ScheduleLogReport shapes the class log.
func ScheduleLogReport(schedules []*models.ClassSchedule, teachers map[string]*models.Teacher) Report {
	r := Report{
		Title:    "Class Schedule & Logs Report",
		Headers:  []string{"Date", "Grade", "Subject", "Teacher", "Time", "Duration"},
		Filename: "Class_Logs_" + datestamp(),
	}
	for _, s := range schedules {
		r.Rows = append(r.Rows, []string{
			s.Date,
			"Grade " + string(s.Grade),
			s.Subject,
			teacherName(teachers, s.TeacherID),
			s.StartTime + " - " + s.EndTime,
			s.TotalHours.StringFixed(2) + " hr",
		})
	}
	return r
}

// SalarySlipReport shapes a teacher's class-by-class earning breakdown
// for one period, closed with a TOTAL row. The schedules passed in
// must already be scoped to the teacher and period.
func SalarySlipReport(teacher *models.Teacher, scoped []*models.ClassSchedule, month, year string) Report {
	name := Unknown
	if teacher != nil {
		name = teacher.Name
	}
	r := Report{
		Title:    fmt.Sprintf("Salary Breakdown - %s (%s %s)", name, month, year),
		Headers:  []string{"Date", "Grade", "Subject", "Time", "Duration", "Rate Applied", "Earned"},
		Filename: fmt.Sprintf("Salary_Slip_%s_%s_%s", name, month, year),
	}

	totalHours := decimal.Zero
	totalEarned := decimal.Zero
	for _, s := range scoped {
		earned := payroll.SessionEarning(s, teacher, len(scoped))
		totalHours = totalHours.Add(s.TotalHours)
		totalEarned = totalEarned.Add(earned)
		r.Rows = append(r.Rows, []string{
			s.Date,
			"Grade " + string(s.Grade),
			s.Subject,
			s.StartTime + " - " + s.EndTime,
			s.TotalHours.StringFixed(2) + " hr",
			utils.FormatCurrency(payroll.EffectiveRate(s, teacher)),
			utils.FormatCurrency(earned),
		})
	}
	r.Rows = append(r.Rows, []string{
		"TOTAL", "", "", "",
		totalHours.StringFixed(2) + " hrs",
		"",
		utils.FormatCurrency(totalEarned.Round(2)),
	})
	return r
}

// AttendanceBySubjectReport shapes per-subject attendance
// percentages. Attendance rows are joined to their sessions; rows
// referencing deleted sessions are grouped under Unknown.
func AttendanceBySubjectReport(records []*models.Attendance, schedules []*models.ClassSchedule) Report {
	bySchedule := make(map[string]*models.ClassSchedule, len(schedules))
	for _, s := range schedules {
		bySchedule[s.ID] = s
	}

	type tally struct {
		present int
		total   int
	}
	counts := make(map[string]*tally)
	var subjects []string
	for _, a := range records {
		subject := Unknown
		if s, ok := bySchedule[a.ClassID]; ok {
			subject = s.Subject
		}
		c, ok := counts[subject]
		if !ok {
			c = &tally{}
			counts[subject] = c
			subjects = append(subjects, subject)
		}
		c.total++
		if a.IsPresent {
			c.present++
		}
	}

	r := Report{
		Title:    "Attendance Percentage by Subject",
		Headers:  []string{"Subject", "Records", "Present", "Absent", "Attendance %"},
		Filename: "Attendance_By_Subject_" + datestamp(),
	}
	for _, subject := range subjects {
		c := counts[subject]
		pct := 0.0
		if c.total > 0 {
			pct = float64(c.present) / float64(c.total) * 100
		}
		r.Rows = append(r.Rows, []string{
			subject,
			fmt.Sprintf("%d", c.total),
			fmt.Sprintf("%d", c.present),
			fmt.Sprintf("%d", c.total-c.present),
			fmt.Sprintf("%.1f%%", pct),
		})
	}
	return r
}
