package models

// Grade defines the school-grade levels the academy teaches.
type Grade string

const (
	Grade6  Grade = "6"
	Grade7  Grade = "7"
	Grade8  Grade = "8"
	Grade9  Grade = "9"
	Grade10 Grade = "10"
	Grade11 Grade = "11"
)

// GradeAll is the scope value meaning "no grade filter" for payout
// calculations and teacher payment records.
const GradeAll = "All"

// AllGrades lists every grade in ascending order.
var AllGrades = []Grade{Grade6, Grade7, Grade8, Grade9, Grade10, Grade11}

// IsValidGrade reports whether s names a known grade.
func IsValidGrade(s string) bool {
	for _, g := range AllGrades {
		if string(g) == s {
			return true
		}
	}
	return false
}

// PaymentType defines how a teacher is compensated.
type PaymentType string

const (
	// Hourly teachers earn rate x hours per session.
	Hourly PaymentType = "Hourly"
	// Monthly teachers earn a fixed period amount distributed across
	// the sessions taught in that period.
	Monthly PaymentType = "Monthly"
)

// RecordStatus defines whether a teacher or student is active.
type RecordStatus string

const (
	Active   RecordStatus = "Active"
	Inactive RecordStatus = "Inactive"
)

// PaymentStatus defines the settlement state of a student fee record.
type PaymentStatus string

const (
	Paid          PaymentStatus = "Paid"
	PartiallyPaid PaymentStatus = "Partially Paid"
	Unpaid        PaymentStatus = "Unpaid"
)

// Months lists month names in calendar order, as stored on schedules
// and payment records.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
