package models

// Attendance records one student's presence for one class session.
// One row per (student, class) is expected; the session gate treats a
// class with any attendance rows as already marked.
type Attendance struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id" validate:"required,uuid"`
	ClassID   string `json:"class_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required"` // YYYY-MM-DD
	IsPresent bool   `json:"is_present"`
}
