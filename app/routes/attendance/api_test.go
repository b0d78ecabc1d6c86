package attendance

import (
	"net/http/httptest"
	"strings"
	"testing"

	"mecda-academy/app/config"
	"mecda-academy/app/sync"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testClassID   = "b3f1d2a4-9c6e-4f1b-8a2d-5e7c9f0a1b2c"
	testTeacherID = "4a8b2c6d-1e3f-4a5b-9c7d-2f4e6a8b0c1d"
	testStudentA  = "7c1d3e5f-2a4b-4c6d-8e0f-1a3b5c7d9e0f"
	testStudentB  = "9e2f4a6b-3c5d-4e7f-a1b2-c3d4e5f6a7b8"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	config.AppConfig = &config.Config{DB: db}
	changeBus = sync.NewBus()

	app := fiber.New()
	app.Post("/api/attendance/class/:classId", MarkAttendanceAPI)
	return app, mock
}

func expectClassLookup(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`FROM schedules WHERE id`).
		WithArgs(testClassID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "grade", "subject", "teacher_id", "date",
			"start_time", "end_time", "total_hours", "rate_override", "month", "year",
		}).AddRow(testClassID, "8", "Mathematics", testTeacherID, "2025-01-10",
			"16:00", "18:00", "2.00", nil, "January", "2025"))
}

func TestMarkAttendanceRejectsAlreadyMarkedClass(t *testing.T) {
	app, mock := newTestApp(t)

	expectClassLookup(mock)
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(testClassID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	body := `{"records":[{"student_id":"` + testStudentA + `","is_present":true}]}`
	req := httptest.NewRequest("POST", "/api/attendance/class/"+testClassID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet(), "no rows may be written for a marked class")
}

func TestMarkAttendanceWritesOneRowPerStudent(t *testing.T) {
	app, mock := newTestApp(t)

	expectClassLookup(mock)
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(testClassID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`INSERT INTO attendance`).
		WithArgs(sqlmock.AnyArg(), testStudentA, testClassID, "2025-01-10", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO attendance`).
		WithArgs(sqlmock.AnyArg(), testStudentB, testClassID, "2025-01-10", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := `{"records":[` +
		`{"student_id":"` + testStudentA + `","is_present":true},` +
		`{"student_id":"` + testStudentB + `","is_present":false}]}`
	req := httptest.NewRequest("POST", "/api/attendance/class/"+testClassID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
