package payments

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"mecda-academy/app/config"
	"mecda-academy/app/models"
	"mecda-academy/app/sync"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payoutTeacherID = "4a8b2c6d-1e3f-4a5b-9c7d-2f4e6a8b0c1d"

func newPayoutTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	config.AppConfig = &config.Config{DB: db}
	changeBus = sync.NewBus()

	app := fiber.New()
	app.Post("/api/payments/teachers", CreateTeacherPaymentAPI)
	app.Get("/api/payments/teachers/:id", GetTeacherPaymentAPI)
	return app, mock
}

func TestTeacherPaymentSnapshotFrozenAfterCommit(t *testing.T) {
	app, mock := newPayoutTestApp(t)

	// Commit: snapshot computed from the two matching sessions of an
	// hourly teacher at rate 500 (2h + 3h = Rs 2500).
	mock.ExpectQuery(`FROM teachers WHERE id`).
		WithArgs(payoutTeacherID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "subject", "grades", "payment_type", "rate", "contact", "whatsapp", "status",
		}).AddRow(payoutTeacherID, "Ms. Silva", "Mathematics", "{8,9}", "Hourly", "500", "", "", "Active"))
	mock.ExpectQuery(`WHERE teacher_id`).
		WithArgs(payoutTeacherID, "January", "2025").
		WillReturnRows(scheduleRows().
			AddRow("s1", "8", "Mathematics", payoutTeacherID, "2025-01-10", "16:00", "18:00", "2.00", nil, "January", "2025").
			AddRow("s2", "9", "Mathematics", payoutTeacherID, "2025-01-17", "15:00", "18:00", "3.00", nil, "January", "2025"))
	mock.ExpectExec(`INSERT INTO teacher_payments`).
		WithArgs(sqlmock.AnyArg(), payoutTeacherID, "January 2025", "All", 2,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "2025-01-31").
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := `{"teacher_id":"` + payoutTeacherID + `","month":"January 2025","grade":"All","amount_paid":2500,"date":"2025-01-31"}`
	req := httptest.NewRequest("POST", "/api/payments/teachers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var created struct {
		Payment models.TeacherPayment `json:"payment"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, 2, created.Payment.TotalClasses)
	assert.True(t, created.Payment.TotalHours.Equal(decimal.NewFromInt(5)))
	assert.True(t, created.Payment.AmountPayable.Equal(decimal.NewFromInt(2500)))

	// Read back after more sessions have been scheduled. The only
	// query allowed is the teacher_payments row itself: the committed
	// record is returned as stored, never recomputed from schedules.
	mock.ExpectQuery(`FROM teacher_payments WHERE id`).
		WithArgs(created.Payment.ID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "teacher_id", "month", "grade", "total_classes",
			"total_hours", "amount_payable", "amount_paid", "date",
		}).AddRow(created.Payment.ID, payoutTeacherID, "January 2025", "All", 2,
			"5.00", "2500.00", "2500.00", "2025-01-31"))

	req = httptest.NewRequest("GET", "/api/payments/teachers/"+created.Payment.ID, nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var fetched struct {
		Payment models.TeacherPayment `json:"payment"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	assert.Equal(t, 2, fetched.Payment.TotalClasses)
	assert.True(t, fetched.Payment.AmountPayable.Equal(decimal.NewFromInt(2500)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeacherPaymentStoreFailureIs500(t *testing.T) {
	app, mock := newPayoutTestApp(t)

	mock.ExpectQuery(`FROM teachers WHERE id`).
		WithArgs(payoutTeacherID).
		WillReturnError(errors.New("connection refused"))

	body := `{"teacher_id":"` + payoutTeacherID + `","month":"January 2025","grade":"All","amount_paid":0,"date":"2025-01-31"}`
	req := httptest.NewRequest("POST", "/api/payments/teachers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestCreateTeacherPaymentBadPeriodIs400(t *testing.T) {
	app, _ := newPayoutTestApp(t)

	body := `{"teacher_id":"` + payoutTeacherID + `","month":"January","grade":"All","amount_paid":0,"date":"2025-01-31"}`
	req := httptest.NewRequest("POST", "/api/payments/teachers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func scheduleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "grade", "subject", "teacher_id", "date",
		"start_time", "end_time", "total_hours", "rate_override", "month", "year",
	})
}
