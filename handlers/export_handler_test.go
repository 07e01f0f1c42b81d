package handlers_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madiharazzak/WEIC-Time-Tracking/handlers"
	"github.com/madiharazzak/WEIC-Time-Tracking/models"
)

func TestExportTimesheetRequiresAdmin(t *testing.T) {
	app, _ := newTestApp(t)
	setupPin(t, app)

	resp := doRequest(t, app, fiber.MethodGet, "/export/timesheet?month=3&year=2025", nil, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestExportTimesheet(t *testing.T) {
	app, st := newTestApp(t)
	setupPin(t, app)
	cookie := adminSession(t, app)

	alice := seedTeacher(t, st, "Alice", "20.00", "8.00")
	bob := seedTeacher(t, st, "Bob", "15.50", "6.00")

	mar10 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mar12 := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	apr01 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	seedCompletedEntry(t, st, alice.ID, "2025-03-10", mar10, "8.00", "160.00")
	seedCompletedEntry(t, st, bob.ID, "2025-03-12", mar12, "4.50", "69.75")
	seedCompletedEntry(t, st, alice.ID, "2025-04-01", apr01, "5.00", "100.00")

	// An open session must never appear on the timesheet.
	openEntry := &models.TimeEntry{TeacherID: alice.ID, Date: "2025-03-15", CheckInTime: mar10}
	require.NoError(t, st.CreateTimeEntry(context.Background(), openEntry))

	resp := doRequest(t, app, fiber.MethodGet, "/export/timesheet?month=3&year=2025", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rows []handlers.TimesheetRow
	decodeJSON(t, resp, &rows)
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-03-12", rows[0].Date, "newest date first")
	assert.Equal(t, "Bob", rows[0].TeacherName)
	assert.True(t, rows[0].Pay.Equal(decimal.RequireFromString("69.75")))
	assert.True(t, rows[0].HourlyRate.Equal(decimal.RequireFromString("15.50")))

	assert.Equal(t, "2025-03-10", rows[1].Date)
	assert.Equal(t, "Alice", rows[1].TeacherName)
	assert.True(t, rows[1].Pay.Equal(decimal.RequireFromString("160.00")))
}

func TestExportTimesheetValidation(t *testing.T) {
	app, _ := newTestApp(t)
	setupPin(t, app)
	cookie := adminSession(t, app)

	for _, query := range []string{"", "month=13&year=2025", "month=0&year=2025", "month=3", "month=3&year=abc"} {
		resp := doRequest(t, app, fiber.MethodGet, "/export/timesheet?"+query, nil, cookie)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "query %q", query)
	}
}

func TestExportTimesheetCSV(t *testing.T) {
	app, st := newTestApp(t)
	setupPin(t, app)
	cookie := adminSession(t, app)

	alice := seedTeacher(t, st, "Alice", "20.00", "8.00")
	mar10 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	seedCompletedEntry(t, st, alice.ID, "2025-03-10", mar10, "8.00", "160.00")

	resp := doRequest(t, app, fiber.MethodGet, "/export/timesheet?month=3&year=2025&format=csv", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "timesheet_2025-03.csv")

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Teacher,Date,Check In,Check Out,Hours Worked,Billable Hours,Hourly Rate,Pay", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "Alice")
	assert.Contains(t, lines[1], "2025-03-10")
	assert.Contains(t, lines[1], "160.00")
}

func TestExportPayslipValidation(t *testing.T) {
	app, _ := newTestApp(t)
	setupPin(t, app)
	cookie := adminSession(t, app)

	resp := doRequest(t, app, fiber.MethodGet, "/export/payslip?month=3&year=2025", nil, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "teacherId is required")

	resp = doRequest(t, app, fiber.MethodGet, "/export/payslip?teacherId=nope&month=3&year=2025", nil, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet,
		"/export/payslip?teacherId=b2f7c0af-55c9-4df5-a212-8c52a2f93b42&month=3&year=2025", nil, cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
