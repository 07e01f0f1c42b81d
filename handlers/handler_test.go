package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/madiharazzak/WEIC-Time-Tracking/handlers"
	"github.com/madiharazzak/WEIC-Time-Tracking/middleware"
	"github.com/madiharazzak/WEIC-Time-Tracking/models"
	"github.com/madiharazzak/WEIC-Time-Tracking/routes"
	"github.com/madiharazzak/WEIC-Time-Tracking/services"
	"github.com/madiharazzak/WEIC-Time-Tracking/store/memstore"
)

const testPin = "1234"

func newTestApp(t *testing.T) (*fiber.App, *memstore.Store) {
	t.Helper()

	st := memstore.New()
	timeclock := services.NewTimeclockService(st, time.UTC)
	sessions := middleware.NewSessionStore()
	h := handlers.New(st, timeclock, sessions, "test-secret")

	app := fiber.New()
	routes.AuthRoutes(app, h)
	routes.SettingsRoutes(app, h)
	routes.TeacherRoutes(app, h, sessions)
	routes.TimesheetRoutes(app, h, sessions)
	return app, st
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// setupPin configures the admin PIN and returns the recovery token issued
// with it.
func setupPin(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/settings/setup-pin", fiber.Map{"pin": testPin}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		RecoveryToken string `json:"recoveryToken"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.RecoveryToken)
	return body.RecoveryToken
}

// adminSession validates the PIN and returns the resulting session cookie.
func adminSession(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/auth/validate-pin", fiber.Map{"pin": testPin}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	t.Fatal("validate-pin issued no session cookie")
	return nil
}

func seedTeacher(t *testing.T, st *memstore.Store, name, rate, cap string) *models.Teacher {
	t.Helper()

	teacher := &models.Teacher{
		Name:             name,
		HourlyRate:       decimal.RequireFromString(rate),
		MaxBillableHours: decimal.RequireFromString(cap),
	}
	require.NoError(t, st.CreateTeacher(context.Background(), teacher))
	return teacher
}

func seedCompletedEntry(t *testing.T, st *memstore.Store, teacherID uuid.UUID, date string, checkIn time.Time, hours, pay string) *models.TimeEntry {
	t.Helper()

	h := decimal.RequireFromString(hours)
	p := decimal.RequireFromString(pay)
	checkOut := checkIn.Add(5 * time.Hour)
	entry := &models.TimeEntry{
		TeacherID:     teacherID,
		Date:          date,
		CheckInTime:   checkIn,
		CheckOutTime:  &checkOut,
		HoursWorked:   h,
		BillableHours: h,
		Pay:           &p,
	}
	require.NoError(t, st.CreateTimeEntry(context.Background(), entry))
	return entry
}
