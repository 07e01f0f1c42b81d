package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinSetupStatus(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodGet, "/settings/pin-setup", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]bool
	decodeJSON(t, resp, &body)
	assert.False(t, body["hasPin"])

	setupPin(t, app)

	resp = doRequest(t, app, fiber.MethodGet, "/settings/pin-setup", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &body)
	assert.True(t, body["hasPin"])
}

func TestSetupPinRejectsSecondAttempt(t *testing.T) {
	app, _ := newTestApp(t)
	setupPin(t, app)

	resp := doRequest(t, app, fiber.MethodPost, "/settings/setup-pin", fiber.Map{"pin": "5678"}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSetupPinValidation(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"too short", fiber.Map{"pin": "12"}},
		{"too long", fiber.Map{"pin": "1234567"}},
		{"missing", fiber.Map{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t)
			resp := doRequest(t, app, fiber.MethodPost, "/settings/setup-pin", tt.body, nil)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestValidatePin(t *testing.T) {
	app, _ := newTestApp(t)
	setupPin(t, app)

	resp := doRequest(t, app, fiber.MethodPost, "/auth/validate-pin", fiber.Map{"pin": "9999"}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodPost, "/auth/validate-pin", fiber.Map{"pin": testPin}, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]bool
	decodeJSON(t, resp, &body)
	assert.True(t, body["success"])
}

func TestValidatePinWithoutConfiguredPin(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doRequest(t, app, fiber.MethodPost, "/auth/validate-pin", fiber.Map{"pin": testPin}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCheckAdminReflectsSession(t *testing.T) {
	app, _ := newTestApp(t)
	setupPin(t, app)

	resp := doRequest(t, app, fiber.MethodGet, "/auth/check-admin", nil, nil)
	var body map[string]bool
	decodeJSON(t, resp, &body)
	assert.False(t, body["isAdmin"])

	cookie := adminSession(t, app)
	resp = doRequest(t, app, fiber.MethodGet, "/auth/check-admin", nil, cookie)
	decodeJSON(t, resp, &body)
	assert.True(t, body["isAdmin"])
}

func TestLogoutClearsSession(t *testing.T) {
	app, _ := newTestApp(t)
	setupPin(t, app)
	cookie := adminSession(t, app)

	resp := doRequest(t, app, fiber.MethodPost, "/auth/logout", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/auth/check-admin", nil, cookie)
	var body map[string]bool
	decodeJSON(t, resp, &body)
	assert.False(t, body["isAdmin"])
}

func TestResetOnUnconfiguredSystem(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/settings/reset", nil, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestResetRequiresCredential(t *testing.T) {
	app, _ := newTestApp(t)
	setupPin(t, app)

	resp := doRequest(t, app, fiber.MethodPost, "/settings/reset", nil, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodPost, "/settings/reset", fiber.Map{"recoveryToken": "garbage"}, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestResetWithAdminSession(t *testing.T) {
	app, st := newTestApp(t)
	setupPin(t, app)
	cookie := adminSession(t, app)
	seedTeacher(t, st, "Amina", "20.00", "8.00")

	resp := doRequest(t, app, fiber.MethodPost, "/settings/reset", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/settings/pin-setup", nil, nil)
	var status map[string]bool
	decodeJSON(t, resp, &status)
	assert.False(t, status["hasPin"], "reset must clear the PIN")

	resp = doRequest(t, app, fiber.MethodGet, "/teachers", nil, nil)
	var teachers []any
	decodeJSON(t, resp, &teachers)
	assert.Empty(t, teachers, "reset must clear teachers")

	resp = doRequest(t, app, fiber.MethodGet, "/auth/check-admin", nil, cookie)
	var body map[string]bool
	decodeJSON(t, resp, &body)
	assert.False(t, body["isAdmin"], "reset must end the admin session")
}

func TestResetWithRecoveryToken(t *testing.T) {
	app, _ := newTestApp(t)
	token := setupPin(t, app)

	resp := doRequest(t, app, fiber.MethodPost, "/settings/reset", fiber.Map{"recoveryToken": token}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/settings/pin-setup", nil, nil)
	var status map[string]bool
	decodeJSON(t, resp, &status)
	assert.False(t, status["hasPin"])
}

func TestRecoveryTokenInvalidAfterReset(t *testing.T) {
	app, _ := newTestApp(t)
	token := setupPin(t, app)

	resp := doRequest(t, app, fiber.MethodPost, "/settings/reset", fiber.Map{"recoveryToken": token}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A fresh setup issues a fresh token; the old one is bound to the wiped
	// settings record and cannot reset the new one.
	setupPin(t, app)
	resp = doRequest(t, app, fiber.MethodPost, "/settings/reset", fiber.Map{"recoveryToken": token}, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
