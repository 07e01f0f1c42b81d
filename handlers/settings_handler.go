package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/madiharazzak/WEIC-Time-Tracking/middleware"
	"github.com/madiharazzak/WEIC-Time-Tracking/models"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
	"github.com/madiharazzak/WEIC-Time-Tracking/utils"
)

type SetupPinRequest struct {
	Pin string `json:"pin" validate:"required,min=4,max=6"`
}

type ResetRequest struct {
	RecoveryToken string `json:"recoveryToken"`
}

func (h *Handler) GetPinSetupStatus(c *fiber.Ctx) error {
	_, err := h.Store.GetSettings(c.Context())
	if errors.Is(err, store.ErrSettingsNotFound) {
		return c.JSON(fiber.Map{"hasPin": false})
	}
	if err != nil {
		return storeError(c, err, "Failed to load settings")
	}
	return c.JSON(fiber.Map{"hasPin": true})
}

// SetupPin configures the admin PIN exactly once. The response carries a
// one-time recovery token; it is the only credential that can reset the
// system if the PIN is forgotten.
func (h *Handler) SetupPin(c *fiber.Ctx) error {
	var req SetupPinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "PIN must be 4 to 6 characters"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Pin), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash PIN"})
	}

	settings := &models.AppSettings{PinHash: string(hash)}
	if err := h.Store.CreateSettings(c.Context(), settings); err != nil {
		return storeError(c, err, "Failed to save settings")
	}

	response := fiber.Map{"settings": settings}
	token, err := utils.SignRecoveryToken(h.Secret, settings.ID)
	if err != nil {
		log.Printf("⚠️ Recovery token not issued: %v", err)
	} else {
		response["recoveryToken"] = token
	}
	return c.JSON(response)
}

// ResetAllData wipes every teacher, time entry and the PIN settings, then
// destroys the caller's session. It doubles as the forgot-PIN recovery path:
// the caller must hold an admin session or present the recovery token issued
// at setup. An unconfigured system may always be reset.
func (h *Handler) ResetAllData(c *fiber.Ctx) error {
	if !h.canReset(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden: A valid admin session or recovery token is required"})
	}

	if err := h.Store.Reset(c.Context()); err != nil {
		return storeError(c, err, "Failed to reset data")
	}
	if err := middleware.ClearSession(h.Sessions, c); err != nil {
		log.Printf("⚠️ Failed to clear session after reset: %v", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) canReset(c *fiber.Ctx) bool {
	if middleware.IsAdmin(h.Sessions, c) {
		return true
	}

	settings, err := h.Store.GetSettings(c.Context())
	if errors.Is(err, store.ErrSettingsNotFound) {
		return true
	}
	if err != nil {
		return false
	}

	var req ResetRequest
	if err := c.BodyParser(&req); err != nil || req.RecoveryToken == "" {
		return false
	}
	settingsID, err := utils.ParseRecoveryToken(h.Secret, req.RecoveryToken)
	if err != nil {
		return false
	}
	return settingsID == settings.ID
}
