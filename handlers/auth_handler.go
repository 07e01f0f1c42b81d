package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/madiharazzak/WEIC-Time-Tracking/middleware"
)

type ValidatePinRequest struct {
	Pin string `json:"pin" validate:"required,min=4,max=6"`
}

// ValidatePin compares the candidate PIN against the stored hash and, on a
// match, marks the caller's session as admin-authorized.
func (h *Handler) ValidatePin(c *fiber.Ctx) error {
	var req ValidatePinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "PIN must be 4 to 6 characters"})
	}

	ok, err := h.Store.ValidatePin(c.Context(), req.Pin)
	if err != nil {
		return storeError(c, err, "Failed to validate PIN")
	}
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid PIN"})
	}

	if err := middleware.MarkAdmin(h.Sessions, c); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start admin session"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) CheckAdmin(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"isAdmin": middleware.IsAdmin(h.Sessions, c)})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	if err := middleware.ClearSession(h.Sessions, c); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log out"})
	}
	return c.JSON(fiber.Map{"success": true})
}
