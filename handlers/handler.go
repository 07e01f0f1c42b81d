package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/madiharazzak/WEIC-Time-Tracking/services"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
)

var validate = validator.New()

// Handler bundles the dependencies of the HTTP surface. Everything is
// injected from main; handlers never reach for globals.
type Handler struct {
	Store     store.Store
	Timeclock *services.TimeclockService
	Sessions  *session.Store
	Secret    string // signs recovery tokens
}

func New(st store.Store, timeclock *services.TimeclockService, sessions *session.Store, secret string) *Handler {
	return &Handler{
		Store:     st,
		Timeclock: timeclock,
		Sessions:  sessions,
		Secret:    secret,
	}
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// storeError maps storage and lifecycle failures onto the API's status codes;
// anything unrecognized is a 500 with the caller's message.
func storeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, store.ErrTeacherNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	case errors.Is(err, store.ErrTimeEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Time entry not found"})
	case errors.Is(err, store.ErrSettingsExists):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "PIN is already configured"})
	case errors.Is(err, services.ErrAlreadyCheckedIn):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Teacher is already checked in"})
	case errors.Is(err, services.ErrNotCheckedIn):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Teacher is not checked in"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
	}
}
