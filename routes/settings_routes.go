package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/madiharazzak/WEIC-Time-Tracking/handlers"
)

func SettingsRoutes(app *fiber.App, h *handlers.Handler) {
	settings := app.Group("/settings")
	settings.Get("/pin-setup", h.GetPinSetupStatus)
	settings.Post("/setup-pin", h.SetupPin)
	settings.Post("/reset", h.ResetAllData)
}
