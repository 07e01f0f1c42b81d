package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/madiharazzak/WEIC-Time-Tracking/handlers"
)

func AuthRoutes(app *fiber.App, h *handlers.Handler) {
	auth := app.Group("/auth")
	auth.Post("/validate-pin", h.ValidatePin)
	auth.Get("/check-admin", h.CheckAdmin)
	auth.Post("/logout", h.Logout)
}
