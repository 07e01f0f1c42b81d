package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/madiharazzak/WEIC-Time-Tracking/handlers"
	"github.com/madiharazzak/WEIC-Time-Tracking/middleware"
)

func TimesheetRoutes(app *fiber.App, h *handlers.Handler, sessions *session.Store) {
	app.Get("/time-entries", h.GetTimeEntries)

	export := app.Group("/export", middleware.AdminRequired(sessions))
	export.Get("/timesheet", h.ExportTimesheet)
	export.Get("/payslip", h.ExportPayslip)
}
