package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/madiharazzak/WEIC-Time-Tracking/handlers"
	"github.com/madiharazzak/WEIC-Time-Tracking/middleware"
)

func TeacherRoutes(app *fiber.App, h *handlers.Handler, sessions *session.Store) {
	adminRequired := middleware.AdminRequired(sessions)
	teachers := app.Group("/teachers")

	// Kiosk view: anyone can list teachers and clock in or out.
	teachers.Get("", h.GetAllTeachers)
	teachers.Post("/:id/checkin", h.CheckInTeacher)
	teachers.Post("/:id/checkout", h.CheckOutTeacher)

	teachers.Post("", adminRequired, h.CreateTeacher)
	teachers.Patch("/:id", adminRequired, h.UpdateTeacher)
	teachers.Delete("/:id", adminRequired, h.DeleteTeacher)
	teachers.Post("/:id/photo", adminRequired, h.UploadTeacherPhoto)
}
