package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/madiharazzak/WEIC-Time-Tracking/models"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
)

// GetTimeEntries lists entries, optionally narrowed by teacher or calendar
// date. A teacherId filter takes precedence over a date filter.
func (h *Handler) GetTimeEntries(c *fiber.Ctx) error {
	filter := store.TimeEntryFilter{}

	if teacherIDStr := c.Query("teacherId"); teacherIDStr != "" {
		teacherID, err := uuid.Parse(teacherIDStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacherId"})
		}
		filter.TeacherID = &teacherID
	} else if date := c.Query("date"); date != "" {
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD."})
		}
		filter.Date = &date
	}

	entries, err := h.Store.ListTimeEntries(c.Context(), filter)
	if err != nil {
		return storeError(c, err, "Failed to load time entries")
	}
	return c.JSON(entries)
}
