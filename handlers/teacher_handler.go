package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/madiharazzak/WEIC-Time-Tracking/models"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
)

type CreateTeacherRequest struct {
	Name             string          `json:"name" validate:"required"`
	HourlyRate       decimal.Decimal `json:"hourlyRate"`
	MaxBillableHours decimal.Decimal `json:"maxBillableHours"`
}

type UpdateTeacherRequest struct {
	Name             *string          `json:"name"`
	HourlyRate       *decimal.Decimal `json:"hourlyRate"`
	MaxBillableHours *decimal.Decimal `json:"maxBillableHours"`
}

func (h *Handler) GetAllTeachers(c *fiber.Ctx) error {
	teachers, err := h.Store.ListTeachers(c.Context())
	if err != nil {
		return storeError(c, err, "Failed to load teachers")
	}
	return c.JSON(teachers)
}

func (h *Handler) CreateTeacher(c *fiber.Ctx) error {
	var req CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	if !req.HourlyRate.IsPositive() || !req.MaxBillableHours.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "hourlyRate and maxBillableHours must be positive"})
	}

	teacher := &models.Teacher{
		Name:             req.Name,
		HourlyRate:       req.HourlyRate,
		MaxBillableHours: req.MaxBillableHours,
	}
	if err := h.Store.CreateTeacher(c.Context(), teacher); err != nil {
		return storeError(c, err, "Failed to create teacher")
	}
	return c.Status(fiber.StatusCreated).JSON(teacher)
}

// UpdateTeacher merges the provided billing fields. Check-in status is owned
// by the timeclock and cannot be edited here.
func (h *Handler) UpdateTeacher(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher ID"})
	}

	var req UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if req.Name != nil && *req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name cannot be empty"})
	}
	if req.HourlyRate != nil && !req.HourlyRate.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "hourlyRate must be positive"})
	}
	if req.MaxBillableHours != nil && !req.MaxBillableHours.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "maxBillableHours must be positive"})
	}

	teacher, err := h.Store.UpdateTeacher(c.Context(), id, store.TeacherUpdate{
		Name:             req.Name,
		HourlyRate:       req.HourlyRate,
		MaxBillableHours: req.MaxBillableHours,
	})
	if err != nil {
		return storeError(c, err, "Failed to update teacher")
	}
	return c.JSON(teacher)
}

// DeleteTeacher removes the teacher and all of their time entries.
func (h *Handler) DeleteTeacher(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher ID"})
	}

	if err := h.Store.DeleteTeacher(c.Context(), id); err != nil {
		return storeError(c, err, "Failed to delete teacher")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) CheckInTeacher(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher ID"})
	}

	teacher, err := h.Timeclock.CheckIn(c.Context(), id)
	if err != nil {
		return storeError(c, err, "Failed to check in")
	}
	return c.JSON(teacher)
}

func (h *Handler) CheckOutTeacher(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher ID"})
	}

	teacher, err := h.Timeclock.CheckOut(c.Context(), id)
	if err != nil {
		return storeError(c, err, "Failed to check out")
	}
	return c.JSON(teacher)
}
