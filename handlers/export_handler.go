package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/madiharazzak/WEIC-Time-Tracking/models"
	"github.com/madiharazzak/WEIC-Time-Tracking/services"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
)

// TimesheetRow is one completed work session joined with its teacher's
// billing details, ready for payroll review.
type TimesheetRow struct {
	TeacherName   string          `json:"teacherName"`
	Date          string          `json:"date"`
	CheckInTime   time.Time       `json:"checkInTime"`
	CheckOutTime  time.Time       `json:"checkOutTime"`
	HoursWorked   decimal.Decimal `json:"hoursWorked"`
	BillableHours decimal.Decimal `json:"billableHours"`
	HourlyRate    decimal.Decimal `json:"hourlyRate"`
	Pay           decimal.Decimal `json:"pay"`
}

// ExportTimesheet returns all completed entries for a month as JSON, or as
// a CSV download when format=csv is passed.
func (h *Handler) ExportTimesheet(c *fiber.Ctx) error {
	month, year, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rows, err := h.timesheetRows(c, store.TimeEntryFilter{Month: &month, Year: &year})
	if err != nil {
		return storeError(c, err, "Failed to build timesheet")
	}

	if c.Query("format") == "csv" {
		return writeTimesheetCSV(c, rows, month, year)
	}
	return c.JSON(rows)
}

// ExportPayslip renders a single teacher's monthly pay statement as a PDF
// download.
func (h *Handler) ExportPayslip(c *fiber.Ctx) error {
	teacherIDStr := c.Query("teacherId")
	if teacherIDStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "teacherId is required"})
	}
	teacherID, err := uuid.Parse(teacherIDStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacherId"})
	}
	month, year, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	teacher, err := h.Store.GetTeacher(c.Context(), teacherID)
	if err != nil {
		return storeError(c, err, "Failed to load teacher")
	}

	open := false
	entries, err := h.Store.ListTimeEntries(c.Context(), store.TimeEntryFilter{
		TeacherID: &teacherID,
		Month:     &month,
		Year:      &year,
		Open:      &open,
	})
	if err != nil {
		return storeError(c, err, "Failed to load time entries")
	}

	pdf, err := services.GeneratePayslipPDF(teacher, entries, time.Month(month), year)
	if err != nil {
		log.Printf("🔥 Failed to generate payslip PDF: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate payslip"})
	}

	filename := fmt.Sprintf("payslip_%04d-%02d.pdf", year, month)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

func parsePeriod(c *fiber.Ctx) (int, int, error) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be between 1 and 12")
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		return 0, 0, fmt.Errorf("year must be a valid year")
	}
	return month, year, nil
}

func (h *Handler) timesheetRows(c *fiber.Ctx, filter store.TimeEntryFilter) ([]TimesheetRow, error) {
	open := false
	filter.Open = &open

	entries, err := h.Store.ListTimeEntries(c.Context(), filter)
	if err != nil {
		return nil, err
	}
	teachers, err := h.Store.ListTeachers(c.Context())
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Teacher, len(teachers))
	for _, t := range teachers {
		byID[t.ID] = t
	}

	rows := make([]TimesheetRow, 0, len(entries))
	for _, e := range entries {
		teacher, ok := byID[e.TeacherID]
		if !ok || e.CheckOutTime == nil {
			continue
		}
		pay := decimal.Zero
		if e.Pay != nil {
			pay = *e.Pay
		}
		rows = append(rows, TimesheetRow{
			TeacherName:   teacher.Name,
			Date:          e.Date,
			CheckInTime:   e.CheckInTime,
			CheckOutTime:  *e.CheckOutTime,
			HoursWorked:   e.HoursWorked,
			BillableHours: e.BillableHours,
			HourlyRate:    teacher.HourlyRate,
			Pay:           pay,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		return rows[i].CheckInTime.After(rows[j].CheckInTime)
	})
	return rows, nil
}

func writeTimesheetCSV(c *fiber.Ctx, rows []TimesheetRow, month, year int) error {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	w.Write([]string{"Teacher", "Date", "Check In", "Check Out", "Hours Worked", "Billable Hours", "Hourly Rate", "Pay"})
	for _, r := range rows {
		w.Write([]string{
			r.TeacherName,
			r.Date,
			r.CheckInTime.Format(time.RFC3339),
			r.CheckOutTime.Format(time.RFC3339),
			r.HoursWorked.StringFixed(2),
			r.BillableHours.StringFixed(2),
			r.HourlyRate.StringFixed(2),
			r.Pay.StringFixed(2),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("🔥 Failed to write timesheet CSV: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV"})
	}

	filename := fmt.Sprintf("timesheet_%04d-%02d.csv", year, month)
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(b.Bytes())
}
