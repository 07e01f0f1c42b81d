// Package store defines the storage contract the API is written against.
// Implementations: memstore (reference, in-memory) and pgstore (Postgres).
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/madiharazzak/WEIC-Time-Tracking/models"
)

var (
	ErrTeacherNotFound   = errors.New("teacher not found")
	ErrTimeEntryNotFound = errors.New("time entry not found")
	ErrSettingsNotFound  = errors.New("app settings not found")
	ErrSettingsExists    = errors.New("app settings already exist")
)

// TeacherUpdate is a partial teacher mutation; nil fields keep their prior value.
type TeacherUpdate struct {
	Name               *string
	HourlyRate         *decimal.Decimal
	MaxBillableHours   *decimal.Decimal
	PhotoURL           *string
	IsCheckedIn        *bool
	CurrentCheckInTime *time.Time
	// ClearCheckInTime nulls CurrentCheckInTime and wins over CurrentCheckInTime.
	ClearCheckInTime bool
}

// TimeEntryUpdate is a partial time-entry mutation; nil fields keep their prior value.
type TimeEntryUpdate struct {
	CheckOutTime  *time.Time
	HoursWorked   *decimal.Decimal
	BillableHours *decimal.Decimal
	Pay           *decimal.Decimal
}

// TimeEntryFilter narrows ListTimeEntries. The zero value lists everything.
type TimeEntryFilter struct {
	TeacherID *uuid.UUID
	Date      *string
	Open      *bool // true: open sessions only; false: completed only
	Month     *int  // 1-12, matched against the date's month component
	Year      *int
}

type Store interface {
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	GetTeacher(ctx context.Context, id uuid.UUID) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, teacher *models.Teacher) error
	UpdateTeacher(ctx context.Context, id uuid.UUID, update TeacherUpdate) (*models.Teacher, error)
	// DeleteTeacher removes the teacher and all of their time entries.
	DeleteTeacher(ctx context.Context, id uuid.UUID) error

	ListTimeEntries(ctx context.Context, filter TimeEntryFilter) ([]models.TimeEntry, error)
	GetOpenTimeEntry(ctx context.Context, teacherID uuid.UUID, date string) (*models.TimeEntry, error)
	CreateTimeEntry(ctx context.Context, entry *models.TimeEntry) error
	UpdateTimeEntry(ctx context.Context, id uuid.UUID, update TimeEntryUpdate) (*models.TimeEntry, error)

	GetSettings(ctx context.Context) (*models.AppSettings, error)
	CreateSettings(ctx context.Context, settings *models.AppSettings) error
	// ValidatePin compares against the stored hash; false when no settings exist.
	ValidatePin(ctx context.Context, candidate string) (bool, error)

	// Reset clears all teachers, time entries and settings.
	Reset(ctx context.Context) error
}

// VerifyPin compares a candidate PIN against a bcrypt hash.
func VerifyPin(pinHash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(pinHash), []byte(candidate)) == nil
}

// MatchesPeriod reports whether a YYYY-MM-DD date string falls in the given
// optional month/year components.
func MatchesPeriod(date string, month, year *int) bool {
	if month == nil && year == nil {
		return true
	}
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return false
	}
	if month != nil && int(d.Month()) != *month {
		return false
	}
	if year != nil && d.Year() != *year {
		return false
	}
	return true
}
