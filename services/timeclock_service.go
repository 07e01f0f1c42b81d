package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/madiharazzak/WEIC-Time-Tracking/models"
	"github.com/madiharazzak/WEIC-Time-Tracking/payroll"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
	"github.com/madiharazzak/WEIC-Time-Tracking/websocket"
)

var (
	ErrAlreadyCheckedIn = errors.New("teacher is already checked in")
	ErrNotCheckedIn     = errors.New("teacher is not checked in")
)

// TimeclockService owns the check-in/check-out lifecycle. Every operation for
// a given teacher runs under that teacher's mutex, so the read-modify-write
// sequences cannot interleave and at most one session stays open per teacher.
type TimeclockService struct {
	store store.Store
	loc   *time.Location

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewTimeclockService(st store.Store, loc *time.Location) *TimeclockService {
	if loc == nil {
		loc = time.Local
	}
	return &TimeclockService{
		store: st,
		loc:   loc,
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *TimeclockService) teacherLock(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

// CheckIn opens a session: creates today's open time entry and flips the
// teacher's status. Conflict if the teacher is already checked in.
func (s *TimeclockService) CheckIn(ctx context.Context, teacherID uuid.UUID) (*models.Teacher, error) {
	lock := s.teacherLock(teacherID)
	lock.Lock()
	defer lock.Unlock()

	teacher, err := s.store.GetTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if teacher.IsCheckedIn {
		return nil, ErrAlreadyCheckedIn
	}

	now := time.Now().In(s.loc)
	entry := &models.TimeEntry{
		TeacherID:   teacherID,
		Date:        now.Format(models.DateLayout),
		CheckInTime: now,
	}
	if err := s.store.CreateTimeEntry(ctx, entry); err != nil {
		return nil, err
	}

	checkedIn := true
	teacher, err = s.store.UpdateTeacher(ctx, teacherID, store.TeacherUpdate{
		IsCheckedIn:        &checkedIn,
		CurrentCheckInTime: &now,
	})
	if err != nil {
		return nil, err
	}

	websocket.BroadcastStatus(websocket.StatusEvent{
		Type:        "checkin",
		TeacherID:   teacher.ID,
		TeacherName: teacher.Name,
		At:          now,
	})
	return teacher, nil
}

// CheckOut closes the session: derives hours/billable/pay from the elapsed
// time and finalizes today's open entry. Conflict if not checked in. The
// teacher's status is cleared before the entry is finalized; there is no
// rollback of the status change if the entry write fails.
func (s *TimeclockService) CheckOut(ctx context.Context, teacherID uuid.UUID) (*models.Teacher, error) {
	lock := s.teacherLock(teacherID)
	lock.Lock()
	defer lock.Unlock()

	teacher, err := s.store.GetTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if !teacher.IsCheckedIn || teacher.CurrentCheckInTime == nil {
		return nil, ErrNotCheckedIn
	}

	now := time.Now().In(s.loc)
	hoursWorked, billableHours, pay := payroll.Compute(
		*teacher.CurrentCheckInTime, now, teacher.HourlyRate, teacher.MaxBillableHours)

	checkedIn := false
	teacher, err = s.store.UpdateTeacher(ctx, teacherID, store.TeacherUpdate{
		IsCheckedIn:      &checkedIn,
		ClearCheckInTime: true,
	})
	if err != nil {
		return nil, err
	}

	// The open entry is matched on today's date. A session left open across
	// midnight has yesterday's date: the checkout then only clears the
	// teacher and no entry is finalized.
	today := now.Format(models.DateLayout)
	entry, err := s.store.GetOpenTimeEntry(ctx, teacherID, today)
	switch {
	case errors.Is(err, store.ErrTimeEntryNotFound):
		log.Printf("⚠️ No open time entry for teacher %s on %s, checkout recorded without finalizing an entry", teacherID, today)
	case err != nil:
		return nil, err
	default:
		if _, err := s.store.UpdateTimeEntry(ctx, entry.ID, store.TimeEntryUpdate{
			CheckOutTime:  &now,
			HoursWorked:   &hoursWorked,
			BillableHours: &billableHours,
			Pay:           &pay,
		}); err != nil {
			return nil, err
		}
	}

	websocket.BroadcastStatus(websocket.StatusEvent{
		Type:        "checkout",
		TeacherID:   teacher.ID,
		TeacherName: teacher.Name,
		At:          now,
	})
	return teacher, nil
}

// Location is the timezone entry dates are derived in.
func (s *TimeclockService) Location() *time.Location {
	return s.loc
}
