package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/madiharazzak/WEIC-Time-Tracking/models"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
)

func (s *Store) ListTimeEntries(ctx context.Context, filter store.TimeEntryFilter) ([]models.TimeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.TimeEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if filter.TeacherID != nil && e.TeacherID != *filter.TeacherID {
			continue
		}
		if filter.Date != nil && e.Date != *filter.Date {
			continue
		}
		if filter.Open != nil && e.Open() != *filter.Open {
			continue
		}
		if !store.MatchesPeriod(e.Date, filter.Month, filter.Year) {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CheckInTime.After(entries[j].CheckInTime)
	})
	return entries, nil
}

func (s *Store) GetOpenTimeEntry(ctx context.Context, teacherID uuid.UUID, date string) (*models.TimeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.TeacherID == teacherID && e.Date == date && e.CheckOutTime == nil {
			entry := e
			return &entry, nil
		}
	}
	return nil, store.ErrTimeEntryNotFound
}

func (s *Store) CreateTimeEntry(ctx context.Context, entry *models.TimeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	s.entries[entry.ID] = *entry
	return nil
}

func (s *Store) UpdateTimeEntry(ctx context.Context, id uuid.UUID, update store.TimeEntryUpdate) (*models.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, store.ErrTimeEntryNotFound
	}
	if update.CheckOutTime != nil {
		at := *update.CheckOutTime
		e.CheckOutTime = &at
	}
	if update.HoursWorked != nil {
		e.HoursWorked = *update.HoursWorked
	}
	if update.BillableHours != nil {
		e.BillableHours = *update.BillableHours
	}
	if update.Pay != nil {
		pay := *update.Pay
		e.Pay = &pay
	}
	e.UpdatedAt = time.Now()
	s.entries[id] = e
	return &e, nil
}
