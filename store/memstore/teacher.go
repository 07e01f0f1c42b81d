package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/madiharazzak/WEIC-Time-Tracking/models"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
)

func (s *Store) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teachers := make([]models.Teacher, 0, len(s.teachers))
	for _, t := range s.teachers {
		teachers = append(teachers, t)
	}
	sort.Slice(teachers, func(i, j int) bool {
		return teachers[i].Name < teachers[j].Name
	})
	return teachers, nil
}

func (s *Store) GetTeacher(ctx context.Context, id uuid.UUID) (*models.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teachers[id]
	if !ok {
		return nil, store.ErrTeacherNotFound
	}
	return &t, nil
}

func (s *Store) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if teacher.ID == uuid.Nil {
		teacher.ID = uuid.New()
	}
	now := time.Now()
	teacher.IsCheckedIn = false
	teacher.CurrentCheckInTime = nil
	teacher.CreatedAt = now
	teacher.UpdatedAt = now
	s.teachers[teacher.ID] = *teacher
	return nil
}

func (s *Store) UpdateTeacher(ctx context.Context, id uuid.UUID, update store.TeacherUpdate) (*models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teachers[id]
	if !ok {
		return nil, store.ErrTeacherNotFound
	}
	if update.Name != nil {
		t.Name = *update.Name
	}
	if update.HourlyRate != nil {
		t.HourlyRate = *update.HourlyRate
	}
	if update.MaxBillableHours != nil {
		t.MaxBillableHours = *update.MaxBillableHours
	}
	if update.PhotoURL != nil {
		url := *update.PhotoURL
		t.PhotoURL = &url
	}
	if update.IsCheckedIn != nil {
		t.IsCheckedIn = *update.IsCheckedIn
	}
	if update.ClearCheckInTime {
		t.CurrentCheckInTime = nil
	} else if update.CurrentCheckInTime != nil {
		at := *update.CurrentCheckInTime
		t.CurrentCheckInTime = &at
	}
	t.UpdatedAt = time.Now()
	s.teachers[id] = t
	return &t, nil
}

func (s *Store) DeleteTeacher(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teachers[id]; !ok {
		return store.ErrTeacherNotFound
	}
	delete(s.teachers, id)
	for entryID, entry := range s.entries {
		if entry.TeacherID == id {
			delete(s.entries, entryID)
		}
	}
	return nil
}
