// Package memstore is the in-memory reference backend: maps keyed by id
// behind a single RWMutex. Values are copied on the way in and out.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/madiharazzak/WEIC-Time-Tracking/models"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
)

type Store struct {
	mu       sync.RWMutex
	teachers map[uuid.UUID]models.Teacher
	entries  map[uuid.UUID]models.TimeEntry
	settings *models.AppSettings
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		teachers: make(map[uuid.UUID]models.Teacher),
		entries:  make(map[uuid.UUID]models.TimeEntry),
	}
}

func (s *Store) GetSettings(ctx context.Context) (*models.AppSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings == nil {
		return nil, store.ErrSettingsNotFound
	}
	settings := *s.settings
	return &settings, nil
}

func (s *Store) CreateSettings(ctx context.Context, settings *models.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings != nil {
		return store.ErrSettingsExists
	}
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = time.Now()
	}
	saved := *settings
	s.settings = &saved
	return nil
}

func (s *Store) ValidatePin(ctx context.Context, candidate string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings == nil {
		return false, nil
	}
	return store.VerifyPin(s.settings.PinHash, candidate), nil
}

func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teachers = make(map[uuid.UUID]models.Teacher)
	s.entries = make(map[uuid.UUID]models.TimeEntry)
	s.settings = nil
	return nil
}
