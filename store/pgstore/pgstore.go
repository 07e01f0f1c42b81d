// Package pgstore is the durable store backend over Postgres via GORM.
package pgstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/madiharazzak/WEIC-Time-Tracking/models"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
)

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetSettings(ctx context.Context) (*models.AppSettings, error) {
	var settings models.AppSettings
	err := s.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *Store) CreateSettings(ctx context.Context, settings *models.AppSettings) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.AppSettings{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return store.ErrSettingsExists
		}
		return tx.Create(settings).Error
	})
}

func (s *Store) ValidatePin(ctx context.Context, candidate string) (bool, error) {
	settings, err := s.GetSettings(ctx)
	if errors.Is(err, store.ErrSettingsNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return store.VerifyPin(settings.PinHash, candidate), nil
}

func (s *Store) Reset(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.TimeEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Teacher{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.AppSettings{}).Error
	})
}
