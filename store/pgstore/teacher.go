package pgstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/madiharazzak/WEIC-Time-Tracking/models"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
)

func (s *Store) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := s.db.WithContext(ctx).Order("name asc").Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

func (s *Store) GetTeacher(ctx context.Context, id uuid.UUID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := s.db.WithContext(ctx).First(&teacher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrTeacherNotFound
	}
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (s *Store) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	teacher.IsCheckedIn = false
	teacher.CurrentCheckInTime = nil
	return s.db.WithContext(ctx).Create(teacher).Error
}

func (s *Store) UpdateTeacher(ctx context.Context, id uuid.UUID, update store.TeacherUpdate) (*models.Teacher, error) {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.HourlyRate != nil {
		updates["hourly_rate"] = *update.HourlyRate
	}
	if update.MaxBillableHours != nil {
		updates["max_billable_hours"] = *update.MaxBillableHours
	}
	if update.PhotoURL != nil {
		updates["photo_url"] = *update.PhotoURL
	}
	if update.IsCheckedIn != nil {
		updates["is_checked_in"] = *update.IsCheckedIn
	}
	if update.ClearCheckInTime {
		updates["current_check_in_time"] = nil
	} else if update.CurrentCheckInTime != nil {
		updates["current_check_in_time"] = *update.CurrentCheckInTime
	}

	var teacher models.Teacher
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&teacher, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrTeacherNotFound
			}
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&teacher).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&teacher, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (s *Store) DeleteTeacher(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var teacher models.Teacher
		if err := tx.First(&teacher, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrTeacherNotFound
			}
			return err
		}
		if err := tx.Where("teacher_id = ?", id).Delete(&models.TimeEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&teacher).Error
	})
}
