package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/madiharazzak/WEIC-Time-Tracking/models"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
)

func (s *Store) ListTimeEntries(ctx context.Context, filter store.TimeEntryFilter) ([]models.TimeEntry, error) {
	q := s.db.WithContext(ctx).Model(&models.TimeEntry{})
	if filter.TeacherID != nil {
		q = q.Where("teacher_id = ?", *filter.TeacherID)
	}
	if filter.Date != nil {
		q = q.Where("date = ?", *filter.Date)
	}
	if filter.Open != nil {
		if *filter.Open {
			q = q.Where("check_out_time IS NULL")
		} else {
			q = q.Where("check_out_time IS NOT NULL")
		}
	}
	if filter.Month != nil {
		q = q.Where("substring(date from 6 for 2) = ?", fmt.Sprintf("%02d", *filter.Month))
	}
	if filter.Year != nil {
		q = q.Where("substring(date from 1 for 4) = ?", fmt.Sprintf("%04d", *filter.Year))
	}

	var entries []models.TimeEntry
	if err := q.Order("check_in_time desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) GetOpenTimeEntry(ctx context.Context, teacherID uuid.UUID, date string) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := s.db.WithContext(ctx).
		Where("teacher_id = ? AND date = ? AND check_out_time IS NULL", teacherID, date).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrTimeEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Store) CreateTimeEntry(ctx context.Context, entry *models.TimeEntry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *Store) UpdateTimeEntry(ctx context.Context, id uuid.UUID, update store.TimeEntryUpdate) (*models.TimeEntry, error) {
	updates := map[string]interface{}{}
	if update.CheckOutTime != nil {
		updates["check_out_time"] = *update.CheckOutTime
	}
	if update.HoursWorked != nil {
		updates["hours_worked"] = *update.HoursWorked
	}
	if update.BillableHours != nil {
		updates["billable_hours"] = *update.BillableHours
	}
	if update.Pay != nil {
		updates["pay"] = *update.Pay
	}

	var entry models.TimeEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entry, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrTimeEntryNotFound
			}
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&entry).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&entry, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
