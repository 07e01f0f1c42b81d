package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/madiharazzak/WEIC-Time-Tracking/models"
)

// Connect opens the Postgres connection backing the durable store.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	fmt.Println("✅ Database connected successfully")
	return db, nil
}

// Migrate creates the schema. The partial unique index keeps at most one open
// time entry per teacher even under concurrent writers.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Teacher{},
		&models.TimeEntry{},
		&models.AppSettings{},
	); err != nil {
		return err
	}

	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_time_entries_open_session
		ON time_entries (teacher_id) WHERE check_out_time IS NULL`).Error
}
