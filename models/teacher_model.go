package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Teacher struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name               string          `gorm:"size:255;not null" json:"name"`
	HourlyRate         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"hourlyRate"`
	MaxBillableHours   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"maxBillableHours"`
	PhotoURL           *string         `gorm:"size:255" json:"photoUrl"`
	IsCheckedIn        bool            `gorm:"not null;default:false" json:"isCheckedIn"`
	CurrentCheckInTime *time.Time      `json:"currentCheckInTime"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
