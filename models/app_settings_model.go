package models

import (
	"time"

	"github.com/google/uuid"
)

// AppSettings is a singleton row; its presence means an admin PIN is configured.
type AppSettings struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PinHash   string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
