package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date form stored on TimeEntry.Date.
const DateLayout = "2006-01-02"

type TimeEntry struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeacherID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"teacherId"`
	Teacher       *Teacher         `gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE" json:"-"`
	Date          string           `gorm:"size:10;not null;index" json:"date"`
	CheckInTime   time.Time        `gorm:"not null" json:"checkInTime"`
	CheckOutTime  *time.Time       `json:"checkOutTime"`
	HoursWorked   decimal.Decimal  `gorm:"type:numeric(10,2);default:0.00" json:"hoursWorked"`
	BillableHours decimal.Decimal  `gorm:"type:numeric(10,2);default:0.00" json:"billableHours"`
	Pay           *decimal.Decimal `gorm:"type:numeric(10,2)" json:"pay"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Open reports whether this entry is still an open session.
func (e *TimeEntry) Open() bool {
	return e.CheckOutTime == nil
}
