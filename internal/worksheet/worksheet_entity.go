package worksheet

import (
	"time"

	"github.com/google/uuid"
)

type WorkEntry struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email string    `gorm:"type:varchar(255);not null;index"`
	Task  string    `gorm:"type:text;not null"`
	Hours float64   `gorm:"type:numeric(6,2);not null;default:0"`
	Date  time.Time `gorm:"type:date;not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
