package payment

import (
	"time"

	"github.com/google/uuid"
)

// Payment is one payroll ledger record. The unique index on
// (email, month, year) is the storage-level arbiter of the
// one-record-per-period rule; the service checks first for a friendly
// error and relies on the index to win races.
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_payments_period"`
	Month         int       `gorm:"not null;uniqueIndex:uq_payments_period"`
	Year          int       `gorm:"not null;uniqueIndex:uq_payments_period"`
	Amount        int64     `gorm:"type:bigint;not null"`
	TransactionID string    `gorm:"type:varchar(255)"`
	Paid          bool      `gorm:"not null;default:false"`
	RequestedAt   time.Time `gorm:"not null"`
	PaidAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
