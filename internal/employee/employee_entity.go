package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleEmployee = "employee"
	RoleHR       = "hr"
	RoleAdmin    = "admin"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleHR, RoleAdmin:
		return true
	}
	return false
}

type Employee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employees_email"`
	Role        string    `gorm:"type:varchar(20);not null;default:'employee';index"`
	Designation string    `gorm:"type:varchar(120)"`
	BankAccount string    `gorm:"type:varchar(64)"`
	PhotoURL    string    `gorm:"type:text"`

	// Stored in the smallest currency unit to avoid floating point error.
	Salary int64 `gorm:"type:bigint;not null;default:0"`

	IsVerified bool `gorm:"not null;default:false"`
	IsFired    bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
