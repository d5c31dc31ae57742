package app

import (
	"database/sql"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/employee"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/payment"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/worksheet"

	"gorm.io/gorm"
)

const outboxTableDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id             uuid PRIMARY KEY,
	request_id     text,
	aggregate_type text NOT NULL,
	aggregate_id   text NOT NULL,
	event_type     text NOT NULL,
	topic          text NOT NULL,
	payload        jsonb NOT NULL,
	status         text NOT NULL DEFAULT 'pending',
	retry_count    int NOT NULL DEFAULT 0,
	last_error     text,
	next_retry_at  timestamptz,
	sent_at        timestamptz,
	created_at     timestamptz NOT NULL DEFAULT NOW()
)
`

func migrate(gormDB *gorm.DB, sqlDB *sql.DB) error {
	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&worksheet.WorkEntry{},
		&payment.Payment{},
	); err != nil {
		return err
	}

	_, err := sqlDB.Exec(outboxTableDDL)
	return err
}
