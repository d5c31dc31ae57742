package payment

import (
	"errors"
	"strings"

	paymenterrors "github.com/rifatalam240/Employee-Management-System-Server/internal/payment/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return paymenterrors.ErrPaymentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_payments_period" {
			return paymenterrors.ErrDuplicatePayment
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_payments_period") {
		return paymenterrors.ErrDuplicatePayment
	}

	return err
}
