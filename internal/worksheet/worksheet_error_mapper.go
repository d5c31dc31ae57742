package worksheet

import (
	"errors"

	worksheeterrors "github.com/rifatalam240/Employee-Management-System-Server/internal/worksheet/errors"

	"gorm.io/gorm"
)

func mapError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return worksheeterrors.ErrWorkEntryNotFound
	}
	return err
}
