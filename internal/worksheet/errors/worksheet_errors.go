package worksheeterrors

import (
	"net/http"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/apperror"
)

var (
	ErrWorkEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Work entry not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrUnknownEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"work entry must belong to a registered employee",
		http.StatusBadRequest,
	)
)
