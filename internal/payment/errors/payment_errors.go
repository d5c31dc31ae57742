package paymenterrors

import (
	"net/http"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/apperror"
)

var (
	ErrDuplicatePayment = apperror.New(
		apperror.CodeConflict,
		"Payment already requested for this month",
		http.StatusConflict,
	)
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payment not found",
		http.StatusNotFound,
	)
	ErrPaymentAlreadyApproved = apperror.New(
		apperror.CodeInvalidState,
		"Payment is already approved",
		http.StatusConflict,
	)
	ErrGatewayNotSucceeded = apperror.New(
		apperror.CodePaymentGateway,
		"Payment gateway did not confirm the transaction",
		http.StatusBadGateway,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 or an English month name",
		http.StatusBadRequest,
	)
	ErrNonPositiveAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be positive",
		http.StatusBadRequest,
	)
	ErrMissingTransactionID = apperror.New(
		apperror.CodeInvalidInput,
		"transactionId is required",
		http.StatusBadRequest,
	)
)
