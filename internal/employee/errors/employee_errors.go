package employeeerrors

import (
	"net/http"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/apperror"
)

var (
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User already exists",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be one of employee, hr, admin",
		http.StatusBadRequest,
	)
	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary cannot be negative",
		http.StatusBadRequest,
	)
	ErrSalaryDecrease = apperror.New(
		apperror.CodePolicyViolation,
		"Salary cannot be decreased",
		http.StatusBadRequest,
	)
)
