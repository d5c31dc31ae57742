package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "github.com/rifatalam240/Employee-Management-System-Server/internal/employee/errors"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/events"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/messaging/kafka"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Register(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)
	GetByEmail(ctx context.Context, email string) (EmployeeResponse, error)
	FindRoleByEmail(ctx context.Context, email string) (string, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	ListVerified(ctx context.Context) ([]EmployeeResponse, error)
	ChangeRole(ctx context.Context, id, role string) (EmployeeResponse, error)
	SetVerification(ctx context.Context, id string, verified bool) (EmployeeResponse, error)
	Terminate(ctx context.Context, id string) (EmployeeResponse, error)
	UpdateSalary(ctx context.Context, id string, newSalary int64) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return NewServiceWithOutbox(db, repo, nil)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Register(
	ctx context.Context,
	req RegisterEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	role := req.Role
	if role == "" {
		role = RoleEmployee
	}
	if !IsValidRole(role) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}
	if req.Salary < 0 {
		return EmployeeResponse{}, employeeerrors.ErrNegativeSalary
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	_, err = qtx.FindByEmail(ctx, req.Email)
	if err == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return EmployeeResponse{}, err
	}

	emp := &Employee{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		Role:        role,
		Designation: req.Designation,
		BankAccount: req.BankAccount,
		PhotoURL:    req.PhotoURL,
		Salary:      req.Salary,
	}

	if err := qtx.Create(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.createRegisteredEvent(ctx, tx, rid, emp); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee registered",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID.String()),
		zap.String("role", emp.Role),
	)

	return mapToResponse(*emp), nil
}

func (s *service) createRegisteredEvent(
	ctx context.Context,
	tx *sql.Tx,
	requestID string,
	emp *Employee,
) error {
	event := events.EmployeeCreatedEvent{
		EventType:  "employee.created",
		EmployeeID: emp.ID.String(),
		Email:      emp.Email,
		Role:       emp.Role,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: "employee",
		AggregateID:   emp.ID.String(),
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetByEmail(
	ctx context.Context,
	email string,
) (EmployeeResponse, error) {
	emp, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) FindRoleByEmail(
	ctx context.Context,
	email string,
) (string, error) {
	emp, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", mapRepositoryError(err)
	}

	return emp.Role, nil
}

func (s *service) List(ctx context.Context) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(emps), nil
}

func (s *service) ListEmployees(ctx context.Context) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindByRole(ctx, RoleEmployee)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(emps), nil
}

func (s *service) ListVerified(ctx context.Context) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindVerified(ctx)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(emps), nil
}

func (s *service) ChangeRole(
	ctx context.Context,
	id, role string,
) (EmployeeResponse, error) {
	if !IsValidRole(role) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}

	return s.mutate(ctx, id, func(emp *Employee) error {
		emp.Role = role
		return nil
	})
}

func (s *service) SetVerification(
	ctx context.Context,
	id string,
	verified bool,
) (EmployeeResponse, error) {
	return s.mutate(ctx, id, func(emp *Employee) error {
		emp.IsVerified = verified
		return nil
	})
}

func (s *service) Terminate(
	ctx context.Context,
	id string,
) (EmployeeResponse, error) {
	return s.mutate(ctx, id, func(emp *Employee) error {
		emp.IsFired = true
		return nil
	})
}

// UpdateSalary enforces the monotonic salary rule: a salary may rise or
// stay, never fall.
func (s *service) UpdateSalary(
	ctx context.Context,
	id string,
	newSalary int64,
) (EmployeeResponse, error) {
	if newSalary < 0 {
		return EmployeeResponse{}, employeeerrors.ErrNegativeSalary
	}

	return s.mutate(ctx, id, func(emp *Employee) error {
		if newSalary < emp.Salary {
			return employeeerrors.ErrSalaryDecrease
		}
		emp.Salary = newSalary
		return nil
	})
}

// mutate runs a read-modify-write on one employee inside a transaction.
func (s *service) mutate(
	ctx context.Context,
	id string,
	apply func(emp *Employee) error,
) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := apply(emp); err != nil {
		return EmployeeResponse{}, err
	}

	if err := qtx.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          emp.ID.String(),
		Name:        emp.Name,
		Email:       emp.Email,
		Role:        emp.Role,
		Designation: emp.Designation,
		BankAccount: emp.BankAccount,
		PhotoURL:    emp.PhotoURL,
		Salary:      emp.Salary,
		IsVerified:  emp.IsVerified,
		IsFired:     emp.IsFired,
		CreatedAt:   emp.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, emp := range emps {
		res[i] = mapToResponse(emp)
	}
	return res
}
