package worksheet

import (
	"context"
	"errors"
	"time"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/apperror"
	worksheeterrors "github.com/rifatalam240/Employee-Management-System-Server/internal/worksheet/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeDirectory answers whether an email belongs to a registered
// employee. Satisfied by the employee service.
type EmployeeDirectory interface {
	FindRoleByEmail(ctx context.Context, email string) (string, error)
}

type Service interface {
	Submit(ctx context.Context, req SubmitWorkEntryRequest) (WorkEntryResponse, error)
	List(ctx context.Context, filter ListWorkEntriesFilter) ([]WorkEntryResponse, error)
	Update(ctx context.Context, id string, req UpdateWorkEntryRequest) (WorkEntryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	directory EmployeeDirectory
	logger    *zap.Logger
}

func NewService(repo Repository, directory EmployeeDirectory, logger *zap.Logger) Service {
	return &service{
		repo:      repo,
		directory: directory,
		logger:    logger.Named("worksheet.service"),
	}
}

const dateLayout = "2006-01-02"

func parseDate(raw string) (time.Time, error) {
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, worksheeterrors.ErrInvalidDateFormat
	}
	return d, nil
}

func toResponse(entry *WorkEntry) WorkEntryResponse {
	return WorkEntryResponse{
		ID:    entry.ID.String(),
		Email: entry.Email,
		Task:  entry.Task,
		Hours: entry.Hours,
		Date:  entry.Date.Format(dateLayout),
	}
}

func (s *service) Submit(ctx context.Context, req SubmitWorkEntryRequest) (WorkEntryResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return WorkEntryResponse{}, err
	}

	if _, err := s.directory.FindRoleByEmail(ctx, req.Email); err != nil {
		var appErr *apperror.AppError
		if errors.Is(err, gorm.ErrRecordNotFound) ||
			(errors.As(err, &appErr) && appErr.Code == apperror.CodeNotFound) {
			return WorkEntryResponse{}, worksheeterrors.ErrUnknownEmployee
		}
		return WorkEntryResponse{}, mapError(err)
	}

	entry := &WorkEntry{
		Email: req.Email,
		Task:  req.Task,
		Hours: req.Hours,
		Date:  date,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return WorkEntryResponse{}, mapError(err)
	}

	s.logger.Info("work entry submitted",
		zap.String("email", entry.Email),
		zap.Float64("hours", entry.Hours),
	)

	return toResponse(entry), nil
}

func (s *service) List(ctx context.Context, filter ListWorkEntriesFilter) ([]WorkEntryResponse, error) {
	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}

	resp := make([]WorkEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, toResponse(&entries[i]))
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateWorkEntryRequest) (WorkEntryResponse, error) {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return WorkEntryResponse{}, worksheeterrors.ErrWorkEntryNotFound
	}

	entry, err := s.repo.FindByID(ctx, entryID)
	if err != nil {
		return WorkEntryResponse{}, mapError(err)
	}

	if req.Task != "" {
		entry.Task = req.Task
	}
	if req.Hours != nil {
		entry.Hours = *req.Hours
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return WorkEntryResponse{}, err
		}
		entry.Date = date
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return WorkEntryResponse{}, mapError(err)
	}

	return toResponse(entry), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return worksheeterrors.ErrWorkEntryNotFound
	}
	if err := s.repo.Delete(ctx, entryID); err != nil {
		return mapError(err)
	}
	return nil
}
