package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/events"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/gateway"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/messaging/kafka"
	paymenterrors "github.com/rifatalam240/Employee-Management-System-Server/internal/payment/errors"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/contextutil"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultPage     = 0
	DefaultPageSize = 5
)

type Service interface {
	Request(ctx context.Context, req RequestPaymentRequest) (PaymentResponse, error)
	Approve(ctx context.Context, id string, req ApprovePaymentRequest) (PaymentResponse, error)
	ListByEmail(ctx context.Context, email string, q ListPaymentsQuery) ([]PaymentResponse, response.PaginationMeta, error)
	ListUnpaid(ctx context.Context) ([]PaymentResponse, error)
	ListAll(ctx context.Context) ([]PaymentResponse, error)
}

// Options tunes approval behavior. When RequireGatewayConfirmation is
// set every approval must reconcile against the gateway, even without
// an explicit reference in the request.
type Options struct {
	RequireGatewayConfirmation bool
}

type service struct {
	db      *sql.DB
	repo    Repository
	outbox  kafka.OutboxRepository
	gateway gateway.Gateway
	opts    Options
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	gw gateway.Gateway,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payment.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		outbox:  outboxRepo,
		gateway: gw,
		opts:    opts,
		logger:  l,
	}
}

func (s *service) Request(
	ctx context.Context,
	req RequestPaymentRequest,
) (PaymentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !req.Month.Valid() {
		return PaymentResponse{}, paymenterrors.ErrInvalidMonth
	}
	if req.Amount <= 0 {
		return PaymentResponse{}, paymenterrors.ErrNonPositiveAmount
	}
	if req.TransactionID == "" {
		return PaymentResponse{}, paymenterrors.ErrMissingTransactionID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("request payment begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PaymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// A record of any status blocks the period; the unique index
	// catches the concurrent case.
	_, err = qtx.FindByPeriod(ctx, req.Email, int(req.Month), req.Year)
	if err == nil {
		return PaymentResponse{}, paymenterrors.ErrDuplicatePayment
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return PaymentResponse{}, err
	}

	p := &Payment{
		ID:            uuid.New(),
		Email:         req.Email,
		Month:         int(req.Month),
		Year:          req.Year,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		Paid:          false,
		RequestedAt:   time.Now().UTC(),
	}

	if err := qtx.Create(ctx, p); err != nil {
		return PaymentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PaymentResponse{}, err
	}

	s.logger.Info("payment requested",
		zap.String("request_id", rid),
		zap.String("payment_id", p.ID.String()),
		zap.String("email", p.Email),
		zap.Int("month", p.Month),
		zap.Int("year", p.Year),
	)

	return toResponse(p), nil
}

func (s *service) Approve(
	ctx context.Context,
	id string,
	req ApprovePaymentRequest,
) (PaymentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	paymentID, err := uuid.Parse(id)
	if err != nil {
		return PaymentResponse{}, paymenterrors.ErrPaymentNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve payment begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PaymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, paymentID)
	if err != nil {
		return PaymentResponse{}, mapRepositoryError(err)
	}
	if p.Paid {
		return PaymentResponse{}, paymenterrors.ErrPaymentAlreadyApproved
	}

	ref := req.GatewayRef
	if ref == "" && s.opts.RequireGatewayConfirmation {
		ref = p.TransactionID
		// No reference anywhere means the gateway can never report
		// success; the record must stay requested.
		if ref == "" {
			return PaymentResponse{}, paymenterrors.ErrGatewayNotSucceeded
		}
	}
	if ref != "" {
		succeeded, err := s.gateway.ConfirmSucceeded(ctx, ref)
		if err != nil {
			return PaymentResponse{}, err
		}
		if !succeeded {
			return PaymentResponse{}, paymenterrors.ErrGatewayNotSucceeded
		}
		p.TransactionID = ref
	}

	now := time.Now().UTC()
	p.Paid = true
	p.PaidAt = &now

	if err := qtx.Update(ctx, p); err != nil {
		return PaymentResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.createApprovedEvent(ctx, tx, rid, p); err != nil {
			return PaymentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PaymentResponse{}, err
	}

	s.logger.Info("payment approved",
		zap.String("request_id", rid),
		zap.String("payment_id", p.ID.String()),
		zap.String("email", p.Email),
		zap.Int64("amount", p.Amount),
	)

	return toResponse(p), nil
}

func (s *service) createApprovedEvent(
	ctx context.Context,
	tx *sql.Tx,
	requestID string,
	p *Payment,
) error {
	approvedBy := ""
	if principal, ok := contextutil.GetPrincipal(ctx); ok {
		approvedBy = principal.Email
	}

	event := events.PaymentApprovedEvent{
		EventType:     "payment.approved",
		PaymentID:     p.ID.String(),
		Email:         p.Email,
		Month:         p.Month,
		Year:          p.Year,
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		ApprovedBy:    approvedBy,
		OccurredAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: "payment",
		AggregateID:   p.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PaymentApprovedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) ListByEmail(
	ctx context.Context,
	email string,
	q ListPaymentsQuery,
) ([]PaymentResponse, response.PaginationMeta, error) {
	page := q.Page
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 0 {
		page = DefaultPage
	}

	payments, total, err := s.repo.ListByEmail(ctx, email, page, limit)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	return toListResponse(payments), response.NewPaginationMeta(total, page, limit), nil
}

func (s *service) ListUnpaid(ctx context.Context) ([]PaymentResponse, error) {
	payments, err := s.repo.ListUnpaid(ctx)
	if err != nil {
		return nil, err
	}
	return toListResponse(payments), nil
}

func (s *service) ListAll(ctx context.Context) ([]PaymentResponse, error) {
	payments, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toListResponse(payments), nil
}

func toResponse(p *Payment) PaymentResponse {
	var paidAt *string
	if p.PaidAt != nil {
		formatted := p.PaidAt.UTC().Format(time.RFC3339)
		paidAt = &formatted
	}

	return PaymentResponse{
		ID:            p.ID.String(),
		Email:         p.Email,
		Month:         p.Month,
		Year:          p.Year,
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		Paid:          p.Paid,
		RequestedAt:   p.RequestedAt.UTC().Format(time.RFC3339),
		PaidAt:        paidAt,
	}
}

func toListResponse(payments []Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = toResponse(&payments[i])
	}
	return res
}
