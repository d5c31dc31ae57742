package payment_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/gateway"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/messaging/kafka"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/payment"
	paymenterrors "github.com/rifatalam240/Employee-Management-System-Server/internal/payment/errors"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePaymentRepository struct {
	withTxFn         func(tx *sql.Tx) payment.Repository
	createFn         func(ctx context.Context, p *payment.Payment) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	findByPeriodFn   func(ctx context.Context, email string, month, year int) (*payment.Payment, error)
	listByEmailFn    func(ctx context.Context, email string, page, limit int) ([]payment.Payment, int64, error)
	listUnpaidFn     func(ctx context.Context) ([]payment.Payment, error)
	listAllFn        func(ctx context.Context) ([]payment.Payment, error)
	updateFn         func(ctx context.Context, p *payment.Payment) error
	sumPaidFn        func(ctx context.Context) (int64, error)
	findRecentPaidFn func(ctx context.Context, limit int) ([]payment.Payment, error)
}

func (f *fakePaymentRepository) WithTx(tx *sql.Tx) payment.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentRepository) FindByPeriod(ctx context.Context, email string, month, year int) (*payment.Payment, error) {
	if f.findByPeriodFn != nil {
		return f.findByPeriodFn(ctx, email, month, year)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentRepository) ListByEmail(ctx context.Context, email string, page, limit int) ([]payment.Payment, int64, error) {
	if f.listByEmailFn != nil {
		return f.listByEmailFn(ctx, email, page, limit)
	}
	return nil, 0, nil
}

func (f *fakePaymentRepository) ListUnpaid(ctx context.Context) ([]payment.Payment, error) {
	if f.listUnpaidFn != nil {
		return f.listUnpaidFn(ctx)
	}
	return nil, nil
}

func (f *fakePaymentRepository) ListAll(ctx context.Context) ([]payment.Payment, error) {
	if f.listAllFn != nil {
		return f.listAllFn(ctx)
	}
	return nil, nil
}

func (f *fakePaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func (f *fakePaymentRepository) SumPaid(ctx context.Context) (int64, error) {
	if f.sumPaidFn != nil {
		return f.sumPaidFn(ctx)
	}
	return 0, nil
}

func (f *fakePaymentRepository) FindRecentPaid(ctx context.Context, limit int) ([]payment.Payment, error) {
	if f.findRecentPaidFn != nil {
		return f.findRecentPaidFn(ctx, limit)
	}
	return nil, nil
}

type fakeOutboxRepository struct {
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type fakeGateway struct {
	createIntentFn     func(ctx context.Context, amount int64, currency string) (gateway.Intent, error)
	confirmSucceededFn func(ctx context.Context, reference string) (bool, error)
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (gateway.Intent, error) {
	if f.createIntentFn != nil {
		return f.createIntentFn(ctx, amount, currency)
	}
	return gateway.Intent{}, nil
}

func (f *fakeGateway) ConfirmSucceeded(ctx context.Context, reference string) (bool, error) {
	if f.confirmSucceededFn != nil {
		return f.confirmSucceededFn(ctx, reference)
	}
	return true, nil
}

type paymentServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service payment.Service
	repo    *fakePaymentRepository
	outbox  *fakeOutboxRepository
	gateway *fakeGateway
}

func setupPaymentServiceTest(t *testing.T, opts payment.Options) *paymentServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePaymentRepository{}
	outbox := &fakeOutboxRepository{}
	gw := &fakeGateway{}
	svc := payment.NewService(db, repo, outbox, gw, opts)

	return &paymentServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		outbox:  outbox,
		gateway: gw,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestPaymentService_Request(t *testing.T) {
	ctx := context.Background()

	t.Run("first request succeeds", func(t *testing.T) {
		deps := setupPaymentServiceTest(t, payment.Options{})
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		var created *payment.Payment
		deps.repo.createFn = func(ctx context.Context, p *payment.Payment) error {
			created = p
			return nil
		}

		resp, err := deps.service.Request(ctx, payment.RequestPaymentRequest{
			Email:         "a@x.com",
			Month:         3,
			Year:          2024,
			Amount:        500,
			TransactionID: "t1",
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.False(t, created.Paid)
		assert.Equal(t, "a@x.com", resp.Email)
		assert.Equal(t, 3, resp.Month)
		assert.Equal(t, 2024, resp.Year)
		assert.False(t, resp.Paid)
		assert.Nil(t, resp.PaidAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("repeat for same period conflicts regardless of amount and tx ref", func(t *testing.T) {
		deps := setupPaymentServiceTest(t, payment.Options{})
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByPeriodFn = func(ctx context.Context, email string, month, year int) (*payment.Payment, error) {
			return &payment.Payment{ID: uuid.New(), Email: email, Month: month, Year: year, Amount: 500}, nil
		}

		_, err := deps.service.Request(ctx, payment.RequestPaymentRequest{
			Email:         "a@x.com",
			Month:         3,
			Year:          2024,
			Amount:        999,
			TransactionID: "t2",
		})

		assert.ErrorIs(t, err, paymenterrors.ErrDuplicatePayment)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("requested record of any status blocks the period", func(t *testing.T) {
		deps := setupPaymentServiceTest(t, payment.Options{})
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByPeriodFn = func(ctx context.Context, email string, month, year int) (*payment.Payment, error) {
			return &payment.Payment{ID: uuid.New(), Email: email, Month: month, Year: year, Paid: false}, nil
		}

		_, err := deps.service.Request(ctx, payment.RequestPaymentRequest{
			Email:         "a@x.com",
			Month:         3,
			Year:          2024,
			Amount:        500,
			TransactionID: "t3",
		})

		assert.ErrorIs(t, err, paymenterrors.ErrDuplicatePayment)
	})

	t.Run("invalid month rejected", func(t *testing.T) {
		deps := setupPaymentServiceTest(t, payment.Options{})
		defer deps.db.Close()

		_, err := deps.service.Request(ctx, payment.RequestPaymentRequest{
			Email:  "a@x.com",
			Month:  13,
			Year:   2024,
			Amount: 500,
		})

		assert.ErrorIs(t, err, paymenterrors.ErrInvalidMonth)
	})

	t.Run("non positive amount rejected", func(t *testing.T) {
		deps := setupPaymentServiceTest(t, payment.Options{})
		defer deps.db.Close()

		_, err := deps.service.Request(ctx, payment.RequestPaymentRequest{
			Email:  "a@x.com",
			Month:  3,
			Year:   2024,
			Amount: 0,
		})

		assert.ErrorIs(t, err, paymenterrors.ErrNonPositiveAmount)
	})

	t.Run("missing transaction reference rejected", func(t *testing.T) {
		deps := setupPaymentServiceTest(t, payment.Options{})
		defer deps.db.Close()

		createCalled := false
		deps.repo.createFn = func(ctx context.Context, p *payment.Payment) error {
			createCalled = true
			return nil
		}

		_, err := deps.service.Request(ctx, payment.RequestPaymentRequest{
			Email:  "a@x.com",
			Month:  3,
			Year:   2024,
			Amount: 500,
		})

		assert.ErrorIs(t, err, paymenterrors.ErrMissingTransactionID)
		assert.False(t, createCalled)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPaymentService_Approve(t *testing.T) {
	ctx := contextutil.WithPrincipal(context.Background(), contextutil.Principal{
		Email: "admin@x.com",
		Role:  "admin",
	})
	paymentID := uuid.New()

	t.Run("approve success writes outbox event", func(t *testing.T) {
		deps := setupPaymentServiceTest(t, payment.Options{})
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
			return &payment.Payment{
				ID:          id,
				Email:       "a@x.com",
				Month:       3,
				Year:        2024,
				Amount:      500,
				RequestedAt: time.Now().UTC(),
			}, nil
		}

		var updated *payment.Payment
		deps.repo.updateFn = func(ctx context.Context, p *payment.Payment) error {
			updated = p
			return nil
		}

		var outboxEvent *kafka.OutboxEvent
		deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			outboxEvent = &event
			return nil
		}

		resp, err := deps.service.Approve(ctx, paymentID.String(), payment.ApprovePaymentRequest{})

		assert.NoError(t, err)
		assert.True(t, resp.Paid)
		assert.NotNil(t, resp.PaidAt)
		assert.NotNil(t, updated)
		assert.True(t, updated.Paid)
		assert.NotNil(t, updated.PaidAt)
		assert.NotNil(t, outboxEvent)
		assert.Equal(t, "payment.approved", outboxEvent.EventType)
		assert.Equal(t, paymentID.String(), outboxEvent.AggregateID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already approved errors", func(t *testing.T) {
		deps := setupPaymentServiceTest(t, payment.Options{})
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		now := time.Now().UTC()
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
			return &payment.Payment{ID: id, Email: "a@x.com", Paid: true, PaidAt: &now}, nil
		}

		_, err := deps.service.Approve(ctx, paymentID.String(), payment.ApprovePaymentRequest{})

		assert.ErrorIs(t, err, paymenterrors.ErrPaymentAlreadyApproved)
	})

	t.Run("unknown id errors not found", func(t *testing.T) {
		deps := setupPaymentServiceTest(t, payment.Options{})
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Approve(ctx, paymentID.String(), payment.ApprovePaymentRequest{})

		assert.ErrorIs(t, err, paymenterrors.ErrPaymentNotFound)
	})

	t.Run("malformed id errors not found without touching the store", func(t *testing.T) {
		deps := setupPaymentServiceTest(t, payment.Options{})
		defer deps.db.Close()

		_, err := deps.service.Approve(ctx, "not-a-uuid", payment.ApprovePaymentRequest{})

		assert.ErrorIs(t, err, paymenterrors.ErrPaymentNotFound)
	})

	t.Run("gateway failure leaves record requested", func(t *testing.T) {
		deps := setupPaymentServiceTest(t, payment.Options{})
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
			return &payment.Payment{ID: id, Email: "a@x.com", Amount: 500}, nil
		}
		deps.gateway.confirmSucceededFn = func(ctx context.Context, reference string) (bool, error) {
			assert.Equal(t, "pi_123", reference)
			return false, nil
		}

		updateCalled := false
		deps.repo.updateFn = func(ctx context.Context, p *payment.Payment) error {
			updateCalled = true
			return nil
		}

		_, err := deps.service.Approve(ctx, paymentID.String(), payment.ApprovePaymentRequest{GatewayRef: "pi_123"})

		assert.ErrorIs(t, err, paymenterrors.ErrGatewayNotSucceeded)
		assert.False(t, updateCalled)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("required confirmation with no reference leaves record requested", func(t *testing.T) {
		deps := setupPaymentServiceTest(t, payment.Options{RequireGatewayConfirmation: true})
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
			return &payment.Payment{ID: id, Email: "a@x.com", Amount: 500}, nil
		}

		gatewayCalled := false
		deps.gateway.confirmSucceededFn = func(ctx context.Context, reference string) (bool, error) {
			gatewayCalled = true
			return true, nil
		}

		updateCalled := false
		deps.repo.updateFn = func(ctx context.Context, p *payment.Payment) error {
			updateCalled = true
			return nil
		}

		_, err := deps.service.Approve(ctx, paymentID.String(), payment.ApprovePaymentRequest{})

		assert.ErrorIs(t, err, paymenterrors.ErrGatewayNotSucceeded)
		assert.False(t, gatewayCalled)
		assert.False(t, updateCalled)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("required confirmation uses stored transaction reference", func(t *testing.T) {
		deps := setupPaymentServiceTest(t, payment.Options{RequireGatewayConfirmation: true})
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
			return &payment.Payment{ID: id, Email: "a@x.com", Amount: 500, TransactionID: "pi_stored"}, nil
		}

		var confirmedRef string
		deps.gateway.confirmSucceededFn = func(ctx context.Context, reference string) (bool, error) {
			confirmedRef = reference
			return true, nil
		}

		resp, err := deps.service.Approve(ctx, paymentID.String(), payment.ApprovePaymentRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "pi_stored", confirmedRef)
		assert.True(t, resp.Paid)
	})
}

func TestPaymentService_ListByEmail(t *testing.T) {
	ctx := context.Background()

	deps := setupPaymentServiceTest(t, payment.Options{})
	defer deps.db.Close()

	var gotPage, gotLimit int
	deps.repo.listByEmailFn = func(ctx context.Context, email string, page, limit int) ([]payment.Payment, int64, error) {
		gotPage, gotLimit = page, limit
		return []payment.Payment{
			{ID: uuid.New(), Email: email, Month: 1, Year: 2024, Amount: 100},
			{ID: uuid.New(), Email: email, Month: 2, Year: 2024, Amount: 100},
		}, 7, nil
	}

	resp, meta, err := deps.service.ListByEmail(ctx, "a@x.com", payment.ListPaymentsQuery{})

	assert.NoError(t, err)
	assert.Equal(t, 0, gotPage)
	assert.Equal(t, payment.DefaultPageSize, gotLimit)
	assert.Len(t, resp, 2)
	assert.Equal(t, int64(7), meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}
