package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/employee"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/payment"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	summaryCacheKey = "dashboard:summary"
	summaryCacheTTL = 30 * time.Second

	recentPaymentsLimit = 5
)

// EmployeeStats is the roster slice the aggregator reads. Satisfied by
// the employee repository.
type EmployeeStats interface {
	CountByRole(ctx context.Context, role string) (int64, error)
	SumSalaryByRole(ctx context.Context, role string) (int64, error)
}

// PaymentStats is the ledger slice the aggregator reads. Satisfied by
// the payment repository.
type PaymentStats interface {
	SumPaid(ctx context.Context) (int64, error)
	FindRecentPaid(ctx context.Context, limit int) ([]payment.Payment, error)
}

type Service interface {
	Summarize(ctx context.Context) (Summary, error)
	InvalidateSummary(ctx context.Context) error
}

type service struct {
	employees EmployeeStats
	payments  PaymentStats
	rdb       *redis.Client
	logger    *zap.Logger
}

func NewService(
	employees EmployeeStats,
	payments PaymentStats,
	rdb *redis.Client,
	logger *zap.Logger,
) Service {
	return &service{
		employees: employees,
		payments:  payments,
		rdb:       rdb,
		logger:    logger.Named("dashboard.service"),
	}
}

func (s *service) Summarize(ctx context.Context) (Summary, error) {
	if cached, ok := s.readCache(ctx); ok {
		return cached, nil
	}

	totalEmployees, err := s.employees.CountByRole(ctx, employee.RoleEmployee)
	if err != nil {
		return Summary{}, err
	}

	totalSalary, err := s.employees.SumSalaryByRole(ctx, employee.RoleEmployee)
	if err != nil {
		return Summary{}, err
	}

	totalPaid, err := s.payments.SumPaid(ctx)
	if err != nil {
		return Summary{}, err
	}

	recent, err := s.payments.FindRecentPaid(ctx, recentPaymentsLimit)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		TotalEmployees:  totalEmployees,
		TotalSalary:     totalSalary,
		TotalPaidSalary: totalPaid,
		PendingSalary:   totalSalary - totalPaid,
		RecentPayments:  toRecentPayments(recent),
	}

	s.writeCache(ctx, summary)

	return summary, nil
}

func (s *service) InvalidateSummary(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.Del(ctx, summaryCacheKey).Err(); err != nil {
		s.logger.Warn("summary cache invalidation failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) readCache(ctx context.Context) (Summary, bool) {
	if s.rdb == nil {
		return Summary{}, false
	}

	raw, err := s.rdb.Get(ctx, summaryCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("summary cache read failed", zap.Error(err))
		}
		return Summary{}, false
	}

	var summary Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return Summary{}, false
	}
	return summary, true
}

func (s *service) writeCache(ctx context.Context, summary Summary) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, summaryCacheKey, raw, summaryCacheTTL).Err(); err != nil {
		s.logger.Warn("summary cache write failed", zap.Error(err))
	}
}

func toRecentPayments(payments []payment.Payment) []RecentPayment {
	res := make([]RecentPayment, len(payments))
	for i := range payments {
		p := payments[i]

		paidAt := ""
		if p.PaidAt != nil {
			paidAt = p.PaidAt.UTC().Format(time.RFC3339)
		}

		res[i] = RecentPayment{
			ID:     p.ID.String(),
			Email:  p.Email,
			Month:  p.Month,
			Year:   p.Year,
			Amount: p.Amount,
			PaidAt: paidAt,
		}
	}
	return res
}
