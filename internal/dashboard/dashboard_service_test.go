package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/dashboard"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/payment"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeEmployeeStats struct {
	countByRoleFn     func(ctx context.Context, role string) (int64, error)
	sumSalaryByRoleFn func(ctx context.Context, role string) (int64, error)
}

func (f *fakeEmployeeStats) CountByRole(ctx context.Context, role string) (int64, error) {
	if f.countByRoleFn != nil {
		return f.countByRoleFn(ctx, role)
	}
	return 0, nil
}

func (f *fakeEmployeeStats) SumSalaryByRole(ctx context.Context, role string) (int64, error) {
	if f.sumSalaryByRoleFn != nil {
		return f.sumSalaryByRoleFn(ctx, role)
	}
	return 0, nil
}

type fakePaymentStats struct {
	sumPaidFn        func(ctx context.Context) (int64, error)
	findRecentPaidFn func(ctx context.Context, limit int) ([]payment.Payment, error)
}

func (f *fakePaymentStats) SumPaid(ctx context.Context) (int64, error) {
	if f.sumPaidFn != nil {
		return f.sumPaidFn(ctx)
	}
	return 0, nil
}

func (f *fakePaymentStats) FindRecentPaid(ctx context.Context, limit int) ([]payment.Payment, error) {
	if f.findRecentPaidFn != nil {
		return f.findRecentPaidFn(ctx, limit)
	}
	return nil, nil
}

func TestDashboardService_Summarize(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store yields zero values", func(t *testing.T) {
		svc := dashboard.NewService(&fakeEmployeeStats{}, &fakePaymentStats{}, nil, zap.NewNop())

		summary, err := svc.Summarize(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), summary.TotalEmployees)
		assert.Equal(t, int64(0), summary.TotalSalary)
		assert.Equal(t, int64(0), summary.TotalPaidSalary)
		assert.Equal(t, int64(0), summary.PendingSalary)
		assert.Empty(t, summary.RecentPayments)
	})

	t.Run("pending may go negative when disbursed exceeds obligation", func(t *testing.T) {
		employees := &fakeEmployeeStats{
			countByRoleFn:     func(ctx context.Context, role string) (int64, error) { return 3, nil },
			sumSalaryByRoleFn: func(ctx context.Context, role string) (int64, error) { return 3000, nil },
		}
		payments := &fakePaymentStats{
			sumPaidFn: func(ctx context.Context) (int64, error) { return 4500, nil },
		}

		svc := dashboard.NewService(employees, payments, nil, zap.NewNop())

		summary, err := svc.Summarize(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), summary.TotalEmployees)
		assert.Equal(t, int64(3000), summary.TotalSalary)
		assert.Equal(t, int64(4500), summary.TotalPaidSalary)
		assert.Equal(t, int64(-1500), summary.PendingSalary)
	})

	t.Run("recent payments carry approval timestamps", func(t *testing.T) {
		paidAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
		payments := &fakePaymentStats{
			findRecentPaidFn: func(ctx context.Context, limit int) ([]payment.Payment, error) {
				assert.Equal(t, 5, limit)
				return []payment.Payment{
					{ID: uuid.New(), Email: "a@x.com", Month: 3, Year: 2024, Amount: 500, Paid: true, PaidAt: &paidAt},
				}, nil
			},
		}

		svc := dashboard.NewService(&fakeEmployeeStats{}, payments, nil, zap.NewNop())

		summary, err := svc.Summarize(ctx)

		assert.NoError(t, err)
		assert.Len(t, summary.RecentPayments, 1)
		assert.Equal(t, "a@x.com", summary.RecentPayments[0].Email)
		assert.Equal(t, "2024-03-15T12:00:00Z", summary.RecentPayments[0].PaidAt)
	})
}

func TestDashboardService_SummaryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the store", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("dashboard:summary").SetVal(`{"total_employees":9}`)

		storeTouched := false
		employees := &fakeEmployeeStats{
			countByRoleFn: func(ctx context.Context, role string) (int64, error) {
				storeTouched = true
				return 0, nil
			},
		}

		svc := dashboard.NewService(employees, &fakePaymentStats{}, rdb, zap.NewNop())

		summary, err := svc.Summarize(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(9), summary.TotalEmployees)
		assert.False(t, storeTouched)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalidate drops the cache key", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel("dashboard:summary").SetVal(1)

		svc := dashboard.NewService(&fakeEmployeeStats{}, &fakePaymentStats{}, rdb, zap.NewNop())

		assert.NoError(t, svc.InvalidateSummary(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
