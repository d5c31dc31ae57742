package payment

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, p *Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByPeriod(ctx context.Context, email string, month, year int) (*Payment, error)
	ListByEmail(ctx context.Context, email string, page, limit int) ([]Payment, int64, error)
	ListUnpaid(ctx context.Context) ([]Payment, error)
	ListAll(ctx context.Context) ([]Payment, error)
	Update(ctx context.Context, p *Payment) error

	SumPaid(ctx context.Context) (int64, error)
	FindRecentPaid(ctx context.Context, limit int) ([]Payment, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) WithTx(tx *sql.Tx) Repository {
	return r
}

func (r *gormRepository) Create(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	var p Payment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) FindByPeriod(
	ctx context.Context,
	email string,
	month, year int,
) (*Payment, error) {
	var p Payment
	err := r.db.WithContext(ctx).
		First(&p, "email = ? AND month = ? AND year = ?", email, month, year).
		Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) ListByEmail(
	ctx context.Context,
	email string,
	page, limit int,
) ([]Payment, int64, error) {
	q := r.db.WithContext(ctx).Model(&Payment{}).Where("email = ?", email)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []Payment
	err := q.Order("year ASC").Order("month ASC").
		Offset(page * limit).Limit(limit).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *gormRepository) ListUnpaid(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Where("paid = ?", false).
		Order("requested_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *gormRepository) ListAll(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Order("requested_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *gormRepository) Update(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *gormRepository) SumPaid(ctx context.Context) (int64, error) {
	var total sql.NullInt64
	err := r.db.WithContext(ctx).Model(&Payment{}).
		Where("paid = ?", true).
		Select("SUM(amount)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total.Int64, nil
}

func (r *gormRepository) FindRecentPaid(ctx context.Context, limit int) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Where("paid = ?", true).
		Order("paid_at DESC").
		Limit(limit).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
