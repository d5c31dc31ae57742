package worksheet

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, entry *WorkEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*WorkEntry, error)
	List(ctx context.Context, filter ListWorkEntriesFilter) ([]WorkEntry, error)
	Update(ctx context.Context, entry *WorkEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
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

func (r *gormRepository) Create(ctx context.Context, entry *WorkEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*WorkEntry, error) {
	var entry WorkEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *gormRepository) List(ctx context.Context, filter ListWorkEntriesFilter) ([]WorkEntry, error) {
	q := r.db.WithContext(ctx).Model(&WorkEntry{})

	if filter.Email != "" {
		q = q.Where("email = ?", filter.Email)
	}
	if filter.Month != 0 && filter.Year != 0 {
		from := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("date >= ? AND date < ?", from, from.AddDate(0, 1, 0))
	}

	var entries []WorkEntry
	if err := q.Order("date DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *gormRepository) Update(ctx context.Context, entry *WorkEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&WorkEntry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
