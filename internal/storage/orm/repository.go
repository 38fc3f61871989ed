package orm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository implements storage.Repository on top of GORM's generated
// CRUD. E must be a GORM model whose primary key column is "id".
type Repository[E any] struct {
	db *gorm.DB
}

func NewRepository[E any](db *gorm.DB) *Repository[E] {
	return &Repository[E]{db: db}
}

// Save inserts when the primary key is zero and otherwise updates the row,
// falling back to an insert if no row had that key.
func (r *Repository[E]) Save(ctx context.Context, e E) (E, error) {
	if err := r.db.WithContext(ctx).Save(&e).Error; err != nil {
		return e, fmt.Errorf("Save: %w", err)
	}
	return e, nil
}

func (r *Repository[E]) FindAll(ctx context.Context) ([]E, error) {
	var out []E
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	if out == nil {
		out = make([]E, 0)
	}
	return out, nil
}

func (r *Repository[E]) FindByID(ctx context.Context, id int64) (E, bool, error) {
	var e E
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return e, false, nil
	}
	if err != nil {
		return e, false, fmt.Errorf("FindByID: %w", err)
	}
	return e, true, nil
}

func (r *Repository[E]) DeleteByID(ctx context.Context, id int64) error {
	var e E
	if err := r.db.WithContext(ctx).Delete(&e, id).Error; err != nil {
		return fmt.Errorf("DeleteByID: %w", err)
	}
	return nil
}
