// Package service applies the existence rules shared by every resource:
// reads, updates and deletes of a missing id fail with a NotFoundError,
// and updates only ever copy the mutable fields onto the stored record.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aanand-mishra/academic-api/internal/entity"
	"github.com/aanand-mishra/academic-api/internal/storage"
	"github.com/aanand-mishra/academic-api/internal/types"
)

// ErrNotFound is matched by every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that no record of Kind has the given ID.
type NotFoundError struct {
	Kind types.Kind
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Service orchestrates repository calls for one resource kind.
type Service[E entity.Entity[E]] struct {
	kind types.Kind
	repo storage.Repository[E]
}

func New[E entity.Entity[E]](kind types.Kind, repo storage.Repository[E]) *Service[E] {
	return &Service[E]{kind: kind, repo: repo}
}

func (s *Service[E]) Kind() types.Kind { return s.kind }

// Create persists e. Any identity on e is the caller's responsibility;
// handlers strip it before calling.
func (s *Service[E]) Create(ctx context.Context, e E) (E, error) {
	saved, err := s.repo.Save(ctx, e)
	if err != nil {
		return saved, fmt.Errorf("create %s: %w", s.kind, err)
	}

	slog.Debug("record created", slog.String("kind", string(s.kind)), slog.Int64("id", saved.Identity()))
	return saved, nil
}

func (s *Service[E]) ListAll(ctx context.Context) ([]E, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	return all, nil
}

func (s *Service[E]) GetByID(ctx context.Context, id int64) (E, error) {
	return s.mustExist(ctx, id)
}

// Update copies the mutable fields of changes onto the stored record and
// saves it. The identity always comes from the stored record.
func (s *Service[E]) Update(ctx context.Context, id int64, changes E) (E, error) {
	stored, err := s.mustExist(ctx, id)
	if err != nil {
		return stored, err
	}

	saved, err := s.repo.Save(ctx, stored.WithChanges(changes))
	if err != nil {
		return saved, fmt.Errorf("update %s %d: %w", s.kind, id, err)
	}
	return saved, nil
}

func (s *Service[E]) Delete(ctx context.Context, id int64) error {
	if _, err := s.mustExist(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete %s %d: %w", s.kind, id, err)
	}
	return nil
}

func (s *Service[E]) mustExist(ctx context.Context, id int64) (E, error) {
	e, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return e, fmt.Errorf("find %s %d: %w", s.kind, id, err)
	}
	if !found {
		return e, &NotFoundError{Kind: s.kind, ID: id}
	}
	return e, nil
}
