package category

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("category not found or inactive")
	ErrParentMissing = errors.New("parent category not found or inactive")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, c *Category) error {
	if c.ParentID != nil {
		if _, err := s.repo.GetActive(ctx, *c.ParentID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return ErrParentMissing
			}
			return fmt.Errorf("load parent category: %w", err)
		}
	}
	c.IsActive = true
	return s.repo.Create(ctx, c)
}

func (s *Service) GetActive(ctx context.Context, id int64) (*Category, error) {
	return s.repo.GetActive(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.ListActive(ctx)
}
