package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/ystas1205/Educational-project/internal/domain/category"
	"github.com/ystas1205/Educational-project/internal/domain/policy"
	"github.com/ystas1205/Educational-project/internal/domain/user"
)

const MaxPageSize = 100

var (
	ErrNotFound        = errors.New("product not found or inactive")
	ErrCategoryInvalid = errors.New("category not found or inactive")
	ErrInvalidPage     = errors.New("invalid page parameters")
)

type Service struct {
	repo       Repository
	categories Categories
	tx         Transactor
}

func NewService(repo Repository, categories Categories, tx Transactor) *Service {
	return &Service{repo: repo, categories: categories, tx: tx}
}

func (s *Service) Create(ctx context.Context, actor *user.User, in Input) (*Product, error) {
	var created *Product
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.checkCategory(ctx, in.CategoryID); err != nil {
			return err
		}
		p := &Product{
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			ImageURL:    in.ImageURL,
			Stock:       in.Stock,
			CategoryID:  in.CategoryID,
			SellerID:    actor.ID,
			IsActive:    true,
		}
		if err := s.repo.Create(ctx, p); err != nil {
			return err
		}
		created = p
		return nil
	})
	return created, err
}

// Update replaces the editable fields of a product owned by actor.
func (s *Service) Update(ctx context.Context, actor *user.User, id int64, in Input) (*Product, error) {
	var updated *Product
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetActive(ctx, id)
		if err != nil {
			return err
		}
		if err := policy.EnsureOwner(actor, p); err != nil {
			return err
		}
		if err := s.checkCategory(ctx, in.CategoryID); err != nil {
			return err
		}
		updated, err = s.repo.Update(ctx, id, in)
		return err
	})
	return updated, err
}

// Delete soft-deletes a product owned by actor and returns it.
func (s *Service) Delete(ctx context.Context, actor *user.User, id int64) (*Product, error) {
	var deleted *Product
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetActive(ctx, id)
		if err != nil {
			return err
		}
		if err := policy.EnsureOwner(actor, p); err != nil {
			return err
		}
		deleted, err = s.repo.Deactivate(ctx, id)
		return err
	})
	return deleted, err
}

func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetActive(ctx, id)
}

func (s *Service) List(ctx context.Context, page, pageSize int) (*Page, error) {
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return nil, ErrInvalidPage
	}
	items, total, err := s.repo.ListActive(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Product{}
	}
	return &Page{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *Service) ListByCategory(ctx context.Context, categoryID int64) ([]Product, error) {
	if _, err := s.categories.GetActive(ctx, categoryID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListActiveByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Product{}
	}
	return items, nil
}

func (s *Service) checkCategory(ctx context.Context, id int64) error {
	if _, err := s.categories.GetActive(ctx, id); err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return ErrCategoryInvalid
		}
		return fmt.Errorf("load category: %w", err)
	}
	return nil
}
