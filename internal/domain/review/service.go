package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/ystas1205/Educational-project/internal/domain/product"
	"github.com/ystas1205/Educational-project/internal/domain/user"
)

var (
	ErrNotFound     = errors.New("review not found or inactive")
	ErrDuplicate    = errors.New("active review for this product already exists")
	ErrInvalidGrade = errors.New("grade must be between 1 and 5")
)

type Service struct {
	repo        Repository
	products    Products
	aggregator  *Aggregator
	tx          Transactor
	onRecompute func()
}

type ServiceOption func(*Service)

// WithRecomputeHook registers fn to be called once the transaction that
// recomputed a product rating has committed.
func WithRecomputeHook(fn func()) ServiceOption {
	return func(s *Service) { s.onRecompute = fn }
}

func NewService(repo Repository, products Products, aggregator *Aggregator, tx Transactor, opts ...ServiceOption) *Service {
	s := &Service{repo: repo, products: products, aggregator: aggregator, tx: tx}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a review by author and recomputes the product rating in the
// same transaction. The product row stays locked until commit, so concurrent
// reviews of one product recompute in turn and the last one sees every grade.
func (s *Service) Create(ctx context.Context, author *user.User, in Input) (*Review, error) {
	if in.Grade < MinGrade || in.Grade > MaxGrade {
		return nil, ErrInvalidGrade
	}

	var created *Review
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.products.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if !p.IsActive {
			return product.ErrNotFound
		}
		exists, err := s.repo.HasActive(ctx, author.ID, in.ProductID)
		if err != nil {
			return fmt.Errorf("check existing review: %w", err)
		}
		if exists {
			return ErrDuplicate
		}

		r := &Review{
			UserID:    author.ID,
			ProductID: in.ProductID,
			Comments:  in.Comments,
			Grade:     in.Grade,
			IsActive:  true,
		}
		if err := s.repo.Create(ctx, r); err != nil {
			return err
		}
		if _, err := s.aggregator.Recompute(ctx, in.ProductID); err != nil {
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.recomputed()
	return created, nil
}

// Delete soft-deletes a review and recomputes the rating of its product.
// The product is locked before the review changes, as in Create.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		r, err := s.repo.GetActive(ctx, id)
		if err != nil {
			return err
		}
		if _, err := s.products.GetForUpdate(ctx, r.ProductID); err != nil {
			return fmt.Errorf("lock product: %w", err)
		}
		if err := s.repo.Deactivate(ctx, id); err != nil {
			return err
		}
		_, err = s.aggregator.Recompute(ctx, r.ProductID)
		return err
	})
	if err != nil {
		return err
	}
	s.recomputed()
	return nil
}

func (s *Service) recomputed() {
	if s.onRecompute != nil {
		s.onRecompute()
	}
}

func (s *Service) List(ctx context.Context) ([]Review, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Review{}
	}
	return items, nil
}

func (s *Service) ListByProduct(ctx context.Context, productID int64) ([]Review, error) {
	if _, err := s.products.GetActive(ctx, productID); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load product: %w", err)
	}
	items, err := s.repo.ListActiveByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Review{}
	}
	return items, nil
}
