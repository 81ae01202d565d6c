package review

import (
	"context"
	"time"

	"github.com/ystas1205/Educational-project/internal/domain/product"
)

const (
	MinGrade = 1
	MaxGrade = 5
)

type Review struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ProductID   int64     `json:"product_id"`
	Comments    *string   `json:"comments"`
	CommentDate time.Time `json:"comment_date"`
	Grade       int       `json:"grade"`
	IsActive    bool      `json:"is_active"`
}

type Input struct {
	ProductID int64
	Grade     int
	Comments  *string
}

// RatingStore is the part of the store the aggregator reads and writes.
type RatingStore interface {
	ActiveGrades(ctx context.Context, productID int64) ([]int, error)
	SetProductRating(ctx context.Context, productID int64, rating float64) error
}

type Repository interface {
	RatingStore
	HasActive(ctx context.Context, userID, productID int64) (bool, error)
	// Create returns ErrDuplicate when an active review for the same
	// (user, product) pair already exists.
	Create(ctx context.Context, r *Review) error
	GetActive(ctx context.Context, id int64) (*Review, error)
	Deactivate(ctx context.Context, id int64) error
	ListActive(ctx context.Context) ([]Review, error)
	ListActiveByProduct(ctx context.Context, productID int64) ([]Review, error)
}

type Products interface {
	GetActive(ctx context.Context, id int64) (*product.Product, error)
	// GetForUpdate loads the product whatever its state and holds its row
	// lock until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*product.Product, error)
}

type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
