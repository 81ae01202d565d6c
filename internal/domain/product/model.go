package product

import (
	"context"

	"github.com/ystas1205/Educational-project/internal/domain/category"
)

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`
	Stock       int     `json:"stock"`
	CategoryID  int64   `json:"category_id"`
	SellerID    int64   `json:"seller_id"`
	Rating      float64 `json:"rating"`
	IsActive    bool    `json:"is_active"`
}

// OwnerID makes products subject to the ownership policy.
func (p *Product) OwnerID() int64 { return p.SellerID }

// Input holds the seller-editable fields, used for create and full update.
type Input struct {
	Name        string
	Description *string
	Price       float64
	ImageURL    *string
	Stock       int
	CategoryID  int64
}

type Page struct {
	Items    []Product `json:"items"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetActive(ctx context.Context, id int64) (*Product, error)
	Update(ctx context.Context, id int64, in Input) (*Product, error)
	Deactivate(ctx context.Context, id int64) (*Product, error)
	ListActive(ctx context.Context, offset, limit int) ([]Product, int64, error)
	ListActiveByCategory(ctx context.Context, categoryID int64) ([]Product, error)
}

type Categories interface {
	GetActive(ctx context.Context, id int64) (*category.Category, error)
}

type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
