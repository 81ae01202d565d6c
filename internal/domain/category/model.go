package category

import "context"

type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id,omitempty"`
	IsActive bool   `json:"is_active"`
}

type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetActive(ctx context.Context, id int64) (*Category, error)
	ListActive(ctx context.Context) ([]Category, error)
}
