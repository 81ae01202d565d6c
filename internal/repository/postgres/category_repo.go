package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ystas1205/Educational-project/internal/domain/category"
	"github.com/ystas1205/Educational-project/internal/platform/database"
)

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Create(ctx context.Context, c *category.Category) error {
	query := `
        INSERT INTO categories (name, parent_id, is_active)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, query, c.Name, c.ParentID, c.IsActive).Scan(&c.ID)
	if database.IsForeignKeyViolation(err) {
		return category.ErrParentMissing
	}
	return err
}

func (r *CategoryRepo) GetActive(ctx context.Context, id int64) (*category.Category, error) {
	c := &category.Category{}
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, `
        SELECT id, name, parent_id, is_active
        FROM categories WHERE id = $1 AND is_active
    `, id).Scan(&c.ID, &c.Name, &c.ParentID, &c.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, category.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepo) ListActive(ctx context.Context) ([]category.Category, error) {
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, `
        SELECT id, name, parent_id, is_active
        FROM categories WHERE is_active ORDER BY id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []category.Category{}
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &c.IsActive); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
