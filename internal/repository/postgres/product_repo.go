package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ystas1205/Educational-project/internal/domain/product"
	"github.com/ystas1205/Educational-project/internal/platform/database"
)

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, name, description, price::float8, image_url, stock,
        category_id, seller_id, rating, is_active`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*product.Product, error) {
	p := &product.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Stock,
		&p.CategoryID, &p.SellerID, &p.Rating, &p.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, product.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *product.Product) error {
	query := `
        INSERT INTO products (name, description, price, image_url, stock, category_id, seller_id, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, rating
    `
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, query,
		p.Name,
		p.Description,
		p.Price,
		p.ImageURL,
		p.Stock,
		p.CategoryID,
		p.SellerID,
		p.IsActive,
	).Scan(&p.ID, &p.Rating)
	if database.IsForeignKeyViolation(err) {
		return product.ErrCategoryInvalid
	}
	return err
}

func (r *ProductRepo) GetActive(ctx context.Context, id int64) (*product.Product, error) {
	row := database.Conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND is_active`, id)
	return scanProduct(row)
}

// GetForUpdate locks the product row for the rest of the transaction in ctx.
// Inactive products are returned too; callers decide what that means.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*product.Product, error) {
	row := database.Conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
	return scanProduct(row)
}

func (r *ProductRepo) Update(ctx context.Context, id int64, in product.Input) (*product.Product, error) {
	query := `
        UPDATE products
        SET name = $1, description = $2, price = $3, image_url = $4, stock = $5, category_id = $6
        WHERE id = $7 AND is_active
        RETURNING ` + productColumns
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, query,
		in.Name, in.Description, in.Price, in.ImageURL, in.Stock, in.CategoryID, id)
	p, err := scanProduct(row)
	if database.IsForeignKeyViolation(err) {
		return nil, product.ErrCategoryInvalid
	}
	return p, err
}

func (r *ProductRepo) Deactivate(ctx context.Context, id int64) (*product.Product, error) {
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, `
        UPDATE products SET is_active = FALSE
        WHERE id = $1 AND is_active
        RETURNING `+productColumns, id)
	return scanProduct(row)
}

func (r *ProductRepo) ListActive(ctx context.Context, offset, limit int) ([]product.Product, int64, error) {
	conn := database.Conn(ctx, r.db)

	var total int64
	if err := conn.QueryRowContext(ctx, `SELECT count(*) FROM products WHERE is_active`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := conn.QueryContext(ctx, `
        SELECT `+productColumns+`
        FROM products WHERE is_active
        ORDER BY id
        LIMIT $1 OFFSET $2
    `, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	items, err := collectProducts(rows)
	return items, total, err
}

func (r *ProductRepo) ListActiveByCategory(ctx context.Context, categoryID int64) ([]product.Product, error) {
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, `
        SELECT `+productColumns+`
        FROM products WHERE category_id = $1 AND is_active
        ORDER BY id
    `, categoryID)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func collectProducts(rows *sql.Rows) ([]product.Product, error) {
	defer rows.Close()
	items := []product.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}
