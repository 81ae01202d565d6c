package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ystas1205/Educational-project/internal/domain/product"
	"github.com/ystas1205/Educational-project/internal/domain/review"
	"github.com/ystas1205/Educational-project/internal/platform/database"
)

type ReviewRepo struct {
	db *sql.DB
}

func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

const reviewColumns = `id, user_id, product_id, comments, comment_date, grade, is_active`

func (r *ReviewRepo) HasActive(ctx context.Context, userID, productID int64) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM reviews WHERE user_id = $1 AND product_id = $2 AND is_active
        )
    `, userID, productID).Scan(&exists)
	return exists, err
}

func (r *ReviewRepo) Create(ctx context.Context, rv *review.Review) error {
	query := `
        INSERT INTO reviews (user_id, product_id, comments, grade, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, comment_date
    `
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, query,
		rv.UserID, rv.ProductID, rv.Comments, rv.Grade, rv.IsActive,
	).Scan(&rv.ID, &rv.CommentDate)
	switch {
	case database.IsUniqueViolation(err):
		return review.ErrDuplicate
	case database.IsForeignKeyViolation(err):
		return product.ErrNotFound
	}
	return err
}

func (r *ReviewRepo) GetActive(ctx context.Context, id int64) (*review.Review, error) {
	rv := &review.Review{}
	err := database.Conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1 AND is_active`, id).
		Scan(&rv.ID, &rv.UserID, &rv.ProductID, &rv.Comments, &rv.CommentDate, &rv.Grade, &rv.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, review.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *ReviewRepo) Deactivate(ctx context.Context, id int64) error {
	res, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE reviews SET is_active = FALSE WHERE id = $1 AND is_active`, id)
	if err != nil {
		return err
	}
	return expectRow(res, review.ErrNotFound)
}

func (r *ReviewRepo) ListActive(ctx context.Context) ([]review.Review, error) {
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE is_active ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectReviews(rows)
}

func (r *ReviewRepo) ListActiveByProduct(ctx context.Context, productID int64) ([]review.Review, error) {
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE product_id = $1 AND is_active ORDER BY id`, productID)
	if err != nil {
		return nil, err
	}
	return collectReviews(rows)
}

// ActiveGrades reads the grades that make up a product's rating.
func (r *ReviewRepo) ActiveGrades(ctx context.Context, productID int64) ([]int, error) {
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx,
		`SELECT grade FROM reviews WHERE product_id = $1 AND is_active`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []int
	for rows.Next() {
		var g int
		if err := rows.Scan(&g); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

func (r *ReviewRepo) SetProductRating(ctx context.Context, productID int64, rating float64) error {
	res, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE products SET rating = $1 WHERE id = $2`, rating, productID)
	if err != nil {
		return err
	}
	return expectRow(res, product.ErrNotFound)
}

func collectReviews(rows *sql.Rows) ([]review.Review, error) {
	defer rows.Close()
	items := []review.Review{}
	for rows.Next() {
		var rv review.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.ProductID, &rv.Comments, &rv.CommentDate, &rv.Grade, &rv.IsActive); err != nil {
			return nil, err
		}
		items = append(items, rv)
	}
	return items, rows.Err()
}
