package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ystas1205/Educational-project/internal/domain/user"
	"github.com/ystas1205/Educational-project/internal/platform/database"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, email, hashed_password, role, is_active, created_at`

func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	query := `
        INSERT INTO users (email, hashed_password, role, is_active)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Role, u.IsActive).
		Scan(&u.ID, &u.CreatedAt)
	if database.IsUniqueViolation(err) {
		return user.ErrEmailTaken
	}
	return err
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	row := database.Conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	row := database.Conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepo) Deactivate(ctx context.Context, id int64) error {
	res, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE users SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectRow(res, user.ErrNotFound)
}

func scanUser(row *sql.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// expectRow returns notFound when res affected no rows.
func expectRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
