package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/inkwell/inkwell-backend/internal/blog"
)

type UserRepo struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewUserRepo(db *sql.DB, logger *zap.SugaredLogger) *UserRepo {
	return &UserRepo{db: db, logger: logger}
}

const userColumns = `id, username, email, password_hash, first_name, last_name, bio, photo, role, created_at`

func scanUser(row interface{ Scan(...any) error }) (*blog.User, error) {
	var u blog.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Bio,
		&u.Photo,
		&u.Role,
		&u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, user *blog.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, bio, photo, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Bio,
		user.Photo,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return mapError(err)
	}

	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*blog.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*blog.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepo) Update(ctx context.Context, user *blog.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, password_hash = $4, first_name = $5,
		    last_name = $6, bio = $7, photo = $8
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Bio,
		user.Photo,
	)
	if err != nil {
		return mapError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
