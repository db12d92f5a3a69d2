package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/inkwell/inkwell-backend/internal/blog"
)

type PromotionRepo struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewPromotionRepo(db *sql.DB, logger *zap.SugaredLogger) *PromotionRepo {
	return &PromotionRepo{db: db, logger: logger}
}

const promotionColumns = `id, author_id, slogan, slug, content, status, created_at, updated_at`

func scanPromotion(row interface{ Scan(...any) error }) (*blog.Promotion, error) {
	var p blog.Promotion
	err := row.Scan(
		&p.ID,
		&p.AuthorID,
		&p.Slogan,
		&p.Slug,
		&p.Content,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan promotion: %w", err)
	}
	return &p, nil
}

func (r *PromotionRepo) Create(ctx context.Context, promo *blog.Promotion) error {
	query := `
		INSERT INTO promotions (author_id, slogan, slug, content, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		promo.AuthorID,
		promo.Slogan,
		promo.Slug,
		promo.Content,
		promo.Status,
	).Scan(&promo.ID, &promo.CreatedAt, &promo.UpdatedAt)
	if err != nil {
		return mapError(err)
	}

	return nil
}

func (r *PromotionRepo) GetByID(ctx context.Context, id int64) (*blog.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`
	return scanPromotion(r.db.QueryRowContext(ctx, query, id))
}

func (r *PromotionRepo) GetPublishedBySlug(ctx context.Context, slug string) (*blog.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE slug = $1 AND status = 'published'`
	return scanPromotion(r.db.QueryRowContext(ctx, query, slug))
}

func (r *PromotionRepo) ListPublished(ctx context.Context) ([]*blog.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE status = 'published' ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query promotions: %w", err)
	}
	defer rows.Close()

	var promos []*blog.Promotion
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		promos = append(promos, promo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return promos, nil
}

func (r *PromotionRepo) Update(ctx context.Context, promo *blog.Promotion) error {
	query := `
		UPDATE promotions
		SET slogan = $2, slug = $3, content = $4, status = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		promo.ID,
		promo.Slogan,
		promo.Slug,
		promo.Content,
		promo.Status,
	).Scan(&promo.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return mapError(err)
	}

	return nil
}

func (r *PromotionRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete promotion: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete promotion: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
