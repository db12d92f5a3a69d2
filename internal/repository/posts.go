package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/inkwell/inkwell-backend/internal/blog"
)

type PostRepo struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewPostRepo(db *sql.DB, logger *zap.SugaredLogger) *PostRepo {
	return &PostRepo{db: db, logger: logger}
}

const postColumns = `id, author_id, title, slug, content, excerpt, status, read_time,
	COALESCE(featured_image, ''), created_at, updated_at, published_at`

func scanPost(row interface{ Scan(...any) error }) (*blog.BlogPost, error) {
	var p blog.BlogPost
	err := row.Scan(
		&p.ID,
		&p.AuthorID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.Excerpt,
		&p.Status,
		&p.ReadTime,
		&p.FeaturedImage,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.PublishedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}
	return &p, nil
}

func (r *PostRepo) Create(ctx context.Context, post *blog.BlogPost) error {
	query := `
		INSERT INTO blog_posts (author_id, title, slug, content, excerpt, status, read_time, featured_image, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		post.AuthorID,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.Status,
		post.ReadTime,
		post.FeaturedImage,
		post.PublishedAt,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return mapError(err)
	}

	return nil
}

func (r *PostRepo) GetByID(ctx context.Context, id int64) (*blog.BlogPost, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1`
	return scanPost(r.db.QueryRowContext(ctx, query, id))
}

// GetPublishedBySlug is the public detail lookup; non-published posts
// are invisible through it.
func (r *PostRepo) GetPublishedBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE slug = $1 AND status = 'published'`
	return scanPost(r.db.QueryRowContext(ctx, query, slug))
}

func (r *PostRepo) ListPublished(ctx context.Context) ([]*blog.BlogPost, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE status = 'published' ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *PostRepo) ListAll(ctx context.Context) ([]*blog.BlogPost, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *PostRepo) list(ctx context.Context, query string, args ...any) ([]*blog.BlogPost, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []*blog.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return posts, nil
}

func (r *PostRepo) Update(ctx context.Context, post *blog.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = $2, slug = $3, content = $4, excerpt = $5, status = $6,
		    read_time = $7, featured_image = NULLIF($8, ''), updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.Status,
		post.ReadTime,
		post.FeaturedImage,
	).Scan(&post.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return mapError(err)
	}

	return nil
}

// UpdateStatus transitions the lifecycle state. publishedAt is only
// written when non-nil, so an already-set publish time is never
// re-stamped.
func (r *PostRepo) UpdateStatus(ctx context.Context, id int64, status blog.Status, publishedAt *time.Time) error {
	query := `
		UPDATE blog_posts
		SET status = $2, published_at = COALESCE($3, published_at), updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, status, publishedAt)
	if err != nil {
		return fmt.Errorf("failed to update post status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update post status: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Counts returns the derived reaction and comment counts for a post.
// They are aggregated on demand; there is no denormalized counter to
// keep in sync.
func (r *PostRepo) Counts(ctx context.Context, id int64) (likes, bookmarks, comments int64, err error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM likes WHERE blog_post_id = $1),
			(SELECT COUNT(*) FROM bookmarks WHERE blog_post_id = $1),
			(SELECT COUNT(*) FROM comments WHERE blog_post_id = $1)
	`

	if err = r.db.QueryRowContext(ctx, query, id).Scan(&likes, &bookmarks, &comments); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count post interactions: %w", err)
	}

	return likes, bookmarks, comments, nil
}
