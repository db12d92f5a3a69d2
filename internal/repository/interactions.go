package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/inkwell/inkwell-backend/internal/blog"
)

// InteractionRepo covers likes, bookmarks and comments. Likes and
// bookmarks share identical shape and semantics, so both go through
// the same reaction helpers parameterized by table name.
type InteractionRepo struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewInteractionRepo(db *sql.DB, logger *zap.SugaredLogger) *InteractionRepo {
	return &InteractionRepo{db: db, logger: logger}
}

const (
	tableLikes     = "likes"
	tableBookmarks = "bookmarks"
)

// createReaction is a single-statement conditional insert: the unique
// index on (user_id, blog_post_id) makes concurrent duplicates lose
// with a constraint violation instead of racing a check-then-act.
func (r *InteractionRepo) createReaction(ctx context.Context, table string, userID, postID int64) (*blog.Reaction, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, blog_post_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, table)

	reaction := &blog.Reaction{UserID: userID, BlogPostID: postID}
	err := r.db.QueryRowContext(ctx, query, userID, postID).Scan(&reaction.ID, &reaction.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	return reaction, nil
}

func (r *InteractionRepo) deleteReaction(ctx context.Context, table string, userID, postID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND blog_post_id = $2`, table)

	res, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete reaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete reaction: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *InteractionRepo) countReactions(ctx context.Context, table string, postID int64) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE blog_post_id = $1`, table)

	var count int64
	if err := r.db.QueryRowContext(ctx, query, postID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}

	return count, nil
}

func (r *InteractionRepo) listReactionsByUser(ctx context.Context, table string, userID int64) ([]*blog.Reaction, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, blog_post_id, created_at
		FROM %s WHERE user_id = $1
		ORDER BY created_at DESC
	`, table)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reactions: %w", err)
	}
	defer rows.Close()

	var reactions []*blog.Reaction
	for rows.Next() {
		var re blog.Reaction
		if err := rows.Scan(&re.ID, &re.UserID, &re.BlogPostID, &re.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reaction: %w", err)
		}
		reactions = append(reactions, &re)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return reactions, nil
}

func (r *InteractionRepo) CreateLike(ctx context.Context, userID, postID int64) (*blog.Reaction, error) {
	return r.createReaction(ctx, tableLikes, userID, postID)
}

func (r *InteractionRepo) DeleteLike(ctx context.Context, userID, postID int64) error {
	return r.deleteReaction(ctx, tableLikes, userID, postID)
}

func (r *InteractionRepo) LikeCount(ctx context.Context, postID int64) (int64, error) {
	return r.countReactions(ctx, tableLikes, postID)
}

func (r *InteractionRepo) ListLikesByUser(ctx context.Context, userID int64) ([]*blog.Reaction, error) {
	return r.listReactionsByUser(ctx, tableLikes, userID)
}

func (r *InteractionRepo) CreateBookmark(ctx context.Context, userID, postID int64) (*blog.Reaction, error) {
	return r.createReaction(ctx, tableBookmarks, userID, postID)
}

func (r *InteractionRepo) DeleteBookmark(ctx context.Context, userID, postID int64) error {
	return r.deleteReaction(ctx, tableBookmarks, userID, postID)
}

func (r *InteractionRepo) BookmarkCount(ctx context.Context, postID int64) (int64, error) {
	return r.countReactions(ctx, tableBookmarks, postID)
}

func (r *InteractionRepo) ListBookmarksByUser(ctx context.Context, userID int64) ([]*blog.Reaction, error) {
	return r.listReactionsByUser(ctx, tableBookmarks, userID)
}

// Comments

const commentColumns = `id, blog_post_id, author_id, parent_id, content, is_approved, created_at, updated_at`

func scanComment(row interface{ Scan(...any) error }) (*blog.Comment, error) {
	var c blog.Comment
	err := row.Scan(
		&c.ID,
		&c.BlogPostID,
		&c.AuthorID,
		&c.ParentID,
		&c.Content,
		&c.IsApproved,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan comment: %w", err)
	}
	return &c, nil
}

func (r *InteractionRepo) CreateComment(ctx context.Context, comment *blog.Comment) error {
	query := `
		INSERT INTO comments (blog_post_id, author_id, parent_id, content, is_approved)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		comment.BlogPostID,
		comment.AuthorID,
		comment.ParentID,
		comment.Content,
		comment.IsApproved,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return mapError(err)
	}

	return nil
}

func (r *InteractionRepo) GetCommentByID(ctx context.Context, id int64) (*blog.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	return scanComment(r.db.QueryRowContext(ctx, query, id))
}

// ListCommentsByPost fetches every comment of the post in one query;
// the tree is materialized in memory from this flat list.
func (r *InteractionRepo) ListCommentsByPost(ctx context.Context, postID int64) ([]blog.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE blog_post_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []blog.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return comments, nil
}

func (r *InteractionRepo) DeleteComment(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *InteractionRepo) ApproveComment(ctx context.Context, id int64) error {
	query := `UPDATE comments SET is_approved = TRUE, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to approve comment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to approve comment: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
