package service

import (
	"context"
	"time"

	"github.com/inkwell/inkwell-backend/internal/blog"
)

// Storage interfaces the services depend on. The concrete
// implementations live in internal/repository; tests substitute mocks.

type UserStore interface {
	Create(ctx context.Context, user *blog.User) error
	GetByID(ctx context.Context, id int64) (*blog.User, error)
	GetByEmail(ctx context.Context, email string) (*blog.User, error)
	Update(ctx context.Context, user *blog.User) error
}

type PostStore interface {
	Create(ctx context.Context, post *blog.BlogPost) error
	GetByID(ctx context.Context, id int64) (*blog.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*blog.BlogPost, error)
	ListPublished(ctx context.Context) ([]*blog.BlogPost, error)
	ListAll(ctx context.Context) ([]*blog.BlogPost, error)
	Update(ctx context.Context, post *blog.BlogPost) error
	UpdateStatus(ctx context.Context, id int64, status blog.Status, publishedAt *time.Time) error
	Delete(ctx context.Context, id int64) error
	Counts(ctx context.Context, id int64) (likes, bookmarks, comments int64, err error)
}

type PromotionStore interface {
	Create(ctx context.Context, promo *blog.Promotion) error
	GetByID(ctx context.Context, id int64) (*blog.Promotion, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*blog.Promotion, error)
	ListPublished(ctx context.Context) ([]*blog.Promotion, error)
	Update(ctx context.Context, promo *blog.Promotion) error
	Delete(ctx context.Context, id int64) error
}

type InteractionStore interface {
	CreateLike(ctx context.Context, userID, postID int64) (*blog.Reaction, error)
	DeleteLike(ctx context.Context, userID, postID int64) error
	LikeCount(ctx context.Context, postID int64) (int64, error)
	ListLikesByUser(ctx context.Context, userID int64) ([]*blog.Reaction, error)

	CreateBookmark(ctx context.Context, userID, postID int64) (*blog.Reaction, error)
	DeleteBookmark(ctx context.Context, userID, postID int64) error
	BookmarkCount(ctx context.Context, postID int64) (int64, error)
	ListBookmarksByUser(ctx context.Context, userID int64) ([]*blog.Reaction, error)

	CreateComment(ctx context.Context, comment *blog.Comment) error
	GetCommentByID(ctx context.Context, id int64) (*blog.Comment, error)
	ListCommentsByPost(ctx context.Context, postID int64) ([]blog.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
	ApproveComment(ctx context.Context, id int64) error
}

type NotificationStore interface {
	Create(ctx context.Context, n *blog.Notification) error
	ListByRecipient(ctx context.Context, recipientID int64) ([]*blog.Notification, error)
	MarkRead(ctx context.Context, id, recipientID int64) error
	MarkAllRead(ctx context.Context, recipientID int64) error
}

// SessionStore tracks valid refresh tokens, implemented by store.Sessions.
type SessionStore interface {
	Put(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error
	Get(ctx context.Context, tokenID string) (int64, error)
	Delete(ctx context.Context, tokenID string) error
}
