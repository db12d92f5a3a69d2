package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/inkwell/inkwell-backend/internal/blog"
	"github.com/inkwell/inkwell-backend/internal/repository"
)

// InteractionService handles likes, bookmarks and threaded comments,
// and triggers the notification fan-out for like and comment events.
type InteractionService struct {
	posts        PostStore
	interactions InteractionStore
	notifier     *NotificationService
	logger       *zap.SugaredLogger
}

func NewInteractionService(posts PostStore, interactions InteractionStore, notifier *NotificationService, logger *zap.SugaredLogger) *InteractionService {
	return &InteractionService{
		posts:        posts,
		interactions: interactions,
		notifier:     notifier,
		logger:       logger,
	}
}

// AddLike creates the like row for (actor, post). Duplicate attempts
// surface as ErrAlreadyLiked off the unique constraint, so exactly one
// row and exactly one notification can result from any number of
// concurrent identical requests.
func (s *InteractionService) AddLike(ctx context.Context, actor *blog.User, postID int64) (*blog.Reaction, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	reaction, err := s.interactions.CreateLike(ctx, actor.ID, postID)
	if err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrAlreadyLiked
		}
		return nil, fmt.Errorf("failed to create like: %w", err)
	}

	s.notifier.NotifyLike(ctx, actor, post)
	return reaction, nil
}

func (s *InteractionService) RemoveLike(ctx context.Context, actor *blog.User, postID int64) error {
	if _, err := s.getPost(ctx, postID); err != nil {
		return err
	}

	if err := s.interactions.DeleteLike(ctx, actor.ID, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotLiked
		}
		return fmt.Errorf("failed to delete like: %w", err)
	}

	return nil
}

func (s *InteractionService) LikeCount(ctx context.Context, postID int64) (int64, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return 0, err
	}
	return s.interactions.LikeCount(ctx, postID)
}

func (s *InteractionService) ListLikes(ctx context.Context, userID int64) ([]*blog.Reaction, error) {
	return s.interactions.ListLikesByUser(ctx, userID)
}

// AddBookmark mirrors AddLike but fans out no notification; bookmarks
// are a private reading-list signal.
func (s *InteractionService) AddBookmark(ctx context.Context, actor *blog.User, postID int64) (*blog.Reaction, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	reaction, err := s.interactions.CreateBookmark(ctx, actor.ID, postID)
	if err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrAlreadyBookmarked
		}
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	return reaction, nil
}

func (s *InteractionService) RemoveBookmark(ctx context.Context, actor *blog.User, postID int64) error {
	if _, err := s.getPost(ctx, postID); err != nil {
		return err
	}

	if err := s.interactions.DeleteBookmark(ctx, actor.ID, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotBookmarked
		}
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	return nil
}

func (s *InteractionService) BookmarkCount(ctx context.Context, postID int64) (int64, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return 0, err
	}
	return s.interactions.BookmarkCount(ctx, postID)
}

func (s *InteractionService) ListBookmarks(ctx context.Context, userID int64) ([]*blog.Reaction, error) {
	return s.interactions.ListBookmarksByUser(ctx, userID)
}

// AddComment attaches a comment to a post, unapproved by default. A
// parent, when given, must be a comment on the same post.
func (s *InteractionService) AddComment(ctx context.Context, actor *blog.User, postID int64, content string, parentID *int64) (*blog.Comment, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := s.interactions.GetCommentByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to fetch parent comment: %w", err)
		}
		if parent.BlogPostID != postID {
			return nil, ErrParentMismatch
		}
	}

	comment := &blog.Comment{
		BlogPostID: postID,
		AuthorID:   actor.ID,
		ParentID:   parentID,
		Content:    content,
		IsApproved: false, // moderation gate
	}

	if err := s.interactions.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.notifier.NotifyComment(ctx, actor, post, comment)
	return comment, nil
}

// ListComments returns the approved top-level comments of a post with
// their full reply subtrees.
func (s *InteractionService) ListComments(ctx context.Context, postID int64) ([]*blog.CommentNode, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.interactions.ListCommentsByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return blog.BuildCommentTree(comments), nil
}

func (s *InteractionService) DeleteComment(ctx context.Context, actor *blog.User, id int64) error {
	comment, err := s.interactions.GetCommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch comment: %w", err)
	}
	if comment.AuthorID != actor.ID {
		return ErrForbidden
	}

	if err := s.interactions.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

// ApproveComment lifts the moderation gate; admin-only, enforced at
// the routing layer.
func (s *InteractionService) ApproveComment(ctx context.Context, id int64) error {
	if err := s.interactions.ApproveComment(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to approve comment: %w", err)
	}
	return nil
}

func (s *InteractionService) getPost(ctx context.Context, postID int64) (*blog.BlogPost, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return post, nil
}
