package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/inkwell/inkwell-backend/internal/blog"
	"github.com/inkwell/inkwell-backend/internal/metrics"
	"github.com/inkwell/inkwell-backend/internal/repository"
)

// NotificationService records fan-out events for post authors and
// serves the recipient-scoped read/unread operations.
type NotificationService struct {
	notifications NotificationStore
	logger        *zap.SugaredLogger
	metrics       *metrics.Metrics
}

func NewNotificationService(notifications NotificationStore, logger *zap.SugaredLogger, metrics *metrics.Metrics) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		logger:        logger,
		metrics:       metrics,
	}
}

// NotifyLike fans out a like event to the post's author. Self-likes
// produce nothing, and a storage failure is logged and swallowed so
// the like itself never fails because of it.
func (s *NotificationService) NotifyLike(ctx context.Context, sender *blog.User, post *blog.BlogPost) {
	if sender.ID == post.AuthorID {
		return
	}

	s.create(ctx, &blog.Notification{
		RecipientID: post.AuthorID,
		SenderID:    &sender.ID,
		Type:        blog.NotificationLike,
		BlogPostID:  &post.ID,
		Message:     fmt.Sprintf("%s liked your post %q", sender.Username, post.Title),
	})
}

// NotifyComment fans out a comment event to the post's author, with
// the same self-skip and best-effort semantics as NotifyLike.
func (s *NotificationService) NotifyComment(ctx context.Context, sender *blog.User, post *blog.BlogPost, comment *blog.Comment) {
	if sender.ID == post.AuthorID {
		return
	}

	s.create(ctx, &blog.Notification{
		RecipientID: post.AuthorID,
		SenderID:    &sender.ID,
		Type:        blog.NotificationComment,
		BlogPostID:  &post.ID,
		CommentID:   &comment.ID,
		Message:     fmt.Sprintf("%s commented on your post %q", sender.Username, post.Title),
	})
}

func (s *NotificationService) create(ctx context.Context, n *blog.Notification) {
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Warnw("Notification fan-out failed",
			"type", n.Type,
			"recipient_id", n.RecipientID,
			"error", err,
		)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordNotification(ctx, string(n.Type))
	}
}

func (s *NotificationService) List(ctx context.Context, recipientID int64) ([]*blog.Notification, error) {
	return s.notifications.ListByRecipient(ctx, recipientID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, recipientID int64) error {
	if err := s.notifications.MarkRead(ctx, id, recipientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID int64) error {
	return s.notifications.MarkAllRead(ctx, recipientID)
}
