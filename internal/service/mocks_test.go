package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/inkwell/inkwell-backend/internal/blog"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *blog.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*blog.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*blog.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.User), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *blog.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) Create(ctx context.Context, post *blog.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostStore) GetByID(ctx context.Context, id int64) (*blog.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.BlogPost), args.Error(1)
}

func (m *MockPostStore) GetPublishedBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.BlogPost), args.Error(1)
}

func (m *MockPostStore) ListPublished(ctx context.Context) ([]*blog.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*blog.BlogPost), args.Error(1)
}

func (m *MockPostStore) ListAll(ctx context.Context) ([]*blog.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*blog.BlogPost), args.Error(1)
}

func (m *MockPostStore) Update(ctx context.Context, post *blog.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostStore) UpdateStatus(ctx context.Context, id int64, status blog.Status, publishedAt *time.Time) error {
	args := m.Called(ctx, id, status, publishedAt)
	return args.Error(0)
}

func (m *MockPostStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostStore) Counts(ctx context.Context, id int64) (int64, int64, int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Get(1).(int64), args.Get(2).(int64), args.Error(3)
}

type MockPromotionStore struct {
	mock.Mock
}

func (m *MockPromotionStore) Create(ctx context.Context, promo *blog.Promotion) error {
	args := m.Called(ctx, promo)
	return args.Error(0)
}

func (m *MockPromotionStore) GetByID(ctx context.Context, id int64) (*blog.Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Promotion), args.Error(1)
}

func (m *MockPromotionStore) GetPublishedBySlug(ctx context.Context, slug string) (*blog.Promotion, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Promotion), args.Error(1)
}

func (m *MockPromotionStore) ListPublished(ctx context.Context) ([]*blog.Promotion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*blog.Promotion), args.Error(1)
}

func (m *MockPromotionStore) Update(ctx context.Context, promo *blog.Promotion) error {
	args := m.Called(ctx, promo)
	return args.Error(0)
}

func (m *MockPromotionStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInteractionStore struct {
	mock.Mock
}

func (m *MockInteractionStore) CreateLike(ctx context.Context, userID, postID int64) (*blog.Reaction, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Reaction), args.Error(1)
}

func (m *MockInteractionStore) DeleteLike(ctx context.Context, userID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockInteractionStore) LikeCount(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionStore) ListLikesByUser(ctx context.Context, userID int64) ([]*blog.Reaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*blog.Reaction), args.Error(1)
}

func (m *MockInteractionStore) CreateBookmark(ctx context.Context, userID, postID int64) (*blog.Reaction, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Reaction), args.Error(1)
}

func (m *MockInteractionStore) DeleteBookmark(ctx context.Context, userID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockInteractionStore) BookmarkCount(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionStore) ListBookmarksByUser(ctx context.Context, userID int64) ([]*blog.Reaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*blog.Reaction), args.Error(1)
}

func (m *MockInteractionStore) CreateComment(ctx context.Context, comment *blog.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockInteractionStore) GetCommentByID(ctx context.Context, id int64) (*blog.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Comment), args.Error(1)
}

func (m *MockInteractionStore) ListCommentsByPost(ctx context.Context, postID int64) ([]blog.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]blog.Comment), args.Error(1)
}

func (m *MockInteractionStore) DeleteComment(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInteractionStore) ApproveComment(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationStore struct {
	mock.Mock
}

func (m *MockNotificationStore) Create(ctx context.Context, n *blog.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationStore) ListByRecipient(ctx context.Context, recipientID int64) ([]*blog.Notification, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*blog.Notification), args.Error(1)
}

func (m *MockNotificationStore) MarkRead(ctx context.Context, id, recipientID int64) error {
	args := m.Called(ctx, id, recipientID)
	return args.Error(0)
}

func (m *MockNotificationStore) MarkAllRead(ctx context.Context, recipientID int64) error {
	args := m.Called(ctx, recipientID)
	return args.Error(0)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Put(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, tokenID string) (int64, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// Interface conformance for the real repositories is asserted in their
// package; here we only pin the mocks.
var (
	_ UserStore         = (*MockUserStore)(nil)
	_ PostStore         = (*MockPostStore)(nil)
	_ PromotionStore    = (*MockPromotionStore)(nil)
	_ InteractionStore  = (*MockInteractionStore)(nil)
	_ NotificationStore = (*MockNotificationStore)(nil)
	_ SessionStore      = (*MockSessionStore)(nil)
)
