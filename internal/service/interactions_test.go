package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/inkwell/inkwell-backend/internal/blog"
	"github.com/inkwell/inkwell-backend/internal/repository"
)

func newInteractionService(posts *MockPostStore, interactions *MockInteractionStore, notifications *MockNotificationStore) *InteractionService {
	logger := zap.NewNop().Sugar()
	notifier := NewNotificationService(notifications, logger, nil)
	return NewInteractionService(posts, interactions, notifier, logger)
}

func TestAddLikeNotifiesAuthor(t *testing.T) {
	posts := new(MockPostStore)
	posts.On("GetByID", mock.Anything, int64(10)).
		Return(&blog.BlogPost{ID: 10, AuthorID: 1, Title: "A Post"}, nil)

	interactions := new(MockInteractionStore)
	interactions.On("CreateLike", mock.Anything, int64(2), int64(10)).
		Return(&blog.Reaction{ID: 5, UserID: 2, BlogPostID: 10}, nil)

	notifications := new(MockNotificationStore)
	notifications.On("Create", mock.Anything, mock.MatchedBy(func(n *blog.Notification) bool {
		return n.RecipientID == 1 && n.Type == blog.NotificationLike && n.SenderID != nil && *n.SenderID == 2
	})).Return(nil).Once()

	svc := newInteractionService(posts, interactions, notifications)
	reaction, err := svc.AddLike(context.Background(), &blog.User{ID: 2, Username: "fan"}, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(5), reaction.ID)
	notifications.AssertExpectations(t)
}

// Liking your own post produces no notification.
func TestAddLikeSelfSkipsNotification(t *testing.T) {
	posts := new(MockPostStore)
	posts.On("GetByID", mock.Anything, int64(10)).
		Return(&blog.BlogPost{ID: 10, AuthorID: 1}, nil)

	interactions := new(MockInteractionStore)
	interactions.On("CreateLike", mock.Anything, int64(1), int64(10)).
		Return(&blog.Reaction{ID: 5, UserID: 1, BlogPostID: 10}, nil)

	notifications := new(MockNotificationStore)

	svc := newInteractionService(posts, interactions, notifications)
	_, err := svc.AddLike(context.Background(), &blog.User{ID: 1}, 10)

	require.NoError(t, err)
	notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddLikeDuplicate(t *testing.T) {
	posts := new(MockPostStore)
	posts.On("GetByID", mock.Anything, int64(10)).
		Return(&blog.BlogPost{ID: 10, AuthorID: 1}, nil)

	interactions := new(MockInteractionStore)
	interactions.On("CreateLike", mock.Anything, int64(2), int64(10)).
		Return(nil, &repository.DuplicateError{Constraint: "likes_user_id_blog_post_id_key"})

	svc := newInteractionService(posts, interactions, new(MockNotificationStore))
	_, err := svc.AddLike(context.Background(), &blog.User{ID: 2}, 10)
	assert.ErrorIs(t, err, ErrAlreadyLiked)
}

func TestAddLikeMissingPost(t *testing.T) {
	posts := new(MockPostStore)
	posts.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	svc := newInteractionService(posts, new(MockInteractionStore), new(MockNotificationStore))
	_, err := svc.AddLike(context.Background(), &blog.User{ID: 2}, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveLikeTwice(t *testing.T) {
	posts := new(MockPostStore)
	posts.On("GetByID", mock.Anything, int64(10)).
		Return(&blog.BlogPost{ID: 10, AuthorID: 1}, nil)

	interactions := new(MockInteractionStore)
	interactions.On("DeleteLike", mock.Anything, int64(2), int64(10)).Return(nil).Once()
	interactions.On("DeleteLike", mock.Anything, int64(2), int64(10)).Return(repository.ErrNotFound).Once()

	svc := newInteractionService(posts, interactions, new(MockNotificationStore))
	require.NoError(t, svc.RemoveLike(context.Background(), &blog.User{ID: 2}, 10))
	assert.ErrorIs(t, svc.RemoveLike(context.Background(), &blog.User{ID: 2}, 10), ErrNotLiked)
}

// A failed notification write never fails the like itself.
func TestAddLikeSurvivesNotificationFailure(t *testing.T) {
	posts := new(MockPostStore)
	posts.On("GetByID", mock.Anything, int64(10)).
		Return(&blog.BlogPost{ID: 10, AuthorID: 1}, nil)

	interactions := new(MockInteractionStore)
	interactions.On("CreateLike", mock.Anything, int64(2), int64(10)).
		Return(&blog.Reaction{ID: 5}, nil)

	notifications := new(MockNotificationStore)
	notifications.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	svc := newInteractionService(posts, interactions, notifications)
	_, err := svc.AddLike(context.Background(), &blog.User{ID: 2, Username: "fan"}, 10)
	assert.NoError(t, err)
}

func TestAddBookmarkNoNotification(t *testing.T) {
	posts := new(MockPostStore)
	posts.On("GetByID", mock.Anything, int64(10)).
		Return(&blog.BlogPost{ID: 10, AuthorID: 1}, nil)

	interactions := new(MockInteractionStore)
	interactions.On("CreateBookmark", mock.Anything, int64(2), int64(10)).
		Return(&blog.Reaction{ID: 8, UserID: 2, BlogPostID: 10}, nil)

	notifications := new(MockNotificationStore)

	svc := newInteractionService(posts, interactions, notifications)
	reaction, err := svc.AddBookmark(context.Background(), &blog.User{ID: 2}, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(8), reaction.ID)
	notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddBookmarkDuplicate(t *testing.T) {
	posts := new(MockPostStore)
	posts.On("GetByID", mock.Anything, int64(10)).
		Return(&blog.BlogPost{ID: 10, AuthorID: 1}, nil)

	interactions := new(MockInteractionStore)
	interactions.On("CreateBookmark", mock.Anything, int64(2), int64(10)).
		Return(nil, &repository.DuplicateError{Constraint: "bookmarks_user_id_blog_post_id_key"})

	svc := newInteractionService(posts, interactions, new(MockNotificationStore))
	_, err := svc.AddBookmark(context.Background(), &blog.User{ID: 2}, 10)
	assert.ErrorIs(t, err, ErrAlreadyBookmarked)
}

func TestAddCommentStartsUnapproved(t *testing.T) {
	posts := new(MockPostStore)
	posts.On("GetByID", mock.Anything, int64(10)).
		Return(&blog.BlogPost{ID: 10, AuthorID: 1, Title: "A Post"}, nil)

	interactions := new(MockInteractionStore)
	interactions.On("CreateComment", mock.Anything, mock.MatchedBy(func(c *blog.Comment) bool {
		return !c.IsApproved && c.BlogPostID == 10 && c.AuthorID == 2
	})).Return(nil)

	notifications := new(MockNotificationStore)
	notifications.On("Create", mock.Anything, mock.MatchedBy(func(n *blog.Notification) bool {
		return n.Type == blog.NotificationComment && n.RecipientID == 1
	})).Return(nil).Once()

	svc := newInteractionService(posts, interactions, notifications)
	comment, err := svc.AddComment(context.Background(), &blog.User{ID: 2, Username: "fan"}, 10, "nice read", nil)

	require.NoError(t, err)
	assert.False(t, comment.IsApproved)
	notifications.AssertExpectations(t)
}

func TestAddCommentParentOnOtherPost(t *testing.T) {
	posts := new(MockPostStore)
	posts.On("GetByID", mock.Anything, int64(10)).
		Return(&blog.BlogPost{ID: 10, AuthorID: 1}, nil)

	interactions := new(MockInteractionStore)
	interactions.On("GetCommentByID", mock.Anything, int64(99)).
		Return(&blog.Comment{ID: 99, BlogPostID: 11}, nil)

	svc := newInteractionService(posts, interactions, new(MockNotificationStore))
	parentID := int64(99)
	_, err := svc.AddComment(context.Background(), &blog.User{ID: 2}, 10, "reply", &parentID)
	assert.ErrorIs(t, err, ErrParentMismatch)
}

func TestAddCommentMissingParent(t *testing.T) {
	posts := new(MockPostStore)
	posts.On("GetByID", mock.Anything, int64(10)).
		Return(&blog.BlogPost{ID: 10, AuthorID: 1}, nil)

	interactions := new(MockInteractionStore)
	interactions.On("GetCommentByID", mock.Anything, int64(99)).
		Return(nil, repository.ErrNotFound)

	svc := newInteractionService(posts, interactions, new(MockNotificationStore))
	parentID := int64(99)
	_, err := svc.AddComment(context.Background(), &blog.User{ID: 2}, 10, "reply", &parentID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Unapproved comments only disappear from the top level; approved roots
// still carry their unapproved replies.
func TestListCommentsModerationGate(t *testing.T) {
	posts := new(MockPostStore)
	posts.On("GetByID", mock.Anything, int64(10)).
		Return(&blog.BlogPost{ID: 10, AuthorID: 1}, nil)

	parent := int64(1)
	interactions := new(MockInteractionStore)
	interactions.On("ListCommentsByPost", mock.Anything, int64(10)).Return([]blog.Comment{
		{ID: 1, BlogPostID: 10, IsApproved: true},
		{ID: 2, BlogPostID: 10, IsApproved: false},
		{ID: 3, BlogPostID: 10, ParentID: &parent, IsApproved: false},
	}, nil)

	svc := newInteractionService(posts, interactions, new(MockNotificationStore))
	tree, err := svc.ListComments(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, int64(1), tree[0].ID)
	assert.Equal(t, 1, tree[0].RepliesCount)
}

func TestDeleteCommentAuthorOnly(t *testing.T) {
	interactions := new(MockInteractionStore)
	interactions.On("GetCommentByID", mock.Anything, int64(5)).
		Return(&blog.Comment{ID: 5, AuthorID: 2}, nil)
	interactions.On("DeleteComment", mock.Anything, int64(5)).Return(nil)

	svc := newInteractionService(new(MockPostStore), interactions, new(MockNotificationStore))

	assert.ErrorIs(t, svc.DeleteComment(context.Background(), &blog.User{ID: 3}, 5), ErrForbidden)
	assert.NoError(t, svc.DeleteComment(context.Background(), &blog.User{ID: 2}, 5))
}

func TestApproveComment(t *testing.T) {
	interactions := new(MockInteractionStore)
	interactions.On("ApproveComment", mock.Anything, int64(5)).Return(nil).Once()
	interactions.On("ApproveComment", mock.Anything, int64(6)).Return(repository.ErrNotFound).Once()

	svc := newInteractionService(new(MockPostStore), interactions, new(MockNotificationStore))

	assert.NoError(t, svc.ApproveComment(context.Background(), 5))
	assert.ErrorIs(t, svc.ApproveComment(context.Background(), 6), ErrNotFound)
}
