package blog

import "time"

// Status is the lifecycle state shared by blog posts and promotions.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// CanTransition reports whether a status change is allowed. Same-state
// transitions are permitted so that re-publishing is a no-op instead of
// an error; published content can only move forward to archived.
func (s Status) CanTransition(to Status) bool {
	if s == to {
		return true
	}
	switch s {
	case StatusDraft:
		return to == StatusPublished || to == StatusArchived
	case StatusPublished:
		return to == StatusArchived
	default:
		return false
	}
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type NotificationType string

const (
	NotificationLike     NotificationType = "like"
	NotificationComment  NotificationType = "comment"
	NotificationBookmark NotificationType = "bookmark"
	NotificationReview   NotificationType = "review"
)

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Bio          string    `json:"bio" db:"bio"`
	Photo        string    `json:"photo" db:"photo"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

type BlogPost struct {
	ID            int64      `json:"id" db:"id"`
	AuthorID      int64      `json:"author_id" db:"author_id"`
	Title         string     `json:"title" db:"title"`
	Slug          string     `json:"slug" db:"slug"`
	Content       string     `json:"content" db:"content"`
	Excerpt       string     `json:"excerpt" db:"excerpt"`
	Status        Status     `json:"status" db:"status"`
	ReadTime      int        `json:"read_time" db:"read_time"`
	FeaturedImage string     `json:"featured_image,omitempty" db:"featured_image"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
	PublishedAt   *time.Time `json:"published_at,omitempty" db:"published_at"`
}

type Promotion struct {
	ID        int64     `json:"id" db:"id"`
	AuthorID  int64     `json:"author_id" db:"author_id"`
	Slogan    string    `json:"slogan" db:"slogan"`
	Slug      string    `json:"slug" db:"slug"`
	Content   string    `json:"content" db:"content"`
	Status    Status    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type Comment struct {
	ID         int64     `json:"id" db:"id"`
	BlogPostID int64     `json:"blog_post_id" db:"blog_post_id"`
	AuthorID   int64     `json:"author_id" db:"author_id"`
	ParentID   *int64    `json:"parent,omitempty" db:"parent_id"`
	Content    string    `json:"content" db:"content"`
	IsApproved bool      `json:"is_approved" db:"is_approved"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Reaction is a like or bookmark row. At most one exists per
// (user, blog post) pair, enforced by a unique index.
type Reaction struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	BlogPostID int64     `json:"blog_post" db:"blog_post_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type Notification struct {
	ID          int64            `json:"id" db:"id"`
	RecipientID int64            `json:"recipient_id" db:"recipient_id"`
	SenderID    *int64           `json:"sender_id,omitempty" db:"sender_id"`
	Type        NotificationType `json:"notification_type" db:"notification_type"`
	BlogPostID  *int64           `json:"blog_post_id,omitempty" db:"blog_post_id"`
	CommentID   *int64           `json:"comment_id,omitempty" db:"comment_id"`
	Message     string           `json:"message" db:"message"`
	IsRead      bool             `json:"is_read" db:"is_read"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
}
