package api

import (
	"github.com/inkwell/inkwell-backend/internal/blog"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse wraps mutations that have no richer payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// Mutation envelopes: every write that yields a resource returns a
// message alongside it.

type UserResponse struct {
	Message string     `json:"message"`
	User    *blog.User `json:"user"`
}

type PostResponse struct {
	Message string         `json:"message"`
	Post    *blog.BlogPost `json:"post"`
}

type PromotionResponse struct {
	Message   string          `json:"message"`
	Promotion *blog.Promotion `json:"promotion"`
}

type ReactionResponse struct {
	Message  string         `json:"message"`
	Reaction *blog.Reaction `json:"reaction"`
}

type CommentResponse struct {
	Message string        `json:"message"`
	Comment *blog.Comment `json:"comment"`
}

// Auth

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"max=64"`
	LastName  string `json:"last_name" validate:"max=64"`
	Bio       string `json:"bio" validate:"max=1024"`
	Photo     string `json:"photo" validate:"max=512"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenResponse struct {
	Message string     `json:"message"`
	Access  string     `json:"access"`
	Refresh string     `json:"refresh"`
	User    *blog.User `json:"user"`
}

type UpdateProfileRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=64"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=8,max=128"`
	FirstName *string `json:"first_name" validate:"omitempty,max=64"`
	LastName  *string `json:"last_name" validate:"omitempty,max=64"`
	Bio       *string `json:"bio" validate:"omitempty,max=1024"`
	Photo     *string `json:"photo" validate:"omitempty,max=512"`
}

// Content

type CreatePostRequest struct {
	Title         string `json:"title" validate:"required,max=255"`
	Slug          string `json:"slug" validate:"omitempty,max=255"`
	Content       string `json:"content" validate:"required"`
	Excerpt       string `json:"excerpt" validate:"max=512"`
	Status        string `json:"status" validate:"omitempty,oneof=draft published archived"`
	ReadTime      int    `json:"read_time" validate:"omitempty,min=0"`
	FeaturedImage string `json:"featured_image" validate:"omitempty,max=512"`
}

type UpdatePostRequest struct {
	Title         *string `json:"title" validate:"omitempty,max=255"`
	Slug          *string `json:"slug" validate:"omitempty,max=255"`
	Content       *string `json:"content"`
	Excerpt       *string `json:"excerpt" validate:"omitempty,max=512"`
	ReadTime      *int    `json:"read_time" validate:"omitempty,min=0"`
	FeaturedImage *string `json:"featured_image" validate:"omitempty,max=512"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published archived"`
}

// PostDetailResponse is the published-post view: the post itself, its
// author's public profile, the approved comment tree and the
// interaction counts.
type PostDetailResponse struct {
	*blog.BlogPost
	Author   *blog.User          `json:"author"`
	Comments []*blog.CommentNode `json:"comments"`
	Counts   CountsDTO           `json:"counts"`
}

type CountsDTO struct {
	Likes     int64 `json:"likes"`
	Bookmarks int64 `json:"bookmarks"`
	Comments  int64 `json:"comments"`
}

type CreatePromotionRequest struct {
	Slogan  string `json:"slogan" validate:"required,max=255"`
	Slug    string `json:"slug" validate:"omitempty,max=255"`
	Content string `json:"content" validate:"required"`
	Status  string `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type UpdatePromotionRequest struct {
	Slogan  *string `json:"slogan" validate:"omitempty,max=255"`
	Slug    *string `json:"slug" validate:"omitempty,max=255"`
	Content *string `json:"content"`
	Status  *string `json:"status" validate:"omitempty,oneof=draft published archived"`
}

// Interactions

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=4096"`
	Parent  *int64 `json:"parent" validate:"omitempty,min=1"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// Media

type MediaResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
