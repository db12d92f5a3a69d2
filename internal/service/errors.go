package service

import "errors"

// Domain errors surfaced to the API layer, which maps them onto HTTP
// statuses: validation and state conflicts to 400, credential problems
// to 401, ownership violations to 403, missing rows to 404.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("you do not have permission to perform this action")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrEmailTaken    = errors.New("a user with this email already exists")
	ErrUsernameTaken = errors.New("a user with this username already exists")
	ErrSlugTaken     = errors.New("this slug is already in use")

	ErrAlreadyLiked      = errors.New("you have already liked this post")
	ErrNotLiked          = errors.New("you have not liked this post")
	ErrAlreadyBookmarked = errors.New("you have already bookmarked this post")
	ErrNotBookmarked     = errors.New("you have not bookmarked this post")

	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrParentMismatch    = errors.New("parent comment does not belong to this post")
)
