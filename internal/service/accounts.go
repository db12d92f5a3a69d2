package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/inkwell/inkwell-backend/internal/auth"
	"github.com/inkwell/inkwell-backend/internal/blog"
	"github.com/inkwell/inkwell-backend/internal/repository"
)

// AccountService handles registration, the credential/token exchange
// and profile management.
type AccountService struct {
	users    UserStore
	tokens   *auth.Tokens
	sessions SessionStore
	logger   *zap.SugaredLogger
}

func NewAccountService(users UserStore, tokens *auth.Tokens, sessions SessionStore, logger *zap.SugaredLogger) *AccountService {
	return &AccountService{
		users:    users,
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Bio       string
	Photo     string
}

type UpdateProfileInput struct {
	Username  *string
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Bio       *string
	Photo     *string
}

func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*blog.User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &blog.User{
		Username:     in.Username,
		Email:        strings.ToLower(in.Email),
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Bio:          in.Bio,
		Photo:        in.Photo,
		Role:         blog.RoleUser, // never taken from the request
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, mapUserDuplicate(err)
	}

	s.logger.Infow("User registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login exchanges credentials for a token pair. Unknown email and
// wrong password take the same path so the response cannot be used to
// enumerate accounts.
func (s *AccountService) Login(ctx context.Context, email, password string) (*blog.User, *auth.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Infow("User logged in", "user_id", user.ID)
	return user, pair, nil
}

// Refresh rotates a refresh token: the presented token must verify and
// still be registered in the session store, and is revoked once a new
// pair is issued.
func (s *AccountService) Refresh(ctx context.Context, refreshToken string) (*blog.User, *auth.TokenPair, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, nil, ErrInvalidToken
	}

	userID, err := s.sessions.Get(ctx, claims.ID)
	if err != nil || userID != claims.UserID {
		return nil, nil, ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidToken
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.sessions.Delete(ctx, claims.ID); err != nil {
		s.logger.Warnw("Failed to revoke refresh token", "error", err)
	}

	pair, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

func (s *AccountService) issueSession(ctx context.Context, user *blog.User) (*auth.TokenPair, error) {
	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	if err := s.sessions.Put(ctx, pair.RefreshID, user.ID, pair.RefreshExpires); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return pair, nil
}

func (s *AccountService) GetUser(ctx context.Context, id int64) (*blog.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial update to the caller's own profile.
// Uniqueness of email and username is enforced the same way as at
// registration.
func (s *AccountService) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (*blog.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = strings.ToLower(*in.Email)
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Photo != nil {
		user.Photo = *in.Photo
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, mapUserDuplicate(err)
	}

	return user, nil
}

// ForgotPassword intentionally reports success regardless of whether
// the email is known, so the endpoint cannot be used to probe for
// accounts. The lookup result only steers logging.
func (s *AccountService) ForgotPassword(ctx context.Context, email string) {
	_, err := s.users.GetByEmail(ctx, strings.ToLower(email))
	switch {
	case err == nil:
		// A reset email would be dispatched here.
		s.logger.Infow("Password reset requested", "email", email)
	case errors.Is(err, repository.ErrNotFound):
		s.logger.Infow("Password reset requested for unknown email")
	default:
		s.logger.Errorw("Password reset lookup failed", "error", err)
	}
}

func mapUserDuplicate(err error) error {
	var dup *repository.DuplicateError
	if errors.As(err, &dup) {
		if strings.Contains(dup.Constraint, "email") {
			return ErrEmailTaken
		}
		return ErrUsernameTaken
	}
	return fmt.Errorf("failed to save user: %w", err)
}
