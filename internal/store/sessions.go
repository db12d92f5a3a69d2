package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/inkwell/inkwell-backend/internal/metrics"
)

var ErrSessionNotFound = errors.New("session not found")

const sessionKeyPrefix = "ink:session:"

// Sessions tracks the refresh tokens that are still valid. A refresh
// token is only honored while its ID is present here, which makes
// rotation and revocation possible. Backed by Redis when available,
// with an in-process fallback so dev environments run without one.
type Sessions struct {
	client *redis.Client

	mu       sync.Mutex
	fallback map[string]fallbackEntry

	logger  *zap.SugaredLogger
	metrics *metrics.Metrics
}

type fallbackEntry struct {
	userID    int64
	expiresAt time.Time
}

func NewSessions(addr string, logger *zap.SugaredLogger, metrics *metrics.Metrics) *Sessions {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Warnw("Redis unavailable; using in-memory session store", "error", err)
		}
		return &Sessions{
			fallback: make(map[string]fallbackEntry),
			logger:   logger,
			metrics:  metrics,
		}
	}

	return &Sessions{
		client:  client,
		logger:  logger,
		metrics: metrics,
	}
}

// Put registers a refresh token ID for the user with the given TTL.
func (s *Sessions) Put(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	if s.client != nil {
		if err := s.client.Set(ctx, sessionKeyPrefix+tokenID, userID, ttl).Err(); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback[tokenID] = fallbackEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Get returns the user ID the refresh token was issued to, or
// ErrSessionNotFound when the token is unknown, revoked, or expired.
func (s *Sessions) Get(ctx context.Context, tokenID string) (int64, error) {
	if s.client != nil {
		userID, err := s.client.Get(ctx, sessionKeyPrefix+tokenID).Int64()
		if err != nil {
			if err == redis.Nil {
				s.recordMiss(ctx)
				return 0, ErrSessionNotFound
			}
			return 0, fmt.Errorf("failed to read session: %w", err)
		}
		s.recordHit(ctx)
		return userID, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.fallback[tokenID]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.fallback, tokenID)
		s.recordMiss(ctx)
		return 0, ErrSessionNotFound
	}
	s.recordHit(ctx)
	return entry.userID, nil
}

// Delete revokes a refresh token. Deleting an unknown token is a no-op.
func (s *Sessions) Delete(ctx context.Context, tokenID string) error {
	if s.client != nil {
		if err := s.client.Del(ctx, sessionKeyPrefix+tokenID).Err(); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fallback, tokenID)
	return nil
}

func (s *Sessions) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

func (s *Sessions) Ping(ctx context.Context) error {
	if s.client != nil {
		return s.client.Ping(ctx).Err()
	}
	return nil
}

func (s *Sessions) recordHit(ctx context.Context) {
	if s.metrics != nil {
		s.metrics.RecordSessionHit(ctx)
	}
}

func (s *Sessions) recordMiss(ctx context.Context) {
	if s.metrics != nil {
		s.metrics.RecordSessionMiss(ctx)
	}
}
