package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFallbackSessions builds a store in in-memory mode without dialing Redis.
func newFallbackSessions() *Sessions {
	return &Sessions{fallback: make(map[string]fallbackEntry)}
}

func TestSessionsPutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := newFallbackSessions()

	require.NoError(t, s.Put(ctx, "tok-1", 42, time.Hour))

	userID, err := s.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	require.NoError(t, s.Delete(ctx, "tok-1"))

	_, err = s.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionsUnknownToken(t *testing.T) {
	s := newFallbackSessions()
	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionsExpiry(t *testing.T) {
	ctx := context.Background()
	s := newFallbackSessions()

	require.NoError(t, s.Put(ctx, "tok-2", 7, -time.Second))

	_, err := s.Get(ctx, "tok-2")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionsDeleteUnknownIsNoop(t *testing.T) {
	s := newFallbackSessions()
	assert.NoError(t, s.Delete(context.Background(), "missing"))
}
