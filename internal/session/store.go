package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const defaultTTL = 2 * time.Hour

// Store keeps per-quiz asked-question history in Redis, keyed by a
// client-held session token. History is ephemeral: it expires after
// the TTL and losing it only means a player might see a repeat.
type Store struct {
	redis  *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewStore creates a session store. A non-positive ttl falls back to
// the default.
func NewStore(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		redis:  client,
		ttl:    ttl,
		logger: logger.With().Str("component", "quiz_session").Logger(),
	}
}

// NewToken mints a fresh session token. Sessions are created lazily:
// the token only gains state on the first Append.
func NewToken() string {
	return uuid.NewString()
}

func (s *Store) key(token string) string {
	return fmt.Sprintf("quiz:session:%s", token)
}

// History returns the ids already asked in this session. An unknown
// token is an empty history, not an error.
func (s *Store) History(ctx context.Context, token string) ([]int, error) {
	data, err := s.redis.Get(ctx, s.key(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return ids, nil
}

// Append records a newly drawn question id and refreshes the TTL.
func (s *Store) Append(ctx context.Context, token string, questionID int) error {
	ids, err := s.History(ctx, token)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == questionID {
			return nil
		}
	}
	ids = append(ids, questionID)

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.redis.Set(ctx, s.key(token), data, s.ttl).Err()
}

// Clear drops a session's history.
func (s *Store) Clear(ctx context.Context, token string) error {
	return s.redis.Del(ctx, s.key(token)).Err()
}
