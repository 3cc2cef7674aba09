package scope

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = 30 * 24 * time.Hour

// SessionStore keeps each admin's active-disaster pointer in Redis.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore connects to Redis and verifies the connection.
func NewSessionStore(addr, password string) (*SessionStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &SessionStore{client: rdb}, nil
}

func sessionKey(userID string) string {
	return fmt.Sprintf("scope:admin:%s", userID)
}

// Set stores the admin's active-disaster pointer. The pointer is written
// with a single HSET so a concurrent Get never observes a half-switched
// scope.
func (s *SessionStore) Set(ctx context.Context, userID string, sc DisasterScope) error {
	if s == nil || s.client == nil {
		return nil
	}
	key := sessionKey(userID)

	fields := map[string]any{
		"disaster_id": sc.DisasterID,
		"name":        sc.Name,
	}
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, sessionTTL).Err()
}

// Get returns the admin's scope. A missing key yields the zero scope and
// no error: the caller's queries fail closed.
func (s *SessionStore) Get(ctx context.Context, userID string) (DisasterScope, error) {
	if s == nil || s.client == nil {
		return DisasterScope{}, nil
	}

	vals, err := s.client.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return DisasterScope{}, err
	}
	if len(vals) == 0 {
		return DisasterScope{}, nil
	}

	id, err := strconv.ParseInt(vals["disaster_id"], 10, 64)
	if err != nil {
		return DisasterScope{}, fmt.Errorf("corrupt session scope for %s: %w", userID, err)
	}
	return DisasterScope{DisasterID: id, Name: vals["name"]}, nil
}

// Clear drops the admin's pointer.
func (s *SessionStore) Clear(ctx context.Context, userID string) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Del(ctx, sessionKey(userID)).Err()
}
