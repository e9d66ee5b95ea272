// File: services/intelligence/contextStore.go
package ai

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"travelagent/models"

	"github.com/go-redis/redis/v8"
)

const (
	aiContextPrefix = "ai:ctx:"
	maxHistoryTurns = 20
)

// ContextStore keeps the recent turns of a chat session.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) ([]models.ChatTurn, error)
	Append(ctx context.Context, sessionID string, turns ...models.ChatTurn) error
	Clear(ctx context.Context, sessionID string) error
}

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) ([]models.ChatTurn, error) {
	key := aiContextPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var turns []models.ChatTurn
	if err := json.Unmarshal([]byte(data), &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

// Append adds turns and refreshes the session TTL. Read-modify-write is not
// atomic; concurrent writers on one session may drop a turn.
func (s *RedisContextStore) Append(ctx context.Context, sessionID string, turns ...models.ChatTurn) error {
	history, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	history = trimHistory(append(history, turns...))
	b, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, aiContextPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, aiContextPrefix+sessionID).Err()
}

type memorySession struct {
	turns     []models.ChatTurn
	expiresAt time.Time
}

// MemoryContextStore is used when Redis is disabled.
type MemoryContextStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
	now      func() time.Time
}

func NewMemoryContextStore(ttl time.Duration) *MemoryContextStore {
	return &MemoryContextStore{ttl: ttl, sessions: map[string]memorySession{}, now: time.Now}
}

func (s *MemoryContextStore) Get(ctx context.Context, sessionID string) ([]models.ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	if s.now().After(sess.expiresAt) {
		delete(s.sessions, sessionID)
		return nil, nil
	}
	out := make([]models.ChatTurn, len(sess.turns))
	copy(out, sess.turns)
	return out, nil
}

func (s *MemoryContextStore) Append(ctx context.Context, sessionID string, turns ...models.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, id)
		}
	}

	sess := s.sessions[sessionID]
	sess.turns = trimHistory(append(sess.turns, turns...))
	sess.expiresAt = now.Add(s.ttl)
	s.sessions[sessionID] = sess
	return nil
}

func (s *MemoryContextStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func trimHistory(turns []models.ChatTurn) []models.ChatTurn {
	if len(turns) > maxHistoryTurns {
		return turns[len(turns)-maxHistoryTurns:]
	}
	return turns
}
