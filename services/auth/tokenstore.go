package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"catering/utils"

	"github.com/go-redis/redis/v8"
)

// ErrTokenUnknown means the token hash is not registered or has expired.
var ErrTokenUnknown = errors.New("token not registered")

// TokenStore records live session token hashes so sign-out can revoke them.
type TokenStore interface {
	Save(ctx context.Context, tokenHash, userID string, ttl time.Duration) error
	// Lookup returns the user a live token hash belongs to.
	Lookup(ctx context.Context, tokenHash string) (string, error)
	Revoke(ctx context.Context, tokenHash string) error
}

// RedisTokenStore keeps token hashes in Redis under utils.AuthCachePrefix.
type RedisTokenStore struct {
	Client *redis.Client
}

func (s *RedisTokenStore) Save(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	return s.Client.Set(ctx, utils.AuthCachePrefix+tokenHash, userID, ttl).Err()
}

func (s *RedisTokenStore) Lookup(ctx context.Context, tokenHash string) (string, error) {
	userID, err := s.Client.Get(ctx, utils.AuthCachePrefix+tokenHash).Result()
	if err == redis.Nil {
		return "", ErrTokenUnknown
	}
	return userID, err
}

func (s *RedisTokenStore) Revoke(ctx context.Context, tokenHash string) error {
	return s.Client.Del(ctx, utils.AuthCachePrefix+tokenHash).Err()
}

type memoryToken struct {
	userID    string
	expiresAt time.Time
}

// MemoryTokenStore keeps token hashes in process memory.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]memoryToken
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]memoryToken)}
}

func (s *MemoryTokenStore) Save(_ context.Context, tokenHash, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for h, t := range s.tokens {
		if now.After(t.expiresAt) {
			delete(s.tokens, h)
		}
	}
	s.tokens[tokenHash] = memoryToken{userID: userID, expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryTokenStore) Lookup(_ context.Context, tokenHash string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[tokenHash]
	if !ok || time.Now().After(t.expiresAt) {
		return "", ErrTokenUnknown
	}
	return t.userID, nil
}

func (s *MemoryTokenStore) Revoke(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, tokenHash)
	return nil
}
