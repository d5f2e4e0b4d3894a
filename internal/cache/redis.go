package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/redis/go-redis/v9"
)

func NewRedisCache(client *redis.Client, baseTTL time.Duration) *RedisCache {
	if baseTTL <= 0 {
		baseTTL = 15 * time.Minute
	}
	return &RedisCache{
		client:  client,
		baseTTL: baseTTL,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

// cached fields mirror model.Session; Token needs an explicit tag because
// the model never JSON-encodes it for clients.
type cachedSession struct {
	ID        string    `json:"session_id"`
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *RedisCache) Get(ctx context.Context, id string) (*model.Session, error) {
	data, err := r.client.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var c cachedSession
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal session failed: %w", err)
	}
	return &model.Session{
		ID:        c.ID,
		Token:     c.Token,
		UserID:    c.UserID,
		UserName:  c.UserName,
		UserEmail: c.UserEmail,
		CreatedAt: c.CreatedAt,
	}, nil
}

func (r *RedisCache) Set(ctx context.Context, s *model.Session) error {
	data, err := json.Marshal(cachedSession{
		ID:        s.ID,
		Token:     s.Token,
		UserID:    s.UserID,
		UserName:  s.UserName,
		UserEmail: s.UserEmail,
		CreatedAt: s.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}

	// jitter spreads expiry so sessions don't fall out of cache together
	ttl := r.baseTTL + time.Duration(rand.Intn(300))*time.Second
	if err := r.client.Set(ctx, cacheKey(s.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cacheKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}
