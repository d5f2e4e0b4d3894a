package cache

import (
	"context"
	"errors"

	"StorefrontAPI/internal/model"
)

type SessionCache interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Set(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, id string) error
}

var ErrCacheMiss = errors.New("cache miss")
