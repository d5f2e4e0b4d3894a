package services

import (
	"context"
	"errors"
	"log"
	"time"

	"StorefrontAPI/internal/cache"
	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type SessionRepo interface {
	Save(ctx context.Context, s *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionService is the persisted session store: a Postgres repository as
// the durable side, a Redis cache in front. Sessions survive restarts; the
// cart does not.
type SessionService struct {
	repo  SessionRepo
	cache cache.SessionCache
	sfg   singleflight.Group // collapses concurrent lookups on cache miss
}

func NewSessionService(repo SessionRepo, cache cache.SessionCache) *SessionService {
	return &SessionService{repo: repo, cache: cache}
}

// Create persists a fresh session for a successful login and returns it.
// The id handed to clients is opaque; the backend token never leaves the
// store.
func (s *SessionService) Create(ctx context.Context, token, userID, userName, userEmail string) (*model.Session, error) {
	sess := &model.Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    userID,
		UserName:  userName,
		UserEmail: userEmail,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, sess); err != nil {
		log.Printf("session cache set error: %v", err)
	}
	return sess, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*model.Session, error) {
	v, err, _ := s.sfg.Do(id, func() (interface{}, error) {
		sess, err := s.cache.Get(ctx, id)
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("session cache get error: %v", err)
		}

		sess, err = s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if errSet := s.cache.Set(ctx, sess); errSet != nil {
				log.Printf("session cache set error: %v", errSet)
			}
		}()

		return sess, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Session), nil
}

// Destroy removes the durable entry and the cached copy. Destroying an
// absent session is fine.
func (s *SessionService) Destroy(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return err
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		log.Printf("session cache delete error: %v", err)
	}
	return nil
}
