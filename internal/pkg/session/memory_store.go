package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	// Expired sessions are purged every 10 minutes
	return &MemoryStore{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (s *MemoryStore) Save(ctx context.Context, session *Session) error {
	s.cache.Set(session.Id, session, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, sessionId string) (*Session, error) {
	if x, found := s.cache.Get(sessionId); found {
		return x.(*Session), nil
	}
	return nil, nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionId string) error {
	s.cache.Delete(sessionId)
	return nil
}
