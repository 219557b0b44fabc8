package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PEREIRAD01/backend-Pitstoppro/models"
	"github.com/PEREIRAD01/backend-Pitstoppro/repositories"
)

const userCacheTTL = 5 * time.Minute

// cachedUser is the projection stored in Redis. The password hash stays in
// Postgres only.
type cachedUser struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// CachedUserStore wraps a UserStore with a Redis read-through cache for
// by-id lookups. Accounts are never mutated by this API, so cached entries
// cannot go stale; the TTL only bounds how long a deleted account keeps
// resolving. Lookups by email bypass the cache because login needs the
// stored hash.
type CachedUserStore struct {
	inner repositories.UserStore
	rdb   *redis.Client
}

func NewCachedUserStore(inner repositories.UserStore, rdb *redis.Client) *CachedUserStore {
	return &CachedUserStore{inner: inner, rdb: rdb}
}

func userCacheKey(id uint) string {
	return fmt.Sprintf("cache:user:%d", id)
}

func (s *CachedUserStore) Create(user *models.User) error {
	return s.inner.Create(user)
}

func (s *CachedUserStore) FindByEmail(email string) (*models.User, error) {
	return s.inner.FindByEmail(email)
}

func (s *CachedUserStore) FindByID(id uint) (*models.User, error) {
	ctx := context.Background()
	key := userCacheKey(id)

	data, err := s.rdb.Get(ctx, key).Result()
	if err == nil {
		var cached cachedUser
		if err := json.Unmarshal([]byte(data), &cached); err == nil {
			return &models.User{ID: cached.ID, Email: cached.Email, DisplayName: cached.DisplayName}, nil
		}
		log.Printf("Dropping unreadable cache entry %s", key)
		s.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("Redis lookup failed for %s, falling back to database: %v", key, err)
	}

	user, err := s.inner.FindByID(id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedUser{ID: user.ID, Email: user.Email, DisplayName: user.DisplayName})
	if err == nil {
		if err := s.rdb.Set(ctx, key, payload, userCacheTTL).Err(); err != nil {
			log.Printf("Failed to cache user %d: %v", id, err)
		}
	}
	return user, nil
}
