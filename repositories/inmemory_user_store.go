package repositories

import (
	"sync"
	"time"

	"github.com/PEREIRAD01/backend-Pitstoppro/models"
)

// InMemoryUserStore is a map-backed UserStore for tests.
type InMemoryUserStore struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]models.User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		nextID: 1,
		users:  make(map[uint]models.User),
	}
}

func (s *InMemoryUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrEmailExists
		}
	}
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *InMemoryUserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryUserStore) FindByID(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	user := u
	return &user, nil
}

// Delete removes a user. The API never deletes users; tests use this to
// simulate an account removed after a token was issued.
func (s *InMemoryUserStore) Delete(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}
