package memory

import (
	"context"
	"sync"
	"time"

	domainerrors "tradepost/contexts/identity-access/user-directory/domain/errors"
	"tradepost/contexts/identity-access/user-directory/ports"
)

// Store holds the user directory in memory, preserving registration order.
type Store struct {
	mu    sync.RWMutex
	users []ports.User
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) RegisterUser(ctx context.Context, input ports.RegisterUserInput, now time.Time) (ports.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.indexOf(input.Username); ok {
		return ports.User{}, domainerrors.ErrUserExists
	}
	user := ports.User{
		Username:      input.Username,
		Password:      input.Password,
		Role:          input.Role,
		Subscription:  ports.SubscriptionNone,
		ContactNumber: input.ContactNumber,
		CreatedAt:     now.UTC(),
	}
	s.users = append(s.users, user)
	return user, nil
}

func (s *Store) GetUser(ctx context.Context, username string) (ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.indexOf(username)
	if !ok {
		return ports.User{}, domainerrors.ErrUserNotFound
	}
	return s.users[i], nil
}

func (s *Store) ListUsers(ctx context.Context) ([]ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]ports.User(nil), s.users...), nil
}

func (s *Store) ListByRole(ctx context.Context, role ports.Role) ([]ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.User, 0)
	for _, user := range s.users {
		if user.Role == role {
			items = append(items, user)
		}
	}
	return items, nil
}

func (s *Store) SetSubscription(ctx context.Context, username string, subscription ports.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.indexOf(username)
	if !ok {
		return domainerrors.ErrUserNotFound
	}
	s.users[i].Subscription = subscription
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) indexOf(username string) (int, bool) {
	for i := range s.users {
		if s.users[i].Username == username {
			return i, true
		}
	}
	return 0, false
}

var _ ports.Repository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
