package service

import (
	"context"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(string)   {}
func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

type recordingLogger struct {
	nopLogger
	mu       sync.Mutex
	warnings []string
}

func (l *recordingLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

type memWalkStore struct {
	mu    sync.Mutex
	locks sync.Map
	walks map[uuid.UUID]domain.Walk
	ttls  map[uuid.UUID]time.Duration
}

func newMemWalkStore() *memWalkStore {
	return &memWalkStore{
		walks: map[uuid.UUID]domain.Walk{},
		ttls:  map[uuid.UUID]time.Duration{},
	}
}

func (s *memWalkStore) Save(_ context.Context, walk *domain.Walk, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walks[walk.ID] = *walk
	s.ttls[walk.ID] = ttl
	return nil
}

func (s *memWalkStore) Update(_ context.Context, walk *domain.Walk, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.walks[walk.ID]; !ok {
		return domain.ErrWalkNotFound
	}
	s.walks[walk.ID] = *walk
	s.ttls[walk.ID] = ttl
	return nil
}

func (s *memWalkStore) ByID(_ context.Context, id uuid.UUID) (*domain.Walk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	walk, ok := s.walks[id]
	if !ok {
		return nil, domain.ErrWalkNotFound
	}
	return &walk, nil
}

func (s *memWalkStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.walks, id)
	delete(s.ttls, id)
	return nil
}

func (s *memWalkStore) Lock(_ context.Context, id uuid.UUID) (func() error, error) {
	m, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return func() error {
		mu.Unlock()
		return nil
	}, nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]*domain.User{}}
}

func (r *memUserRepo) Save(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if u.Username == user.Username && id != user.ID {
			return domain.ErrUsernameConflict
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) ByID(id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) ByUsername(username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) IncrementWalksDone(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.WalksDone++
	return nil
}
