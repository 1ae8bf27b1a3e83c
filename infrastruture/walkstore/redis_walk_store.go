package walkstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "walk:"
	lockSuffix = ":lock"
	lockExpiry = 5 * time.Second
)

// ErrLockLost reports a walk lock that expired or was taken over before release.
var ErrLockLost = errors.New("walk lock lost before release")

// RedisWalkStore keeps walks as JSON values in Redis with an expiry.
type RedisWalkStore struct {
	client *redis.Client
	locker *redsync.Redsync
}

var _ i.WalkStore = &RedisWalkStore{}

// NewRedisWalkStore initializes a RedisWalkStore with the provided Redis client.
func NewRedisWalkStore(client *redis.Client) *RedisWalkStore {
	pool := goredis.NewPool(client)
	return &RedisWalkStore{
		client: client,
		locker: redsync.New(pool),
	}
}

func walkKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// Save stores the walk and resets its time to live.
func (s *RedisWalkStore) Save(ctx context.Context, walk *domain.Walk, ttl time.Duration) error {
	data, err := json.Marshal(walk)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, walkKey(walk.ID), data, ttl).Err()
}

// Update overwrites an existing walk with SET XX, so a deleted or expired walk is never
// recreated.
func (s *RedisWalkStore) Update(ctx context.Context, walk *domain.Walk, ttl time.Duration) error {
	data, err := json.Marshal(walk)
	if err != nil {
		return err
	}
	ok, err := s.client.SetXX(ctx, walkKey(walk.ID), data, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrWalkNotFound
	}
	return nil
}

// ByID loads a walk, returning domain.ErrWalkNotFound when the key is gone.
func (s *RedisWalkStore) ByID(ctx context.Context, id uuid.UUID) (*domain.Walk, error) {
	data, err := s.client.Get(ctx, walkKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrWalkNotFound
		}
		return nil, err
	}

	var walk domain.Walk
	if err := json.Unmarshal(data, &walk); err != nil {
		return nil, err
	}
	return &walk, nil
}

// Delete removes a walk.
func (s *RedisWalkStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, walkKey(id)).Err()
}

// Lock takes a distributed lock on one walk. The lock expires on its own after a few
// seconds; releasing it afterwards returns ErrLockLost.
func (s *RedisWalkStore) Lock(ctx context.Context, id uuid.UUID) (func() error, error) {
	mutex := s.locker.NewMutex(walkKey(id)+lockSuffix, redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() error {
		ok, err := mutex.Unlock()
		if err != nil {
			return fmt.Errorf("%w: %s", ErrLockLost, err)
		}
		if !ok {
			return ErrLockLost
		}
		return nil
	}, nil
}
