package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultWalkTTL      = time.Hour
	defaultMaxDimension = 100
)

var (
	ErrWalkForbidden = errors.New("walk belongs to another user")
	ErrWalkFinished  = errors.New("walk already reached the goal")
	ErrMazeTooLarge  = errors.New("maze dimensions exceed the allowed maximum")
)

// WalkerOptions tunes a Walker. Zero values take the defaults.
type WalkerOptions struct {
	TTL          time.Duration // Idle lifetime of a walk
	MaxDimension int           // Largest accepted row or column count
	Seeds        func() int64  // Seed source for walks that do not bring one
}

// Walker runs walks: each one regenerates its maze from the stored seed, so only the
// walker position and counters change over time.
type Walker struct {
	store  i.WalkStore
	users  i.UserRepo
	logger i.Logger
	opts   *WalkerOptions
}

var _ i.WalkService = &Walker{}

// NewWalker creates a Walker over the given store.
func NewWalker(store i.WalkStore, users i.UserRepo, logger i.Logger, opts *WalkerOptions) (*Walker, error) {
	if store == nil || users == nil || logger == nil {
		return nil, errors.New("walker: nil dependency")
	}

	if opts == nil {
		opts = &WalkerOptions{}
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultWalkTTL
	}
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}
	if opts.Seeds == nil {
		opts.Seeds = randomSeed
	}

	return &Walker{
		store:  store,
		users:  users,
		logger: logger,
		opts:   opts,
	}, nil
}

// randomSeed draws a non-zero seed; zero means "time based" to maze.New.
func randomSeed() int64 {
	for {
		if s := rand.Int63(); s != 0 {
			return s
		}
	}
}

// Start validates the request, carves the maze and stores a walk on its start cell.
func (w *Walker) Start(ctx context.Context, owner uuid.UUID, req i.WalkRequest) (*domain.Walk, *maze.Maze, error) {
	if req.Rows > w.opts.MaxDimension || req.Cols > w.opts.MaxDimension {
		return nil, nil, fmt.Errorf("%w: %dx%d > %d", ErrMazeTooLarge, req.Rows, req.Cols, w.opts.MaxDimension)
	}

	seed := req.Seed
	if seed == 0 {
		seed = w.opts.Seeds()
	}

	m, err := maze.New(req.Rows, req.Cols, &maze.Options{Start: req.Start, Goal: req.Goal, Seed: seed})
	if err != nil {
		return nil, nil, err
	}

	walk := &domain.Walk{
		ID:        uuid.New(),
		OwnerID:   owner,
		Rows:      m.Rows(),
		Cols:      m.Cols(),
		Start:     m.Start(),
		Goal:      m.Goal(),
		Seed:      seed,
		Position:  m.Start(),
		Finished:  m.Start() == m.Goal(),
		CreatedAt: time.Now().UTC(),
	}

	if err := w.store.Save(ctx, walk, w.opts.TTL); err != nil {
		w.logger.Error(fmt.Sprintf("saving walk %s: %s", walk.ID, err))
		return nil, nil, err
	}

	w.logger.Info(fmt.Sprintf("walk %s started by %s on a %dx%d maze", walk.ID, owner, walk.Rows, walk.Cols))
	return walk, m, nil
}

// Get loads one of the owner's walks and regenerates its maze.
func (w *Walker) Get(ctx context.Context, owner, id uuid.UUID) (*domain.Walk, *maze.Maze, error) {
	walk, err := w.load(ctx, owner, id)
	if err != nil {
		return nil, nil, err
	}

	m, err := walk.Maze()
	if err != nil {
		return nil, nil, err
	}
	return walk, m, nil
}

// Move tries one step from the walk's position. A blocked step is not an error: it
// returns false and leaves the walk untouched.
func (w *Walker) Move(ctx context.Context, owner, id uuid.UUID, d maze.Direction) (bool, *domain.Walk, error) {
	if !d.Valid() {
		return false, nil, fmt.Errorf("%w: %d", maze.ErrInvalidDirection, int(d))
	}

	// Only the owner may hold the lock.
	if _, err := w.load(ctx, owner, id); err != nil {
		return false, nil, err
	}

	unlock, err := w.lock(ctx, id)
	if err != nil {
		return false, nil, err
	}
	defer unlock()

	walk, m, err := w.Get(ctx, owner, id)
	if err != nil {
		return false, nil, err
	}
	if walk.Finished {
		return false, walk, ErrWalkFinished
	}

	moved, next := m.Move(walk.Position, d)
	if !moved {
		w.logger.Debug(fmt.Sprintf("walk %s blocked going %s from %s", id, d, walk.Position))
		return false, walk, nil
	}

	walk.Advance(next)
	if err := w.store.Update(ctx, walk, w.opts.TTL); err != nil {
		w.logger.Error(fmt.Sprintf("saving walk %s: %s", id, err))
		return false, nil, err
	}

	if walk.Finished {
		w.logger.Info(fmt.Sprintf("walk %s reached the goal in %d steps", id, walk.Steps))
		if err := w.users.IncrementWalksDone(owner); err != nil {
			w.logger.Warning(fmt.Sprintf("counting finished walk for %s: %s", owner, err))
		}
	}

	return true, walk, nil
}

// Delete abandons one of the owner's walks. It waits for any move in progress.
func (w *Walker) Delete(ctx context.Context, owner, id uuid.UUID) error {
	if _, err := w.load(ctx, owner, id); err != nil {
		return err
	}

	unlock, err := w.lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	if err := w.store.Delete(ctx, id); err != nil {
		w.logger.Error(fmt.Sprintf("deleting walk %s: %s", id, err))
		return err
	}
	w.logger.Info(fmt.Sprintf("walk %s deleted", id))
	return nil
}

// lock takes the walk lock. The returned release logs a lock lost before release.
func (w *Walker) lock(ctx context.Context, id uuid.UUID) (func(), error) {
	unlock, err := w.store.Lock(ctx, id)
	if err != nil {
		w.logger.Error(fmt.Sprintf("locking walk %s: %s", id, err))
		return nil, err
	}
	return func() {
		if err := unlock(); err != nil {
			w.logger.Warning(fmt.Sprintf("releasing walk %s: %s", id, err))
		}
	}, nil
}

func (w *Walker) load(ctx context.Context, owner, id uuid.UUID) (*domain.Walk, error) {
	walk, err := w.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if walk.OwnerID != owner {
		return nil, ErrWalkForbidden
	}
	return walk, nil
}
