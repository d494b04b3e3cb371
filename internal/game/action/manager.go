// Package action implements the player action state machine: the single
// activity gate (idle, combat, profession timers, evolution trial) and the
// turn loop that drives combat resolution, durability wear and rewards.
//
// Actions for one player are processed strictly one at a time: every
// operation acquires the player's exclusive lock, loads the record,
// validates the stored state, applies a full turn's effects in memory and
// commits them with a single Save. Rejections return before any mutation
// reaches the store.
package action

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Eldorabotpy/eldora-engine/internal/config"
	"github.com/Eldorabotpy/eldora-engine/internal/game/itemgen"
	"github.com/Eldorabotpy/eldora-engine/internal/model"
	"github.com/Eldorabotpy/eldora-engine/internal/rng"
)

// PlayerStore is the narrow persistence contract the engine consumes.
// Load returns (nil, nil) for an unknown id.
type PlayerStore interface {
	Load(ctx context.Context, playerID int64) (*model.Player, error)
	Save(ctx context.Context, player *model.Player) error
}

// Clock is the injectable time source used for profession completion
// timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Manager drives the action state machine for all players.
type Manager struct {
	store PlayerStore
	clock Clock
	rng   rng.Source
	gen   *itemgen.Generator

	combat config.Combat
	rates  config.Rates

	// locks maps playerID → *sync.Mutex. The state machine is not
	// re-entrant; a second concurrent action on the same player would
	// corrupt the battle log or double-spend resources.
	locks sync.Map
}

// NewManager builds a Manager with injected collaborators.
func NewManager(store PlayerStore, clock Clock, src rng.Source, gen *itemgen.Generator, combatCfg config.Combat, rates config.Rates) *Manager {
	return &Manager{
		store:  store,
		clock:  clock,
		rng:    src,
		gen:    gen,
		combat: combatCfg,
		rates:  rates,
	}
}

// playerLock returns the mutex guarding one player's state.
func (m *Manager) playerLock(playerID int64) *sync.Mutex {
	mu, _ := m.locks.LoadOrStore(playerID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// withPlayer runs fn under the player's exclusive lock and commits the
// mutated record with a single Save. fn returning an error aborts before
// Save, so rejections are side-effect-free; a failed Save surfaces as a
// retryable PersistenceError and the in-memory mutation is discarded with
// the call.
func (m *Manager) withPlayer(ctx context.Context, op string, playerID int64, fn func(p *model.Player) error) error {
	mu := m.playerLock(playerID)
	mu.Lock()
	defer mu.Unlock()

	p, err := m.store.Load(ctx, playerID)
	if err != nil {
		return &PersistenceError{Op: op, Err: fmt.Errorf("loading player %d: %w", playerID, err)}
	}
	if p == nil {
		return ErrPlayerNotFound
	}

	if err := fn(p); err != nil {
		return err
	}

	if err := m.store.Save(ctx, p); err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}

// requireIdle is the entry gate for every action that starts a new
// activity.
func requireIdle(p *model.Player) error {
	if p.State != model.StateIdle {
		return ErrNotIdle
	}
	return nil
}
