package memory

import (
	"context"

	"petverse/internal/app/ports"
	"petverse/internal/domain/game"
)

type SnapshotRepo struct {
	store *Store
}

func NewSnapshotRepo(store *Store) SnapshotRepo {
	return SnapshotRepo{store: store}
}

func (r SnapshotRepo) Load(_ context.Context, ownerID string) (game.State, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	state, ok := r.store.state[ownerID]
	if !ok {
		return game.State{}, ports.ErrNotFound
	}
	return state.Clone(), nil
}

func (r SnapshotRepo) SaveWithVersion(_ context.Context, state game.State, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.state[state.OwnerID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.state[state.OwnerID] = state.Clone()
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.state[state.OwnerID] = state.Clone()
	return nil
}

func (r SnapshotRepo) Delete(_ context.Context, ownerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state[ownerID]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.state, ownerID)
	return nil
}

func (r SnapshotRepo) ListOwners(context.Context) ([]string, error) {
	return r.store.owners(), nil
}
