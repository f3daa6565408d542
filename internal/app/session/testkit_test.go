package session

import (
	"context"
	"sync"

	"petverse/internal/app/ports"
	"petverse/internal/domain/game"
	"petverse/internal/domain/task"
)

type stubStore struct {
	mu      sync.Mutex
	states  map[string]game.State
	saves   int
	loadErr error
	saveErr error
}

func newStubStore() *stubStore {
	return &stubStore{states: map[string]game.State{}}
}

func (s *stubStore) Load(_ context.Context, ownerID string) (game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return game.State{}, s.loadErr
	}
	st, ok := s.states[ownerID]
	if !ok {
		return game.State{}, ports.ErrNotFound
	}
	return st.Clone(), nil
}

func (s *stubStore) SaveWithVersion(_ context.Context, state game.State, expectedVersion int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	if cur, ok := s.states[state.OwnerID]; ok && cur.Version != expectedVersion {
		return ports.ErrConflict
	}
	s.states[state.OwnerID] = state.Clone()
	s.saves++
	return nil
}

func (s *stubStore) Delete(_ context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.states[ownerID]; !ok {
		return ports.ErrNotFound
	}
	delete(s.states, ownerID)
	return nil
}

type stubTx struct {
	mu sync.Mutex
}

func (t *stubTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}

type conflictCounter struct {
	conflicts int
}

func (c *conflictCounter) RecordTick(game.TickReport) {}
func (c *conflictCounter) RecordTaskCompleted() {}
func (c *conflictCounter) RecordTaskRejected(task.FailureCode) {}
func (c *conflictCounter) RecordNarrativeFallback(game.NarrativeKind) {}
func (c *conflictCounter) RecordConflict() { c.conflicts++ }
