package memory

import (
	"sort"
	"sync"

	"petverse/internal/domain/game"
)

// Store keeps session snapshots in process memory. Map access is guarded by mu;
// txMu serializes transactions so a read-modify-write cycle is atomic.
type Store struct {
	mu    sync.RWMutex
	txMu  sync.Mutex
	state map[string]game.State
}

func NewStore() *Store {
	return &Store{state: make(map[string]game.State)}
}

func (s *Store) SeedState(state game.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[state.OwnerID] = state.Clone()
}

func (s *Store) owners() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.state))
	for id := range s.state {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
