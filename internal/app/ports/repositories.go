package ports

import (
	"context"

	"petverse/internal/domain/game"
)

// SnapshotStore persists one whole game.State per owner.
type SnapshotStore interface {
	// Load returns ErrNotFound when nothing is stored and a
	// *CorruptSnapshotError when the stored payload cannot be decoded.
	Load(ctx context.Context, ownerID string) (game.State, error)
	// SaveWithVersion writes state if the stored version still equals
	// expectedVersion (0 means "not stored yet"), else ErrConflict.
	SaveWithVersion(ctx context.Context, state game.State, expectedVersion int64) error
	Delete(ctx context.Context, ownerID string) error
}
