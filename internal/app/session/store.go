// Package session loads, transforms and saves one owner's snapshot inside a
// transaction. Unusable snapshots are replaced by a fresh state.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"petverse/internal/app/ports"
	"petverse/internal/domain/game"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var ErrInvalidOwner = errors.New("owner id is required")

type Store struct {
	TxManager ports.TxManager
	Snapshots ports.SnapshotStore
	Metrics   ports.EngineMetrics
}

// Load returns the stored state for ownerID. A missing snapshot yields a fresh
// state; a corrupt one is logged and also replaced by a fresh state that keeps
// the stored version so the next save overwrites it.
func Load(ctx context.Context, snapshots ports.SnapshotStore, ownerID string, now time.Time) (game.State, error) {
	state, err := snapshots.Load(ctx, ownerID)
	if err == nil {
		if state.OwnerID == "" {
			state.OwnerID = ownerID
		}
		return state, nil
	}
	if errors.Is(err, ports.ErrNotFound) {
		return game.NewState(ownerID, now), nil
	}
	if errors.Is(err, ports.ErrCorruptSnapshot) {
		hlog.CtxWarnf(ctx, "discarding unreadable snapshot owner=%s err=%v", ownerID, err)
		fresh := game.NewState(ownerID, now)
		var cerr *ports.CorruptSnapshotError
		if errors.As(err, &cerr) {
			fresh.Version = cerr.Version
		}
		return fresh, nil
	}
	return game.State{}, err
}

// Read loads the owner's state without writing anything back.
func (s Store) Read(ctx context.Context, ownerID string, now time.Time) (game.State, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return game.State{}, ErrInvalidOwner
	}
	return Load(ctx, s.Snapshots, ownerID, now)
}

// Update runs fn over the owner's state and saves the result when fn returns
// a state with a different version. An error from fn aborts without saving.
func (s Store) Update(ctx context.Context, ownerID string, now time.Time, fn func(game.State) (game.State, error)) (game.State, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return game.State{}, ErrInvalidOwner
	}
	var out game.State
	err := s.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := Load(txCtx, s.Snapshots, ownerID, now)
		if err != nil {
			return err
		}
		next, err := fn(before)
		if err != nil {
			return err
		}
		if next.Version != before.Version {
			if err := s.Snapshots.SaveWithVersion(txCtx, next, before.Version); err != nil {
				if errors.Is(err, ports.ErrConflict) && s.Metrics != nil {
					s.Metrics.RecordConflict()
				}
				return err
			}
		}
		out = next
		return nil
	})
	if err != nil {
		return game.State{}, err
	}
	return out, nil
}

func (s Store) Delete(ctx context.Context, ownerID string) error {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return ErrInvalidOwner
	}
	return s.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		err := s.Snapshots.Delete(txCtx, ownerID)
		if errors.Is(err, ports.ErrNotFound) {
			return nil
		}
		return err
	})
}
