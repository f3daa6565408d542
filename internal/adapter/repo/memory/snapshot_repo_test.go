package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"petverse/internal/app/ports"
	"petverse/internal/domain/game"
)

func TestSnapshotRepoVersioning(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepo(NewStore())
	s := game.NewState("owner-1", time.Unix(0, 0))
	s.Version = 1

	if err := repo.SaveWithVersion(ctx, s, 3); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on missing row with nonzero version, got %v", err)
	}
	if err := repo.SaveWithVersion(ctx, s, 0); err != nil {
		t.Fatalf("create: %v", err)
	}
	s.Version = 2
	if err := repo.SaveWithVersion(ctx, s, 0); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on stale version, got %v", err)
	}
	if err := repo.SaveWithVersion(ctx, s, 1); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.Load(ctx, "owner-1")
	if err != nil || got.Version != 2 {
		t.Fatalf("expected version 2, got %d err=%v", got.Version, err)
	}
}

func TestSnapshotRepoLoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewSnapshotRepo(store)
	s := game.NewState("owner-1", time.Unix(0, 0))
	s.Logs = []game.ActivityLog{{ID: "l-1", Message: "hello"}}
	store.SeedState(s)

	got, _ := repo.Load(ctx, "owner-1")
	got.Logs[0].Message = "changed"
	again, _ := repo.Load(ctx, "owner-1")
	if again.Logs[0].Message != "hello" {
		t.Fatalf("expected stored snapshot untouched, got %q", again.Logs[0].Message)
	}
}

func TestDeleteAndListOwners(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewSnapshotRepo(store)
	store.SeedState(game.NewState("b", time.Unix(0, 0)))
	store.SeedState(game.NewState("a", time.Unix(0, 0)))

	owners, _ := repo.ListOwners(ctx)
	if len(owners) != 2 || owners[0] != "a" {
		t.Fatalf("expected sorted owners, got %v", owners)
	}
	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "a"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTxManagerSerializesReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewSnapshotRepo(store)
	tx := NewTxManager(store)
	store.SeedState(game.NewState("owner-1", time.Unix(0, 0)))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tx.RunInTx(ctx, func(ctx context.Context) error {
				s, err := repo.Load(ctx, "owner-1")
				if err != nil {
					return err
				}
				before := s.Version
				s.Version++
				return repo.SaveWithVersion(ctx, s, before)
			})
			if err != nil {
				t.Errorf("tx: %v", err)
			}
		}()
	}
	wg.Wait()
	got, _ := repo.Load(ctx, "owner-1")
	if got.Version != 20 {
		t.Fatalf("expected 20 serialized updates, got %d", got.Version)
	}
}
