// Package filerepo keeps one zstd-compressed snapshot file per owner in a
// directory. It suits single-process hosts; transactions are a process-wide
// mutex.
package filerepo

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"petverse/internal/adapter/repo/codec"
	"petverse/internal/app/ports"
	"petverse/internal/domain/game"

	"github.com/klauspost/compress/zstd"
)

const ext = ".json.zst"

type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("snapshot dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(ownerID string) string {
	return filepath.Join(s.dir, base64.RawURLEncoding.EncodeToString([]byte(ownerID))+ext)
}

// RunInTx implements ports.TxManager.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx)
}

func (s *Store) Load(_ context.Context, ownerID string) (game.State, error) {
	raw, err := os.ReadFile(s.path(ownerID))
	if errors.Is(err, os.ErrNotExist) {
		return game.State{}, ports.ErrNotFound
	}
	if err != nil {
		return game.State{}, err
	}
	state, err := decode(raw)
	if err != nil {
		return game.State{}, &ports.CorruptSnapshotError{OwnerID: ownerID, Err: err}
	}
	return state, nil
}

// SaveWithVersion compares expectedVersion with the version inside the current
// file. An unreadable file counts as version 0 so a fresh state can replace it.
func (s *Store) SaveWithVersion(_ context.Context, state game.State, expectedVersion int64) error {
	path := s.path(state.OwnerID)
	current := int64(0)
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if existing, derr := decode(raw); derr == nil {
			current = existing.Version
		}
	case errors.Is(err, os.ErrNotExist):
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
	default:
		return err
	}
	if current != expectedVersion {
		return ports.ErrConflict
	}

	payload, err := encode(state)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

func (s *Store) Delete(_ context.Context, ownerID string) error {
	err := os.Remove(s.path(ownerID))
	if errors.Is(err, os.ErrNotExist) {
		return ports.ErrNotFound
	}
	return err
}

func (s *Store) ListOwners(context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	owners := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}
		id, err := base64.RawURLEncoding.DecodeString(strings.TrimSuffix(name, ext))
		if err != nil {
			continue
		}
		owners = append(owners, string(id))
	}
	sort.Strings(owners)
	return owners, nil
}

func encode(state game.State) ([]byte, error) {
	payload, err := codec.Encode(state)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	if _, err := enc.Write(payload); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(raw []byte) (game.State, error) {
	dec, err := zstd.NewReader(bytes.NewReader(raw))
	if err != nil {
		return game.State{}, err
	}
	defer dec.Close()
	payload, err := io.ReadAll(dec)
	if err != nil {
		return game.State{}, fmt.Errorf("decompress snapshot: %w", err)
	}
	return codec.Decode(payload)
}
