package sqliterepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"petverse/internal/adapter/repo/codec"
	"petverse/internal/app/ports"
	"petverse/internal/domain/game"
)

type SnapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepo(db *sql.DB) SnapshotRepo {
	return SnapshotRepo{db: db}
}

func (r SnapshotRepo) Load(ctx context.Context, ownerID string) (game.State, error) {
	var payload []byte
	var version int64
	err := conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT payload, version FROM game_snapshots WHERE owner_id = ?`, ownerID,
	).Scan(&payload, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return game.State{}, ports.ErrNotFound
	}
	if err != nil {
		return game.State{}, err
	}
	state, err := codec.Decode(payload)
	if err != nil {
		return game.State{}, &ports.CorruptSnapshotError{OwnerID: ownerID, Version: version, Err: err}
	}
	state.Version = version
	return state, nil
}

func (r SnapshotRepo) SaveWithVersion(ctx context.Context, state game.State, expectedVersion int64) error {
	payload, err := codec.Encode(state)
	if err != nil {
		return err
	}
	q := conn(ctx, r.db)
	updatedAt := state.UpdatedAt.UTC().Format(time.RFC3339Nano)
	var res sql.Result
	if expectedVersion == 0 {
		res, err = q.ExecContext(ctx,
			`INSERT INTO game_snapshots(owner_id, payload, version, updated_at) VALUES (?, ?, ?, ?) ON CONFLICT(owner_id) DO NOTHING`,
			state.OwnerID, payload, state.Version, updatedAt)
	} else {
		res, err = q.ExecContext(ctx,
			`UPDATE game_snapshots SET payload = ?, version = ?, updated_at = ? WHERE owner_id = ? AND version = ?`,
			payload, state.Version, updatedAt, state.OwnerID, expectedVersion)
	}
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r SnapshotRepo) Delete(ctx context.Context, ownerID string) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM game_snapshots WHERE owner_id = ?`, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r SnapshotRepo) ListOwners(ctx context.Context) ([]string, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `SELECT owner_id FROM game_snapshots ORDER BY owner_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var owners []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		owners = append(owners, id)
	}
	return owners, rows.Err()
}
