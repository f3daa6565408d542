package gormrepo

import (
	"context"
	"errors"

	"petverse/internal/adapter/repo/codec"
	"petverse/internal/adapter/repo/gorm/model"
	"petverse/internal/app/ports"
	"petverse/internal/domain/game"

	"gorm.io/gorm"
)

type SnapshotRepo struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
	return SnapshotRepo{db: db}
}

func (r SnapshotRepo) Load(ctx context.Context, ownerID string) (game.State, error) {
	var m model.GameSnapshot
	if err := conn(ctx, r.db).Where("owner_id = ?", ownerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.State{}, ports.ErrNotFound
		}
		return game.State{}, err
	}
	state, err := codec.Decode(m.Payload)
	if err != nil {
		return game.State{}, &ports.CorruptSnapshotError{OwnerID: ownerID, Version: m.Version, Err: err}
	}
	state.Version = m.Version
	return state, nil
}

func (r SnapshotRepo) SaveWithVersion(ctx context.Context, state game.State, expectedVersion int64) error {
	payload, err := codec.Encode(state)
	if err != nil {
		return err
	}
	db := conn(ctx, r.db)
	if expectedVersion == 0 {
		m := model.GameSnapshot{
			OwnerID:   state.OwnerID,
			Payload:   payload,
			Version:   state.Version,
			UpdatedAt: state.UpdatedAt,
		}
		if err := db.Create(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ports.ErrConflict
			}
			return err
		}
		return nil
	}

	updates := map[string]any{
		"payload":    payload,
		"version":    state.Version,
		"updated_at": state.UpdatedAt,
	}
	res := db.Model(&model.GameSnapshot{}).
		Where("owner_id = ? AND version = ?", state.OwnerID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r SnapshotRepo) Delete(ctx context.Context, ownerID string) error {
	res := conn(ctx, r.db).Where("owner_id = ?", ownerID).Delete(&model.GameSnapshot{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r SnapshotRepo) ListOwners(ctx context.Context) ([]string, error) {
	var owners []string
	err := conn(ctx, r.db).
		Model(&model.GameSnapshot{}).
		Order("owner_id").
		Pluck("owner_id", &owners).Error
	if err != nil {
		return nil, err
	}
	return owners, nil
}
