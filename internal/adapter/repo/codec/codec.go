// Package codec turns a session state into the stored snapshot payload and
// back. Every payload is checked against the snapshot schema before it is
// decoded, so stores can report unreadable rows instead of loading garbage.
package codec

import (
	"encoding/json"
	"fmt"

	"petverse/internal/domain/game"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var schema = jsonschema.MustCompileString("petverse://snapshot.schema.json", snapshotSchema)

func Encode(state game.State) ([]byte, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// Decode validates and decodes a payload. Any failure is returned as is; the
// caller wraps it into a ports.CorruptSnapshotError with what it knows about
// the stored row.
func Decode(payload []byte) (game.State, error) {
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return game.State{}, fmt.Errorf("parse snapshot: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return game.State{}, fmt.Errorf("validate snapshot: %w", err)
	}
	var state game.State
	if err := json.Unmarshal(payload, &state); err != nil {
		return game.State{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return state, nil
}
