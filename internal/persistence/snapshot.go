package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/talgya/econsim/internal/worldstate"
)

// Snapshot produces a deterministic JSON serialization of a world state.
// Every slice in State is in dense-id order and encoding/json preserves
// both struct field order and
// slice order, so two snapshots of bit-identical states always produce
// byte-identical output; the only maps involved (simerr diagnostic fields)
// are serialized with sorted keys by encoding/json.
func Snapshot(s *worldstate.State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("persistence: snapshot encode: %w", err)
	}
	return data, nil
}

// Restore decodes a snapshot produced by Snapshot back into a State.
func Restore(data []byte) (*worldstate.State, error) {
	var s worldstate.State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("persistence: snapshot decode: %w", err)
	}
	return &s, nil
}
