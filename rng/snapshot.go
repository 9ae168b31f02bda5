package rng

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrInvalidSnapshot is returned when snapshot text cannot be parsed.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is the complete persistable state of an engine: the stream's
// seed and the phase of the next word. Replaying from a snapshot
// reproduces the exact continuation of the original stream.
type Snapshot struct {
	Seed  int64 `json:"seed"`
	Phase int64 `json:"phase"`
}

func (s Snapshot) String() string {
	return fmt.Sprintf(`{"seed":%d,"phase":%d}`, s.Seed, s.Phase)
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSnapshot reads snapshot text previously produced by String or
// MarshalJSON.
func ParseSnapshot(data string) (Snapshot, error) {
	if !gjson.Valid(data) {
		return Snapshot{}, fmt.Errorf("%w: malformed json", ErrInvalidSnapshot)
	}
	seed := gjson.Get(data, "seed")
	phase := gjson.Get(data, "phase")
	if !seed.Exists() || !phase.Exists() {
		return Snapshot{}, fmt.Errorf("%w: missing seed or phase", ErrInvalidSnapshot)
	}
	return Snapshot{Seed: seed.Int(), Phase: phase.Int()}, nil
}
