// Package session implements JSON serialization of an engine's
// replayable state. The seed plus the draw position is the entire
// state needed to resume a stream exactly where it left off.
package session

import (
	"encoding/json"

	"github.com/nathoo/seedcraft/rng"
)

// FormatVersion is written into every save for forward compatibility.
const FormatVersion = "1"

// SaveData is the JSON-serializable session format.
type SaveData struct {
	Version  string `json:"version"`
	Seed     int64  `json:"seed"`
	Position int64  `json:"position"`
}

// Save serializes the engine's seed and position to JSON bytes.
func Save(e *rng.Engine) ([]byte, error) {
	data := SaveData{
		Version:  FormatVersion,
		Seed:     e.Seed(),
		Position: e.Position(),
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData. A negative position is
// normalized to zero.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	if sd.Position < 0 {
		sd.Position = 0
	}
	return &sd, nil
}

// Apply reconstructs an engine advanced to the saved position.
func Apply(sd *SaveData) *rng.Engine {
	return rng.Restore(sd.Seed, sd.Position)
}
