package spirit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// RoomFile is the on-disk shape of a room definition.
type RoomFile struct {
	Name    string    `json:"name"`
	Spirits []*Spirit `json:"spirits"`
}

// LoadRoom reads a room definition from a JSON file and builds a validated
// registry. Decoding is strict: unknown fields are rejected so authoring
// typos surface immediately.
func LoadRoom(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read room file %s: %w", path, err)
	}
	return ParseRoom(data)
}

// ParseRoom builds a validated registry from raw room JSON.
func ParseRoom(data []byte) (*Registry, error) {
	var rf RoomFile
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&rf); err != nil {
		return nil, fmt.Errorf("room file failed strict JSON unmarshaling: %w", err)
	}

	registry, err := NewRegistry(rf.Spirits)
	if err != nil {
		return nil, fmt.Errorf("invalid room %q: %w", rf.Name, err)
	}
	return registry, nil
}
