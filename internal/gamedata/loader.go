package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded file %s: %w", filename, err)
	}

	return decode[T](filename, content)
}

// decode unmarshals JSON content that was read from filename.
func decode[T any](filename string, content []byte) (T, error) {
	var result T
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse JSON from %s: %w", filename, err)
	}
	return result, nil
}
