package dimension

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a snapshot from disk. Missing files return an empty snapshot.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
func Load(path string) (Snapshot, error) {
	var s Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, err
	}
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Snapshot{}, fmt.Errorf("decode %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &s); err != nil {
			return Snapshot{}, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return s.Normalize(), nil
}

// Save writes a snapshot to disk, creating parent directories as needed.
func Save(path string, s Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// isYAML reports whether the path extension selects the YAML codec.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
