// Package config loads environment configuration for dropzone.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/frudas24/dropzone/internal/geom"
)

const (
	defaultListenAddr       = "0.0.0.0:8790"
	defaultDataDir          = "./data"
	defaultSnapshotFile     = "snapshot.json"
	defaultPadding          = 0.0
	defaultTolerance        = 1.0
	defaultPersistSnapshots = true
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr       string
	DataDir          string
	SnapshotPath     string
	PaddingX         float64
	PaddingY         float64
	Tolerance        float64
	PersistSnapshots bool
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:       defaultListenAddr,
		DataDir:          defaultDataDir,
		SnapshotPath:     filepath.Join(defaultDataDir, defaultSnapshotFile),
		PaddingX:         defaultPadding,
		PaddingY:         defaultPadding,
		Tolerance:        defaultTolerance,
		PersistSnapshots: defaultPersistSnapshots,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.SnapshotPath = envString("SNAPSHOT_PATH", filepath.Join(cfg.DataDir, defaultSnapshotFile))
	cfg.PersistSnapshots = envBool("PERSIST_SNAPSHOTS", cfg.PersistSnapshots)

	padX, err := envFloat("PADDING_X", cfg.PaddingX)
	if err != nil {
		return Config{}, err
	}
	if padX < 0 {
		return Config{}, fmt.Errorf("PADDING_X must be >= 0")
	}
	cfg.PaddingX = padX

	padY, err := envFloat("PADDING_Y", cfg.PaddingY)
	if err != nil {
		return Config{}, err
	}
	if padY < 0 {
		return Config{}, fmt.Errorf("PADDING_Y must be >= 0")
	}
	cfg.PaddingY = padY

	tolerance, err := envFloat("BOUNDARY_TOLERANCE", cfg.Tolerance)
	if err != nil {
		return Config{}, err
	}
	if tolerance < 0 {
		return Config{}, fmt.Errorf("BOUNDARY_TOLERANCE must be >= 0")
	}
	cfg.Tolerance = tolerance

	return cfg, nil
}

// Padding returns the default acceptance padding for queries.
func (c Config) Padding() geom.Position {
	return geom.Position{X: c.PaddingX, Y: c.PaddingY}
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envFloat returns a float env override when present, otherwise a default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%s must be a finite number", key)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
