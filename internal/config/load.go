package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"autoisys/internal/logger"
)

// DefaultPath returns the default location of config.yaml: next to the
// autoisys executable, wherever that happens to live.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), "config.yaml"), nil
}

// Load reads the configuration file at path and returns the parsed Config.
//
// If the file does not exist, the built-in defaults are written there and
// returned. Otherwise the file is read (content that does not parse as a
// mapping is treated as an empty mapping, not an error), the default schema
// is merged into it so that any missing keys are backfilled, and the merged
// document is written back. Either way the file ends up containing every key
// of the default schema, with the user's explicit values preserved.
//
// Unreadable or unwritable storage is returned as an error; the caller treats
// it as fatal.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("[CONFIG] Creating %s\n", filepath.Base(path))
		doc := defaultDocument()
		if err := save(path, doc); err != nil {
			return Config{}, err
		}
		return decode(doc)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// An empty or malformed file decodes to an empty mapping; the merge
	// below then restores the full default schema.
	current := map[string]any{}
	_ = yaml.Unmarshal(raw, &current)
	if current == nil {
		current = map[string]any{}
	}

	merge(defaultDocument(), current)

	if err := save(path, current); err != nil {
		return Config{}, err
	}
	return decode(current)
}

// merge fills gaps in current from defaults, recursively for nested mappings.
// Keys already present in current keep their values; only the missing ones
// are inserted. Applying merge twice yields the same result as applying it
// once.
func merge(defaults, current map[string]any) {
	for key, value := range defaults {
		cur, ok := current[key]
		if !ok {
			current[key] = value
			continue
		}
		defMap, defIsMap := value.(map[string]any)
		curMap, curIsMap := cur.(map[string]any)
		if defIsMap && curIsMap {
			merge(defMap, curMap)
		}
	}
}

// save marshals the document to YAML and writes it to path with mode 0644.
func save(path string, doc map[string]any) error {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	logger.Debug("[DEBUG] Writing config to %s:\n%s", path, out)
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// decode converts a merged YAML mapping into the typed Config.
func decode(doc map[string]any) (Config, error) {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
