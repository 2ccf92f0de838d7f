package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
	"github.com/timson/pirinfetch/render"
)

func defaultFileConfig() *Config {
	return &Config{
		Color: "auto",
		Display: &DisplayConfig{
			Separator:       render.DefaultSeparator,
			Mode:            "ascii",
			ASCIIColor:      "blue",
			UseDefaultASCII: true,
			Items:           defaultItemConfigs(),
		},
		Colors: defaultColors(),
		Log:    &LogConfig{Level: "ERROR"},
	}
}

// writeDefaultConfig writes the default configuration to path. The file is
// only replaced when force is set. A sibling lock file keeps two concurrent
// runs from interleaving their writes.
func writeDefaultConfig(path string, force bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock config: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(path + ".lock")
	}()

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	data, err := toml.Marshal(defaultFileConfig())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
