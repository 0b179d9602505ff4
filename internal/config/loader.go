package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "mahjong.yaml"

// LoadMahjong loads the game configuration.
// Search order: customPath -> ~/.mahjong/configs/mahjong.yaml -> ./configs/mahjong.yaml -> embedded default
func LoadMahjong(customPath string) (MahjongConfig, error) {
	var cfg MahjongConfig

	// A custom path must load cleanly; it is never silently skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", ConfigFile)); ok {
		return loaded, nil
	}

	if err := yaml.Unmarshal(defaultMahjongYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultMahjongConfig(), nil
	}
	return cfg, nil
}

// tryLoad reads and validates a config file, reporting false on any problem.
func tryLoad(path string) (MahjongConfig, bool) {
	var cfg MahjongConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mahjong", "configs", filename)
}

// Validate checks that the configuration can produce a playable board:
// every level must have an even number of slots and the alphabet must be
// usable for pairing.
func (c MahjongConfig) Validate() error {
	var errs []error

	if c.Layout.TileWidth <= 0 || c.Layout.TileHeight <= 0 {
		errs = append(errs, errors.New("layout: tile size must be positive"))
	}
	for name, g := range map[string]GridConfig{"base": c.Layout.Base, "top": c.Layout.Top, "extra": c.Layout.Extra} {
		if g.Cols < 0 || g.Rows < 0 {
			errs = append(errs, fmt.Errorf("layout.%s: negative grid size", name))
		}
	}
	base := c.Layout.Base.Cols*c.Layout.Base.Rows + c.Layout.Top.Cols*c.Layout.Top.Rows
	if base == 0 || base%2 != 0 {
		errs = append(errs, fmt.Errorf("layout: level 1 needs a positive even slot count, got %d", base))
	}
	if c.Layout.Extra.Cols%2 != 0 {
		errs = append(errs, fmt.Errorf("layout.extra: cols must be even, got %d", c.Layout.Extra.Cols))
	}

	if c.Rules.TouchTolerance < 0 {
		errs = append(errs, errors.New("rules: touch_tolerance must not be negative"))
	}

	if len(c.Deck.Alphabet) == 0 {
		errs = append(errs, errors.New("deck: alphabet is empty"))
	}
	seen := make(map[string]bool, len(c.Deck.Alphabet))
	for _, label := range c.Deck.Alphabet {
		if label == "" {
			errs = append(errs, errors.New("deck: empty label"))
			continue
		}
		if seen[label] {
			errs = append(errs, fmt.Errorf("deck: duplicate label %q", label))
		}
		seen[label] = true
	}

	if c.Gameplay.AdvanceDelayMS < 0 {
		errs = append(errs, errors.New("gameplay: advance_delay_ms must not be negative"))
	}

	return errors.Join(errs...)
}
