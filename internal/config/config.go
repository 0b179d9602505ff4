// Package config provides YAML-based configuration loading for the game.
package config

// MahjongConfig contains all configuration for Mahjong solitaire.
type MahjongConfig struct {
	Layout   LayoutConfig   `yaml:"layout"`
	Rules    RulesConfig    `yaml:"rules"`
	Deck     DeckConfig     `yaml:"deck"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// LayoutConfig defines the board geometry in board units.
type LayoutConfig struct {
	TileWidth  int        `yaml:"tile_width"`
	TileHeight int        `yaml:"tile_height"`
	Base       GridConfig `yaml:"base"`  // Layer 0
	Top        GridConfig `yaml:"top"`   // Layer 1
	Extra      GridConfig `yaml:"extra"` // Added once per level past the first
}

// GridConfig defines one row-major block of slots.
type GridConfig struct {
	Cols    int `yaml:"cols"`
	Rows    int `yaml:"rows"`
	OriginX int `yaml:"origin_x"`
	OriginY int `yaml:"origin_y"`
	PitchX  int `yaml:"pitch_x"`
	PitchY  int `yaml:"pitch_y"`
}

// RulesConfig defines the free-tile rule parameters.
type RulesConfig struct {
	TouchTolerance int `yaml:"touch_tolerance"`
}

// DeckConfig defines the tile labels dealt onto the board.
type DeckConfig struct {
	Alphabet []string `yaml:"alphabet"`
}

// GameplayConfig defines pacing.
type GameplayConfig struct {
	AdvanceDelayMS int `yaml:"advance_delay_ms"` // Pause between a cleared level and the next
}
