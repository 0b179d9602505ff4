package config

import (
	_ "embed"
)

//go:embed defaults/mahjong.yaml
var defaultMahjongYAML []byte

// DefaultMahjongConfig returns the hardcoded default configuration.
// It matches defaults/mahjong.yaml.
func DefaultMahjongConfig() MahjongConfig {
	return MahjongConfig{
		Layout: LayoutConfig{
			TileWidth:  80,
			TileHeight: 100,
			Base:       GridConfig{Cols: 7, Rows: 4, OriginX: 50, OriginY: 50, PitchX: 100, PitchY: 110},
			Top:        GridConfig{Cols: 4, Rows: 2, OriginX: 200, OriginY: 150, PitchX: 100, PitchY: 110},
			Extra:      GridConfig{Cols: 4, Rows: 1, OriginX: 150, OriginY: 300, PitchX: 90, PitchY: 110},
		},
		Rules: RulesConfig{
			TouchTolerance: 10,
		},
		Deck: DeckConfig{
			Alphabet: []string{
				"1m", "2m", "3m", "4m", "5m", "6m", "7m", "8m", "9m",
				"1s", "2s", "3s", "4s", "5s", "6s", "7s", "8s", "9s",
				"1p", "2p", "3p", "4p", "5p", "6p", "7p", "8p", "9p",
			},
		},
		Gameplay: GameplayConfig{
			AdvanceDelayMS: 2000,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMahjongYAML
}
