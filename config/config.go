/*

	config.go - board preset and label-alphabet configuration

*/

// Package config loads the board presets and the label -> bomb-count
// alphabet for each version (classic, variant) from YAML, the way the
// rest of the retrieved pack externalises difficulty/world configuration
// rather than hard-coding it. A compiled-in default lets the module run
// with no config file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is one named board size: height x width with a bomb count.
type Preset struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Bombs  int `yaml:"bombs"`
}

// VersionConfig holds one game version's difficulty presets and its
// label -> possible-bomb-count alphabet.
type VersionConfig struct {
	Presets map[string]Preset `yaml:"presets"`
	Labels  map[string][]int  `yaml:"labels"`
	// BombLabels are revealed-bomb labels for this version (e.g. "B",
	// "Rupoor") — these pin a tile to exactly one bomb rather than
	// carrying a neighbour constraint.
	BombLabels []string `yaml:"bomb_labels"`
}

// Config is the full document: one VersionConfig per supported version.
type Config struct {
	Versions map[string]VersionConfig `yaml:"versions"`
}

const (
	// VersionClassic is the standard numbered-tile Minesweeper ruleset.
	VersionClassic = "classic"
	// VersionVariant is the colour-banded ruleset (e.g. Thrill Digger).
	VersionVariant = "variant"
)

// Default returns the built-in preset table straight from spec §6,
// requiring no external file.
func Default() Config {
	return Config{
		Versions: map[string]VersionConfig{
			VersionClassic: {
				Presets: map[string]Preset{
					"easy":   {Height: 9, Width: 9, Bombs: 10},
					"medium": {Height: 16, Width: 16, Bombs: 40},
					"hard":   {Height: 16, Width: 30, Bombs: 99},
				},
				Labels: map[string][]int{
					"0": {0}, "1": {1}, "2": {2}, "3": {3}, "4": {4},
					"5": {5}, "6": {6}, "7": {7}, "8": {8},
				},
				BombLabels: []string{"B"},
			},
			VersionVariant: {
				Presets: map[string]Preset{
					"easy":   {Height: 5, Width: 4, Bombs: 4},
					"medium": {Height: 6, Width: 5, Bombs: 8},
					"hard":   {Height: 8, Width: 5, Bombs: 16},
				},
				Labels: map[string][]int{
					"Green":  {0},
					"Blue":   {1, 2},
					"Red":    {3, 4},
					"Silver": {5, 6},
					"Gold":   {7, 8},
				},
				BombLabels: []string{"Rupoor", "B"},
			},
		},
	}
}

// Load reads a YAML config file and overlays it onto Default(): any
// version/preset the file doesn't mention keeps its built-in value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	for version, vc := range overlay.Versions {
		base := cfg.Versions[version]
		for name, preset := range vc.Presets {
			if base.Presets == nil {
				base.Presets = map[string]Preset{}
			}
			base.Presets[name] = preset
		}
		if len(vc.Labels) > 0 {
			base.Labels = vc.Labels
		}
		if len(vc.BombLabels) > 0 {
			base.BombLabels = vc.BombLabels
		}
		cfg.Versions[version] = base
	}

	return cfg, nil
}

// Preset looks up a named preset ("easy"/"medium"/"hard") for a version.
func (c Config) Preset(version, name string) (Preset, bool) {
	vc, ok := c.Versions[version]
	if !ok {
		return Preset{}, false
	}
	p, ok := vc.Presets[name]
	return p, ok
}

// BombCounts returns the possible-bomb-count set for a revealed label
// under a version, and whether the label is recognised as a numeric/colour
// label at all (as opposed to a bomb label or an unrecognised string).
func (c Config) BombCounts(version, label string) ([]int, bool) {
	vc, ok := c.Versions[version]
	if !ok {
		return nil, false
	}
	counts, ok := vc.Labels[label]
	return counts, ok
}

// IsBombLabel reports whether label denotes a revealed bomb tile under version.
func (c Config) IsBombLabel(version, label string) bool {
	vc, ok := c.Versions[version]
	if !ok {
		return false
	}
	for _, l := range vc.BombLabels {
		if l == label {
			return true
		}
	}
	return false
}
