package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// PlayerPreset seeds a player at the table.
type PlayerPreset struct {
	Name   string `json:"name" yaml:"name"`
	HP     int    `json:"hp" yaml:"hp"`
	MaxHP  int    `json:"max_hp" yaml:"max_hp"`
	Skill  int    `json:"skill" yaml:"skill"`
	IsUser bool   `json:"is_user" yaml:"is_user"`
}

// GameConfig is the on-disk solver configuration.
type GameConfig struct {
	MaxShellsPerKind int `json:"max_shells_per_kind" yaml:"max_shells_per_kind"`
	MaxPlayers       int `json:"max_players" yaml:"max_players"`
	MaxSkill         int `json:"max_skill" yaml:"max_skill"`
	// NewOpponent is applied to players added during a session; Name is ignored.
	NewOpponent    PlayerPreset   `json:"new_opponent" yaml:"new_opponent"`
	DefaultPlayers []PlayerPreset `json:"default_players" yaml:"default_players"`
}

// Limits is the resolved configuration with every field populated.
type Limits struct {
	MaxShellsPerKind int
	MaxPlayers       int
	MaxSkill         int
	NewOpponent      PlayerPreset
	DefaultPlayers   []PlayerPreset
}

// DefaultLimits mirrors the stock table: 16 shells of each kind, four seats,
// the user facing the dealer.
func DefaultLimits() Limits {
	return Limits{
		MaxShellsPerKind: 16,
		MaxPlayers:       4,
		MaxSkill:         5,
		NewOpponent:      PlayerPreset{HP: 2, MaxHP: 4, Skill: 1},
		DefaultPlayers: []PlayerPreset{
			{Name: "YOU", HP: 4, MaxHP: 4, Skill: 0, IsUser: true},
			{Name: "DEALER", HP: 4, MaxHP: 4, Skill: 3},
		},
	}
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the solver configuration from the given path once.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		c, err := ReadGameConfig(path)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// ReadGameConfig decodes a configuration file without touching the global.
func ReadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var c GameConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
		}
	}
	return &c, nil
}

// GetGameConfig returns the global game configuration, nil if none was loaded.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetLimits returns the loaded limits, falling back to defaults.
func GetLimits() Limits {
	return cfg.Limits()
}

// Limits resolves c against the defaults. Zero or negative values fall back.
func (c *GameConfig) Limits() Limits {
	l := DefaultLimits()
	if c == nil {
		return l
	}
	if c.MaxShellsPerKind > 0 {
		l.MaxShellsPerKind = c.MaxShellsPerKind
	}
	if c.MaxPlayers > 0 {
		l.MaxPlayers = c.MaxPlayers
	}
	if c.MaxSkill > 0 {
		l.MaxSkill = c.MaxSkill
	}
	if c.NewOpponent.MaxHP > 0 {
		l.NewOpponent = c.NewOpponent
		l.NewOpponent.Name = ""
	}
	if len(c.DefaultPlayers) > 0 {
		l.DefaultPlayers = append([]PlayerPreset(nil), c.DefaultPlayers...)
	}
	return l
}
