// Package config loads match settings from HCL or TOML files and merges them
// with command-line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/rpsduel/internal/rules"
	"github.com/lox/rpsduel/internal/wincond"
)

// Player slots and types.
const (
	SlotA = "a"
	SlotB = "b"

	TypeHuman    = "human"
	TypeComputer = "computer"
)

var ErrInvalid = errors.New("invalid configuration")

// Config represents a complete match configuration
type Config struct {
	Rules     *RulesConfig   `hcl:"rules,block" toml:"rules"`
	Win       *WinConfig     `hcl:"win,block" toml:"win"`
	Players   []PlayerConfig `hcl:"player,block" toml:"player"`
	MaxRounds int            `hcl:"max_rounds,optional" toml:"max_rounds"`
	LogLevel  string         `hcl:"log_level,optional" toml:"log_level"`
	LogFile   string         `hcl:"log_file,optional" toml:"log_file"`
	Record    string         `hcl:"record,optional" toml:"record"`
}

// RulesConfig selects the rule source: a built-in set or a rule file.
type RulesConfig struct {
	Builtin string `hcl:"builtin,optional" toml:"builtin"`
	File    string `hcl:"file,optional" toml:"file"`
}

// WinConfig selects exactly one win condition.
type WinConfig struct {
	BestOf int `hcl:"best_of,optional" toml:"best_of"`
	Games  int `hcl:"games,optional" toml:"games"`
	Wins   int `hcl:"wins,optional" toml:"wins"`
}

// PlayerConfig defines one side of the match
type PlayerConfig struct {
	Slot string `hcl:"slot,label" toml:"slot"`
	Name string `hcl:"name,optional" toml:"name"`
	Type string `hcl:"type,optional" toml:"type"`
	Seed int64  `hcl:"seed,optional" toml:"seed"`
}

// Default returns the configuration used when no file is present: you
// against the computer, classic rules, best of three.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Find returns the default config file under the XDG config directories,
// if one exists.
func Find() (string, bool) {
	for _, name := range []string{"rpsduel/config.hcl", "rpsduel/config.toml"} {
		if path, err := xdg.SearchConfigFile(name); err == nil {
			return path, true
		}
	}
	return "", false
}

// Load reads a configuration file. Files ending in .toml are decoded as TOML,
// everything else as HCL.
func Load(filename string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		if _, err := toml.DecodeFile(filename, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode TOML file %s: %w", filename, err)
		}
	default:
		if _, err := os.Stat(filename); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}
		diags = gohcl.DecodeBody(file.Body, nil, &cfg)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
	}

	// Rule files are relative to the config file.
	if cfg.Rules != nil && cfg.Rules.File != "" && !filepath.IsAbs(cfg.Rules.File) {
		cfg.Rules.File = filepath.Join(filepath.Dir(filename), cfg.Rules.File)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}

	defaults := map[string]PlayerConfig{
		SlotA: {Slot: SlotA, Name: "You", Type: TypeHuman},
		SlotB: {Slot: SlotB, Name: "Computer", Type: TypeComputer},
	}
	for i := range c.Players {
		def, ok := defaults[c.Players[i].Slot]
		if !ok {
			continue
		}
		if c.Players[i].Type == "" {
			c.Players[i].Type = def.Type
		}
		if c.Players[i].Name == "" {
			if c.Players[i].Type == def.Type {
				c.Players[i].Name = def.Name
			} else {
				c.Players[i].Name = defaultName(c.Players[i].Type, c.Players[i].Slot)
			}
		}
	}
	for _, slot := range []string{SlotA, SlotB} {
		if c.player(slot) == nil {
			c.Players = append(c.Players, defaults[slot])
		}
	}
}

func defaultName(playerType, slot string) string {
	if playerType == TypeHuman {
		return "Player " + strings.ToUpper(slot)
	}
	return "Computer " + strings.ToUpper(slot)
}

func (c *Config) player(slot string) *PlayerConfig {
	for i := range c.Players {
		if c.Players[i].Slot == slot {
			return &c.Players[i]
		}
	}
	return nil
}

// Player returns the configuration for slot a or b.
func (c *Config) Player(slot string) PlayerConfig {
	if p := c.player(slot); p != nil {
		return *p
	}
	return PlayerConfig{Slot: slot}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Rules != nil && c.Rules.Builtin != "" && c.Rules.File != "" {
		return fmt.Errorf("%w: rules: set either builtin or file, not both", ErrInvalid)
	}

	if c.Win != nil {
		set := 0
		for name, n := range map[string]int{"best_of": c.Win.BestOf, "games": c.Win.Games, "wins": c.Win.Wins} {
			if n < 0 {
				return fmt.Errorf("%w: win: %s must be positive, got %d", ErrInvalid, name, n)
			}
			if n > 0 {
				set++
			}
		}
		if set > 1 {
			return fmt.Errorf("%w: win: set only one of best_of, games or wins", ErrInvalid)
		}
	}

	if c.MaxRounds < 0 {
		return fmt.Errorf("%w: max_rounds cannot be negative", ErrInvalid)
	}

	seen := make(map[string]bool)
	for _, p := range c.Players {
		if p.Slot != SlotA && p.Slot != SlotB {
			return fmt.Errorf("%w: player %q: slot must be %q or %q", ErrInvalid, p.Slot, SlotA, SlotB)
		}
		if seen[p.Slot] {
			return fmt.Errorf("%w: player %q defined twice", ErrInvalid, p.Slot)
		}
		seen[p.Slot] = true
		if p.Type != TypeHuman && p.Type != TypeComputer {
			return fmt.Errorf("%w: player %q: invalid type %q", ErrInvalid, p.Slot, p.Type)
		}
	}
	if a, b := c.Player(SlotA), c.Player(SlotB); a.Name != "" && a.Name == b.Name {
		return fmt.Errorf("%w: both players are called %q", ErrInvalid, a.Name)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}

	return nil
}

// RuleSet loads the configured rules. Classic rules are used when none are
// configured.
func (c *Config) RuleSet() (*rules.RuleSet, error) {
	switch {
	case c.Rules != nil && c.Rules.File != "":
		return rules.ParseFile(c.Rules.File)
	case c.Rules != nil && c.Rules.Builtin != "":
		return rules.Builtin(c.Rules.Builtin)
	default:
		return rules.Builtin(rules.Classic)
	}
}

// RulesSource describes where the rules come from, for logging.
func (c *Config) RulesSource() string {
	switch {
	case c.Rules != nil && c.Rules.File != "":
		return c.Rules.File
	case c.Rules != nil && c.Rules.Builtin != "":
		return c.Rules.Builtin
	default:
		return rules.Classic
	}
}

// Condition returns the configured win condition, best of three by default.
func (c *Config) Condition() wincond.Condition {
	switch {
	case c.Win == nil:
		return wincond.Default()
	case c.Win.Games > 0:
		return wincond.Games(c.Win.Games)
	case c.Win.Wins > 0:
		return wincond.Wins(c.Win.Wins)
	case c.Win.BestOf > 0:
		return wincond.BestOf(c.Win.BestOf)
	default:
		return wincond.Default()
	}
}
