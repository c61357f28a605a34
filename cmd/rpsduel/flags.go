package main

import (
	"github.com/lox/rpsduel/internal/config"
	"github.com/lox/rpsduel/internal/rules"
)

// RuleFlags select the rule set.
type RuleFlags struct {
	Extended  bool   `xor:"rules" help:"Use the extended rules with Echse and Spock"`
	RulesFile string `name:"rules" xor:"rules" type:"existingfile" placeholder:"PATH" help:"Read rules from a file"`
}

// WinFlags select the win condition.
type WinFlags struct {
	BestOf int `xor:"win" placeholder:"N" help:"Play best of N games"`
	Games  int `xor:"win" placeholder:"N" help:"Play N scored games"`
	Wins   int `xor:"win" placeholder:"N" help:"Play until someone has more than N wins"`
}

func (r RuleFlags) apply(o *config.Overrides) {
	if r.Extended {
		o.Builtin = rules.Extended
	}
	o.RulesFile = r.RulesFile
}

func (w WinFlags) apply(o *config.Overrides) {
	o.BestOf = w.BestOf
	o.Games = w.Games
	o.Wins = w.Wins
}

// loadConfig reads the explicit config file, or the one in the XDG config
// directory, or falls back to defaults.
func (g *Globals) loadConfig(o config.Overrides) (*config.Config, error) {
	path := g.Config
	if path == "" {
		path, _ = config.Find()
	}

	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if g.LogLevel != "" {
		o.LogLevel = g.LogLevel
	}
	if g.LogFile != "" {
		o.LogFile = g.LogFile
	}
	cfg.Apply(o)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
