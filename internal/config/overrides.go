package config

import "github.com/lox/rpsduel/internal/randutil"

// Overrides are settings given on the command line. Zero values leave the
// file configuration untouched.
type Overrides struct {
	Builtin   string
	RulesFile string

	BestOf int
	Games  int
	Wins   int

	NameA     string
	NameB     string
	Autoplay  bool
	Seed      int64
	MaxRounds int
	LogLevel  string
	LogFile   string
	Record    string
}

// Apply merges o into c. A rule source or win condition on the command line
// replaces the one from the file entirely.
func (c *Config) Apply(o Overrides) {
	c.applyDefaults()

	switch {
	case o.RulesFile != "":
		c.Rules = &RulesConfig{File: o.RulesFile}
	case o.Builtin != "":
		c.Rules = &RulesConfig{Builtin: o.Builtin}
	}

	if o.BestOf != 0 || o.Games != 0 || o.Wins != 0 {
		c.Win = &WinConfig{BestOf: o.BestOf, Games: o.Games, Wins: o.Wins}
	}

	a, b := c.player(SlotA), c.player(SlotB)
	if o.Autoplay {
		a.Type = TypeComputer
		if o.NameA == "" && a.Name == "You" {
			a.Name = defaultName(TypeComputer, SlotA)
		}
	}
	if o.NameA != "" {
		a.Name = o.NameA
	}
	if o.NameB != "" {
		b.Name = o.NameB
	}
	if o.Seed != 0 {
		a.Seed = o.Seed
		b.Seed = randutil.Derive(o.Seed, 1)
	}

	if o.MaxRounds != 0 {
		c.MaxRounds = o.MaxRounds
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
	if o.Record != "" {
		c.Record = o.Record
	}
}
