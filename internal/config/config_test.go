package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rpsduel/internal/randutil"
	"github.com/lox/rpsduel/internal/rules"
	"github.com/lox/rpsduel/internal/wincond"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, wincond.BestOf(3), cfg.Condition())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, PlayerConfig{Slot: SlotA, Name: "You", Type: TypeHuman}, cfg.Player(SlotA))
	assert.Equal(t, PlayerConfig{Slot: SlotB, Name: "Computer", Type: TypeComputer}, cfg.Player(SlotB))

	rs, err := cfg.RuleSet()
	require.NoError(t, err)
	assert.Equal(t, 3, rs.Len())
	assert.Equal(t, rules.Classic, cfg.RulesSource())
}

func TestLoadHCL(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "house.txt", "Feuer verbrennt Holz\nWasser löscht Feuer\nHolz treibt_auf Wasser\n")
	path := writeFile(t, dir, "config.hcl", `
rules {
  file = "house.txt"
}

win {
  games = 5
}

player "a" {
  name = "Alice"
}

player "b" {
  name = "Bot"
  seed = 42
}

max_rounds = 50
log_level  = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, wincond.Games(5), cfg.Condition())
	assert.Equal(t, 50, cfg.MaxRounds)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "house.txt"), cfg.Rules.File)

	alice := cfg.Player(SlotA)
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, TypeHuman, alice.Type)

	bot := cfg.Player(SlotB)
	assert.Equal(t, TypeComputer, bot.Type)
	assert.Equal(t, int64(42), bot.Seed)

	rs, err := cfg.RuleSet()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Feuer", "Holz", "Wasser"}, rs.Objects())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
max_rounds = 20

[rules]
builtin = "extended"

[win]
wins = 4

[[player]]
slot = "a"
type = "computer"
seed = 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, wincond.Wins(4), cfg.Condition())
	assert.Equal(t, "Computer A", cfg.Player(SlotA).Name)
	assert.Equal(t, "Computer", cfg.Player(SlotB).Name)

	rs, err := cfg.RuleSet()
	require.NoError(t, err)
	assert.Equal(t, 5, rs.Len())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.hcl"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "broken.hcl", "rules {"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "unknown.hcl", "colour = \"blue\"\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "broken.toml", "[win\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"two rule sources", func(c *Config) { c.Rules = &RulesConfig{Builtin: "classic", File: "x.txt"} }},
		{"two win conditions", func(c *Config) { c.Win = &WinConfig{BestOf: 3, Games: 5} }},
		{"negative win parameter", func(c *Config) { c.Win = &WinConfig{Wins: -1} }},
		{"negative max rounds", func(c *Config) { c.MaxRounds = -5 }},
		{"unknown slot", func(c *Config) { c.Players = append(c.Players, PlayerConfig{Slot: "c", Type: TypeHuman}) }},
		{"duplicate slot", func(c *Config) { c.Players = append(c.Players, PlayerConfig{Slot: SlotA, Type: TypeHuman}) }},
		{"bad player type", func(c *Config) { c.player(SlotB).Type = "robot" }},
		{"same names", func(c *Config) { c.player(SlotB).Name = "You" }},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("command line replaces file settings", func(t *testing.T) {
		cfg := Default()
		cfg.Rules = &RulesConfig{File: "house.txt"}
		cfg.Win = &WinConfig{Games: 9}

		cfg.Apply(Overrides{Builtin: rules.Extended, BestOf: 5, NameA: "Alice", Seed: 10, Record: "out.json"})
		require.NoError(t, cfg.Validate())

		assert.Equal(t, &RulesConfig{Builtin: rules.Extended}, cfg.Rules)
		assert.Equal(t, wincond.BestOf(5), cfg.Condition())
		assert.Equal(t, "Alice", cfg.Player(SlotA).Name)
		assert.Equal(t, int64(10), cfg.Player(SlotA).Seed)
		assert.Equal(t, randutil.Derive(10, 1), cfg.Player(SlotB).Seed)
		assert.Equal(t, "out.json", cfg.Record)
	})

	t.Run("every seed keeps both players reproducible", func(t *testing.T) {
		for _, seed := range []int64{-1, 1, math.MaxInt64} {
			cfg := Default()
			cfg.Apply(Overrides{Seed: seed})
			assert.Equal(t, seed, cfg.Player(SlotA).Seed)
			assert.NotZero(t, cfg.Player(SlotB).Seed, "seed %d", seed)
			assert.NotEqual(t, seed, cfg.Player(SlotB).Seed, "seed %d", seed)
		}
	})

	t.Run("zero overrides keep the file", func(t *testing.T) {
		cfg := Default()
		cfg.Win = &WinConfig{Wins: 2}
		cfg.Apply(Overrides{})
		assert.Equal(t, wincond.Wins(2), cfg.Condition())
		assert.Equal(t, "You", cfg.Player(SlotA).Name)
	})

	t.Run("autoplay", func(t *testing.T) {
		cfg := Default()
		cfg.Apply(Overrides{Autoplay: true})
		require.NoError(t, cfg.Validate())
		assert.Equal(t, TypeComputer, cfg.Player(SlotA).Type)
		assert.Equal(t, "Computer A", cfg.Player(SlotA).Name)
	})
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "none"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	_, ok := Find()
	assert.False(t, ok)

	want := writeFile(t, dir, "rpsduel/config.hcl", "max_rounds = 3\n")
	got, ok := Find()
	require.True(t, ok)
	assert.Equal(t, want, got)
}
