package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/rpsduel/internal/config"
	"github.com/lox/rpsduel/internal/display"
	"github.com/lox/rpsduel/internal/match"
	"github.com/lox/rpsduel/internal/player"
	"github.com/lox/rpsduel/internal/randutil"
)

// stdout is where matches are rendered.
var stdout io.Writer = os.Stdout

// PlayCmd plays one match in the terminal.
type PlayCmd struct {
	RuleFlags `embed:""`
	WinFlags  `embed:""`

	Name      string `help:"Name of player A"`
	Opponent  string `help:"Name of player B"`
	Autoplay  bool   `help:"Let the computer play for player A as well"`
	Seed      int64  `help:"Seed for the computer players (0 for random)"`
	MaxRounds int    `help:"End the match as a draw after this many rounds (0 for no limit)"`
	Record    string `type:"path" help:"Write a JSON record of the match to this file"`
	TUI       bool   `name:"tui" help:"Use the full-screen text prompt instead of line editing"`
	History   string `type:"path" help:"Keep input history in this file"`
}

func (c *PlayCmd) Run(g *Globals) error {
	o := config.Overrides{
		NameA:     c.Name,
		NameB:     c.Opponent,
		Autoplay:  c.Autoplay,
		Seed:      c.Seed,
		MaxRounds: c.MaxRounds,
		Record:    c.Record,
	}
	c.RuleFlags.apply(&o)
	c.WinFlags.apply(&o)

	cfg, err := g.loadConfig(o)
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	rs, err := cfg.RuleSet()
	if err != nil {
		return err
	}
	logger.Info("Rules loaded", "source", cfg.RulesSource(), "objects", rs.Len())

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	out := stdout
	var in player.LineReader
	if cfg.Player(config.SlotA).Type == config.TypeHuman || cfg.Player(config.SlotB).Type == config.TypeHuman {
		if c.TUI {
			in = display.NewTextPrompt("> ")
		} else {
			rl, err := display.NewReadlineInput("> ", c.History)
			if err != nil {
				return fmt.Errorf("failed to open terminal: %w", err)
			}
			defer rl.Close()
			in, out = rl, rl.Stdout()
		}
	}

	a := newPlayer(cfg.Player(config.SlotA), in, out, logger)
	b := newPlayer(cfg.Player(config.SlotB), in, out, logger)

	m, err := match.New(rs, a, b, cfg.Condition(),
		match.WithLogger(logger),
		match.WithMaxRounds(cfg.MaxRounds))
	if err != nil {
		return err
	}
	m.Subscribe(display.NewConsole(out))

	var recorder *match.Recorder
	if cfg.Record != "" {
		recorder = match.NewRecorder()
		m.Subscribe(recorder)
	}

	_, err = m.Play(ctx)

	if recorder != nil {
		if werr := recorder.WriteFile(cfg.Record); werr != nil {
			logger.Error("Failed to write match record", "path", cfg.Record, "error", werr)
		} else {
			logger.Info("Match record written", "path", cfg.Record)
		}
	}

	switch {
	case errors.Is(err, player.ErrQuit), errors.Is(err, context.Canceled):
		logger.Info("Match abandoned", "round", m.Round())
		return nil
	case err != nil:
		return err
	}
	return nil
}

func newPlayer(pc config.PlayerConfig, in player.LineReader, out io.Writer, logger *log.Logger) player.Player {
	if pc.Type == config.TypeHuman {
		return player.NewHuman(pc.Name, in, out, logger)
	}
	seed := pc.Seed
	if seed == 0 {
		seed = randutil.RandomSeed()
	}
	logger.Info("Computer player", "name", pc.Name, "seed", seed)
	return player.NewComputer(pc.Name, randutil.New(seed))
}
