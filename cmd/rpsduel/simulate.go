package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"

	"github.com/lox/rpsduel/internal/config"
	"github.com/lox/rpsduel/internal/randutil"
	"github.com/lox/rpsduel/internal/simulator"
)

// SimulateCmd plays computer matches in bulk.
type SimulateCmd struct {
	RuleFlags `embed:""`
	WinFlags  `embed:""`

	Matches   int   `short:"n" default:"1000" help:"Number of matches to play"`
	Parallel  int   `short:"p" help:"Matches to play at once (0 for one per CPU)"`
	Seed      int64 `help:"Base seed (0 for random)"`
	MaxRounds int   `help:"End a match as a draw after this many rounds (0 for no limit)"`
	Quiet     bool  `short:"q" help:"Hide the progress spinner"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	o := config.Overrides{MaxRounds: c.MaxRounds}
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

	seed := c.Seed
	if seed == 0 {
		seed = randutil.RandomSeed()
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	simCfg := simulator.Config{
		Rules:     rs,
		Condition: cfg.Condition(),
		Matches:   c.Matches,
		Parallel:  c.Parallel,
		Seed:      seed,
		MaxRounds: cfg.MaxRounds,
		Logger:    logger,
	}

	var sp *spinner.Spinner
	if !c.Quiet && isatty.IsTerminal(os.Stderr.Fd()) {
		sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		sp.Suffix = fmt.Sprintf(" 0/%d matches", c.Matches)
		simCfg.Progress = func(done int) {
			sp.Lock()
			sp.Suffix = fmt.Sprintf(" %d/%d matches", done, c.Matches)
			sp.Unlock()
		}
	}

	sim, err := simulator.New(simCfg)
	if err != nil {
		return err
	}

	start := time.Now()
	if sp != nil {
		sp.Start()
	}
	stats, err := sim.Run(ctx)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Rules:           %s (%d objects)\n", cfg.RulesSource(), rs.Len())
	fmt.Fprintf(stdout, "Condition:       %s\n", cfg.Condition())
	fmt.Fprintf(stdout, "Seed:            %d\n", seed)
	fmt.Fprint(stdout, stats.Summary())
	fmt.Fprintf(stdout, "Time:            %v\n", time.Since(start).Round(time.Millisecond))
	return nil
}
