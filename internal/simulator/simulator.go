// Package simulator plays many computer-vs-computer matches and aggregates
// the outcomes.
package simulator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/rpsduel/internal/match"
	"github.com/lox/rpsduel/internal/player"
	"github.com/lox/rpsduel/internal/randutil"
	"github.com/lox/rpsduel/internal/rules"
	"github.com/lox/rpsduel/internal/wincond"
)

// Config describes a batch of computer matches. Zero Parallel means one
// worker per CPU.
type Config struct {
	Rules     *rules.RuleSet
	Condition wincond.Condition
	Matches   int
	Parallel  int
	Seed      int64
	MaxRounds int
	Names     [2]string
	Logger    *log.Logger
	Clock     quartz.Clock
	// Progress, if set, is called after each finished match with the number
	// finished so far. It is called from worker goroutines.
	Progress func(done int)
}

// Simulator plays a batch of matches between two computer players.
type Simulator struct {
	config Config
}

// New checks config and fills in defaults for names, logger and clock.
func New(config Config) (*Simulator, error) {
	if config.Rules == nil {
		return nil, fmt.Errorf("simulator needs a rule set")
	}
	if err := config.Condition.Validate(); err != nil {
		return nil, err
	}
	if config.Matches < 1 {
		return nil, fmt.Errorf("number of matches must be positive, got %d", config.Matches)
	}
	if config.Parallel < 1 {
		config.Parallel = runtime.NumCPU()
	}
	if config.Names[0] == "" {
		config.Names[0] = "Computer A"
	}
	if config.Names[1] == "" {
		config.Names[1] = "Computer B"
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}, nil
}

type outcome struct {
	result  *match.Result
	noScore int
}

// Run plays every match and returns the aggregate statistics. Match i always
// uses the same seeds for a given Config.Seed, so results are reproducible
// regardless of parallelism.
func (s *Simulator) Run(ctx context.Context) (*Stats, error) {
	cfg := s.config
	logger := cfg.Logger.WithPrefix("simulator")
	logger.Info("Starting simulation",
		"matches", cfg.Matches,
		"parallel", cfg.Parallel,
		"condition", cfg.Condition,
		"seed", cfg.Seed)

	outcomes := make([]outcome, cfg.Matches)
	done := make(chan struct{}, cfg.Matches)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)

	var progressDone chan struct{}
	if cfg.Progress != nil {
		progressDone = make(chan struct{})
		go func() {
			defer close(progressDone)
			for n := 1; n <= cfg.Matches; n++ {
				if _, ok := <-done; !ok {
					return
				}
				cfg.Progress(n)
			}
		}()
	}

	for i := range cfg.Matches {
		g.Go(func() error {
			out, err := s.playOne(gctx, i)
			if err != nil {
				return fmt.Errorf("match %d: %w", i+1, err)
			}
			outcomes[i] = out
			if cfg.Progress != nil {
				done <- struct{}{}
			}
			return nil
		})
	}

	err := g.Wait()
	close(done)
	if progressDone != nil {
		<-progressDone
	}
	if err != nil {
		return nil, err
	}

	stats := NewStats(cfg.Names)
	for _, out := range outcomes {
		stats.Add(out.result, out.noScore)
	}
	logger.Info("Simulation complete", "matches", stats.Matches, "rounds", stats.Rounds)
	return stats, nil
}

func (s *Simulator) playOne(ctx context.Context, i int) (outcome, error) {
	cfg := s.config

	a := player.NewComputer(cfg.Names[0], randutil.New(randutil.Derive(cfg.Seed, 2*i)))
	b := player.NewComputer(cfg.Names[1], randutil.New(randutil.Derive(cfg.Seed, 2*i+1)))

	m, err := match.New(cfg.Rules, a, b, cfg.Condition,
		match.WithLogger(cfg.Logger),
		match.WithClock(cfg.Clock),
		match.WithMaxRounds(cfg.MaxRounds))
	if err != nil {
		return outcome{}, err
	}

	var out outcome
	m.Subscribe(match.SubscriberFunc(func(e match.Event) {
		if end, ok := e.(match.RoundEndEvent); ok && !end.Outcome.Scored() {
			out.noScore++
		}
	}))

	out.result, err = m.Play(ctx)
	return out, err
}
