// Package match runs a match between two players under a rule set and a win
// condition.
//
// A match is a small state machine:
//
//	AwaitingRound → RoundResolved → AwaitingRound | Finished
//
// Each round player A chooses, then player B chooses, both choices are
// revealed together, the rule set resolves the pair, the winner's score is
// incremented and the win condition is checked. Events are published to subscribers at every step so that the
// console renderer and the match recorder stay out of the game logic.
package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/rpsduel/internal/matchid"
	"github.com/lox/rpsduel/internal/player"
	"github.com/lox/rpsduel/internal/rules"
	"github.com/lox/rpsduel/internal/wincond"
)

// State is the position of a match in its round cycle.
type State int

const (
	AwaitingRound State = iota
	RoundResolved
	Finished
)

func (s State) String() string {
	switch s {
	case AwaitingRound:
		return "awaiting_round"
	case RoundResolved:
		return "round_resolved"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

var ErrFinished = errors.New("match already finished")

// Match is a single game between two players.
type Match struct {
	id        string
	rules     *rules.RuleSet
	players   [2]player.Player
	condition wincond.Condition
	maxRounds int

	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus

	state    State
	round    int
	begun    bool
	started  time.Time
	ended    time.Time
	limitHit bool
}

// Option configures a Match.
type Option func(*Match)

// WithID overrides the generated match ID.
func WithID(id string) Option {
	return func(m *Match) { m.id = id }
}

// WithClock sets the clock used for timestamps.
func WithClock(clock quartz.Clock) Option {
	return func(m *Match) { m.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Match) { m.logger = logger }
}

// WithMaxRounds stops the match after n rounds. Zero means no limit.
func WithMaxRounds(n int) Option {
	return func(m *Match) { m.maxRounds = n }
}

// New creates a match between a and b. It fails if the win condition is not
// usable; the rule set is already validated by construction.
func New(rs *rules.RuleSet, a, b player.Player, condition wincond.Condition, opts ...Option) (*Match, error) {
	if rs == nil {
		return nil, fmt.Errorf("match needs a rule set")
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("match needs two players")
	}
	if err := condition.Validate(); err != nil {
		return nil, err
	}

	m := &Match{
		rules:     rs,
		players:   [2]player.Player{a, b},
		condition: condition,
		logger:    log.Default(),
		clock:     quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.maxRounds < 0 {
		return nil, fmt.Errorf("max rounds cannot be negative: %d", m.maxRounds)
	}
	if m.id == "" {
		m.id = matchid.Generate()
	}
	m.logger = m.logger.WithPrefix("match").With("match", m.id)

	return m, nil
}

// ID returns the match identifier.
func (m *Match) ID() string { return m.id }

// State returns the current state.
func (m *Match) State() State { return m.state }

// Round returns the number of rounds played so far.
func (m *Match) Round() int { return m.round }

// Players returns both players, A first.
func (m *Match) Players() [2]player.Player { return m.players }

// Subscribe registers a subscriber for match events. Subscribe before Play.
func (m *Match) Subscribe(subscriber Subscriber) {
	m.bus.Subscribe(subscriber)
}

// Play runs rounds until the match is finished and returns the result.
// Errors from a player, including player.ErrQuit, abort the match without a
// result.
func (m *Match) Play(ctx context.Context) (*Result, error) {
	for m.state != Finished {
		if _, err := m.Step(ctx); err != nil {
			return nil, err
		}
	}
	return m.Result(), nil
}

// Step plays exactly one round and returns the state after it.
func (m *Match) Step(ctx context.Context) (State, error) {
	if m.state == Finished {
		return m.state, ErrFinished
	}
	if !m.begun {
		m.start()
	}

	m.state = AwaitingRound
	round := m.round + 1
	m.bus.Publish(RoundStartEvent{Round: round, timestamp: m.clock.Now()})

	objects := m.rules.Objects()
	var choices [2]string
	for i, p := range m.players {
		choice, err := p.Choose(ctx, objects)
		if err != nil {
			m.logger.Info("Round aborted", "round", round, "player", p.Name(), "error", err)
			return m.state, err
		}
		if !m.rules.Contains(choice) {
			return m.state, fmt.Errorf("player %s chose unknown object %q", p.Name(), choice)
		}
		choices[i] = choice
	}

	// Choices are revealed together once both are locked in.
	now := m.clock.Now()
	for i, p := range m.players {
		m.bus.Publish(ChoiceEvent{
			Round:     round,
			Side:      sides[i],
			Player:    p.Name(),
			Object:    choices[i],
			timestamp: now,
		})
	}

	outcome := m.rules.Resolve(choices[0], choices[1])
	scorer := ""
	switch outcome.Winner {
	case rules.SideA:
		m.players[0].IncrementScore()
		scorer = m.players[0].Name()
	case rules.SideB:
		m.players[1].IncrementScore()
		scorer = m.players[1].Name()
	}

	m.round = round
	m.state = RoundResolved
	scores := m.Scores()

	m.logger.Debug("Round resolved",
		"round", round,
		"a", choices[0],
		"b", choices[1],
		"winner", outcome.Winner,
		"score", fmt.Sprintf("%d-%d", scores[0], scores[1]))

	m.bus.Publish(RoundEndEvent{
		Round:     round,
		Choices:   choices,
		Outcome:   outcome,
		Scorer:    scorer,
		Scores:    scores,
		Players:   m.names(),
		timestamp: m.clock.Now(),
	})

	if m.condition.Finished(scores[0], scores[1]) {
		m.finish()
	} else if m.maxRounds > 0 && m.round >= m.maxRounds {
		m.limitHit = true
		m.finish()
	} else {
		m.state = AwaitingRound
	}

	return m.state, nil
}

var sides = [2]rules.Side{rules.SideA, rules.SideB}

// Scores returns the current scores, A first.
func (m *Match) Scores() [2]int {
	return [2]int{m.players[0].Score(), m.players[1].Score()}
}

// Result evaluates the win condition on the current scores. It may be called
// at any time; the verdict is only final once the match is Finished.
func (m *Match) Result() *Result {
	scores := m.Scores()
	verdict := m.condition.Verdict(scores[0], scores[1])

	res := &Result{
		MatchID:      m.id,
		Players:      m.names(),
		Scores:       scores,
		Rounds:       m.round,
		Condition:    m.condition,
		Verdict:      verdict,
		RoundLimited: m.limitHit,
		StartedAt:    m.started,
		FinishedAt:   m.ended,
	}
	if m.state != Finished {
		res.FinishedAt = m.clock.Now()
	}
	switch verdict {
	case wincond.AWins:
		res.Winners = []string{res.Players[0]}
	case wincond.BWins:
		res.Winners = []string{res.Players[1]}
	case wincond.BothWin:
		res.Winners = []string{res.Players[0], res.Players[1]}
	}
	return res
}

func (m *Match) start() {
	m.begun = true
	m.started = m.clock.Now()
	m.logger.Info("Match started",
		"a", m.players[0].Name(),
		"b", m.players[1].Name(),
		"objects", m.rules.Len(),
		"condition", m.condition)
	m.bus.Publish(MatchStartEvent{
		MatchID:   m.id,
		Players:   m.names(),
		Objects:   m.rules.Objects(),
		Rules:     m.rules.Rules(),
		Condition: m.condition,
		timestamp: m.started,
	})
}

func (m *Match) finish() {
	m.state = Finished
	m.ended = m.clock.Now()

	res := m.Result()
	m.logger.Info("Match finished",
		"rounds", res.Rounds,
		"score", fmt.Sprintf("%d-%d", res.Scores[0], res.Scores[1]),
		"verdict", res.Verdict,
		"roundLimited", res.RoundLimited)
	m.bus.Publish(MatchEndEvent{Result: *res, timestamp: res.FinishedAt})
}

func (m *Match) names() [2]string {
	return [2]string{m.players[0].Name(), m.players[1].Name()}
}
