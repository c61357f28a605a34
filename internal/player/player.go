// Package player provides the two kinds of participants in a match: an
// interactive Human and a randomized Computer.
package player

import (
	"context"
	"errors"
)

var (
	// ErrQuit is returned when a player asks to leave the match.
	ErrQuit = errors.New("player quit")
	// ErrTooManyAttempts is returned when a human exceeds the configured
	// number of invalid inputs.
	ErrTooManyAttempts = errors.New("too many invalid choices")
	ErrNoObjects       = errors.New("no objects to choose from")
)

// Player is anything that can pick an object each round.
type Player interface {
	Name() string
	Score() int
	IncrementScore()
	// Choose blocks until the player picks one of objects.
	Choose(ctx context.Context, objects []string) (string, error)
}

// Tally holds a player's display name and running score. Embed it to get the
// bookkeeping half of Player.
type Tally struct {
	name  string
	score int
}

func NewTally(name string) Tally {
	return Tally{name: name}
}

func (t *Tally) Name() string { return t.name }
func (t *Tally) Score() int { return t.score }
func (t *Tally) IncrementScore() { t.score++ }
func (t *Tally) String() string { return t.name }
