// Package wincond decides when a match is over and who won it.
package wincond

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind selects the win-condition strategy.
type Kind int

const (
	// BestOutOf ends the match once a side holds a majority of N games.
	BestOutOf Kind = iota
	// NumberOfWins ends the match once a side has more than N wins.
	NumberOfWins
	// NumberOfGames ends the match after N scored rounds.
	NumberOfGames
)

// DefaultBestOf is used when no condition is configured.
const DefaultBestOf = 3

var ErrInvalidCondition = errors.New("invalid win condition")

var kindNames = map[Kind]string{
	BestOutOf:     "best-of",
	NumberOfWins:  "wins",
	NumberOfGames: "games",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Condition is one win-condition strategy closed over its parameter.
type Condition struct {
	Kind Kind
	N    int
}

func BestOf(n int) Condition { return Condition{Kind: BestOutOf, N: n} }
func Wins(n int) Condition { return Condition{Kind: NumberOfWins, N: n} }
func Games(n int) Condition { return Condition{Kind: NumberOfGames, N: n} }

// Default is best-of-3.
func Default() Condition {
	return BestOf(DefaultBestOf)
}

func (c Condition) String() string {
	return fmt.Sprintf("%s:%d", c.Kind, c.N)
}

// Validate checks the parameter is usable.
func (c Condition) Validate() error {
	if _, ok := kindNames[c.Kind]; !ok {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidCondition, c.Kind)
	}
	if c.N < 1 {
		return fmt.Errorf("%w: %s needs a positive number, got %d", ErrInvalidCondition, c.Kind, c.N)
	}
	return nil
}

// Evaluate reports, for the given scores, whether side A and side B have won.
// Both flags may be set (a tie finish) and neither means the match goes on.
func (c Condition) Evaluate(a, b int) (aWins, bWins bool) {
	switch c.Kind {
	case BestOutOf:
		need := c.N / 2
		return a > need, b > need
	case NumberOfWins:
		return a > c.N, b > c.N
	case NumberOfGames:
		if a+b < c.N {
			return false, false
		}
		top := max(a, b)
		return a == top, b == top
	default:
		return false, false
	}
}

// Finished reports whether either side has won.
func (c Condition) Finished(a, b int) bool {
	aWins, bWins := c.Evaluate(a, b)
	return aWins || bWins
}

// Verdict classifies the scores as a final result.
func (c Condition) Verdict(a, b int) Verdict {
	aWins, bWins := c.Evaluate(a, b)
	switch {
	case aWins && bWins:
		return BothWin
	case aWins:
		return AWins
	case bWins:
		return BWins
	default:
		return Draw
	}
}

// Parse reads a condition written as "<kind>:<n>", e.g. "best-of:5",
// "wins:3" or "games:10".
func Parse(s string) (Condition, error) {
	name, num, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Condition{}, fmt.Errorf("%w: %q, expected <kind>:<n>", ErrInvalidCondition, s)
	}

	n, err := strconv.Atoi(num)
	if err != nil {
		return Condition{}, fmt.Errorf("%w: %q: %v", ErrInvalidCondition, s, err)
	}

	for kind, kindName := range kindNames {
		if kindName == name {
			c := Condition{Kind: kind, N: n}
			if err := c.Validate(); err != nil {
				return Condition{}, err
			}
			return c, nil
		}
	}
	return Condition{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidCondition, name)
}

// MarshalText renders the condition in the form Parse accepts.
func (c Condition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText lets a Condition be decoded from config values.
func (c *Condition) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
