package player

import (
	"context"
	"math/rand/v2"
)

// Computer picks uniformly at random from the available objects.
type Computer struct {
	Tally
	rng *rand.Rand
}

// NewComputer creates a computer player drawing from rng. Pass a seeded rng
// for reproducible matches.
func NewComputer(name string, rng *rand.Rand) *Computer {
	return &Computer{Tally: NewTally(name), rng: rng}
}

func (c *Computer) Choose(ctx context.Context, objects []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(objects) == 0 {
		return "", ErrNoObjects
	}
	return objects[c.rng.IntN(len(objects))], nil
}
