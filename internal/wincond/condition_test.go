package wincond

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		cond  Condition
		a, b  int
		aWins bool
		bWins bool
	}{
		{"best-of-3 start", BestOf(3), 0, 0, false, false},
		{"best-of-3 one each", BestOf(3), 1, 1, false, false},
		{"best-of-3 majority", BestOf(3), 2, 1, true, false},
		{"best-of-3 sweep", BestOf(3), 2, 0, true, false},
		{"best-of-3 b majority", BestOf(3), 0, 2, false, true},
		{"best-of-4 needs three", BestOf(4), 2, 0, false, false},
		{"best-of-4 three wins", BestOf(4), 3, 2, true, false},
		{"wins-5 at five", Wins(5), 5, 0, false, false},
		{"wins-5 beyond five", Wins(5), 6, 0, true, false},
		{"wins-5 b beyond five", Wins(5), 3, 6, false, true},
		{"games-5 four played", Games(5), 2, 2, false, false},
		{"games-5 a ahead", Games(5), 3, 2, true, false},
		{"games-5 b ahead", Games(5), 1, 4, false, true},
		{"games-4 even split", Games(4), 2, 2, true, true},
		{"games-4 past threshold", Games(4), 3, 3, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aWins, bWins := tt.cond.Evaluate(tt.a, tt.b)
			assert.Equal(t, tt.aWins, aWins, "a flag")
			assert.Equal(t, tt.bWins, bWins, "b flag")
			assert.Equal(t, tt.aWins || tt.bWins, tt.cond.Finished(tt.a, tt.b))
		})
	}
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, AWins, BestOf(3).Verdict(2, 1))
	assert.Equal(t, BWins, Wins(1).Verdict(0, 2))
	assert.Equal(t, BothWin, Games(2).Verdict(1, 1))
	assert.Equal(t, Draw, BestOf(5).Verdict(1, 1))
}

func TestEvaluateIsPure(t *testing.T) {
	c := Games(6)
	a1, b1 := c.Evaluate(3, 3)
	a2, b2 := c.Evaluate(3, 3)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

func TestParse(t *testing.T) {
	t.Run("valid selectors", func(t *testing.T) {
		for input, want := range map[string]Condition{
			"best-of:3": BestOf(3),
			"wins:7":    Wins(7),
			" games:10": Games(10),
		} {
			got, err := Parse(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, got, input)
		}
	})

	t.Run("invalid selectors", func(t *testing.T) {
		for _, input := range []string{"", "best-of", "best-of:x", "best-of:0", "games:-2", "rounds:3"} {
			_, err := Parse(input)
			assert.ErrorIs(t, err, ErrInvalidCondition, input)
		}
	})

	t.Run("text round trip", func(t *testing.T) {
		text, err := Games(9).MarshalText()
		require.NoError(t, err)

		var c Condition
		require.NoError(t, c.UnmarshalText(text))
		assert.Equal(t, Games(9), c)
	})
}

func TestDefault(t *testing.T) {
	assert.Equal(t, BestOf(3), Default())
	assert.NoError(t, Default().Validate())
	assert.Equal(t, "best-of:3", Default().String())
}
