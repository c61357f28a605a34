package player

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rpsduel/internal/randutil"
)

var objects = []string{"Schere", "Stein", "Papier"}

// scriptedInput replays fixed lines, then reports EOF.
type scriptedInput struct {
	lines       []string
	reads       int
	completions []string
}

func (s *scriptedInput) Readline() (string, error) {
	if s.reads >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.reads]
	s.reads++
	return line, nil
}

func (s *scriptedInput) SetCompletions(words []string) {
	s.completions = words
}

type failingInput struct{}

func (failingInput) Readline() (string, error) {
	return "", errors.New("terminal gone")
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestHuman(lines ...string) (*Human, *scriptedInput, *bytes.Buffer) {
	in := &scriptedInput{lines: lines}
	out := &bytes.Buffer{}
	return NewHuman("Mensch", in, out, quietLogger()), in, out
}

func TestHumanChoose(t *testing.T) {
	ctx := context.Background()

	t.Run("exact label", func(t *testing.T) {
		h, in, out := newTestHuman("Stein")
		choice, err := h.Choose(ctx, objects)
		require.NoError(t, err)
		assert.Equal(t, "Stein", choice)
		assert.Equal(t, 1, in.reads)
		assert.Contains(t, out.String(), "Papier")
		assert.Contains(t, out.String(), "[2]")
	})

	t.Run("index", func(t *testing.T) {
		h, _, _ := newTestHuman("2")
		choice, err := h.Choose(ctx, objects)
		require.NoError(t, err)
		assert.Equal(t, "Papier", choice)
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		h, _, _ := newTestHuman("  Schere \n")
		choice, err := h.Choose(ctx, objects)
		require.NoError(t, err)
		assert.Equal(t, "Schere", choice)
	})

	t.Run("invalid input reprompts", func(t *testing.T) {
		h, in, out := newTestHuman("Echse", "3", "-1", "stein", "0")
		choice, err := h.Choose(ctx, objects)
		require.NoError(t, err)
		assert.Equal(t, "Schere", choice)
		assert.Equal(t, 5, in.reads)
		assert.Equal(t, 4, bytes.Count(out.Bytes(), []byte("There is no object")))
	})

	t.Run("signed indexes are rejected", func(t *testing.T) {
		h, in, out := newTestHuman("+1", "-0", "1")
		choice, err := h.Choose(ctx, objects)
		require.NoError(t, err)
		assert.Equal(t, "Stein", choice)
		assert.Equal(t, 3, in.reads)
		assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("There is no object")))
	})

	t.Run("quit word", func(t *testing.T) {
		h, _, _ := newTestHuman("Echse", QuitWord)
		_, err := h.Choose(ctx, objects)
		assert.ErrorIs(t, err, ErrQuit)
	})

	t.Run("end of input quits", func(t *testing.T) {
		h, _, _ := newTestHuman()
		_, err := h.Choose(ctx, objects)
		assert.ErrorIs(t, err, ErrQuit)
	})

	t.Run("read errors propagate", func(t *testing.T) {
		h := NewHuman("Mensch", failingInput{}, io.Discard, quietLogger())
		_, err := h.Choose(ctx, objects)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrQuit)
		assert.Contains(t, err.Error(), "terminal gone")
	})

	t.Run("attempt limit", func(t *testing.T) {
		in := &scriptedInput{lines: []string{"a", "b", "c", "Stein"}}
		h := NewHuman("Mensch", in, io.Discard, quietLogger(), WithMaxAttempts(3))
		_, err := h.Choose(ctx, objects)
		assert.ErrorIs(t, err, ErrTooManyAttempts)
		assert.Equal(t, 3, in.reads)
	})

	t.Run("completions offered", func(t *testing.T) {
		h, in, _ := newTestHuman("Stein")
		_, err := h.Choose(ctx, objects)
		require.NoError(t, err)
		assert.Equal(t, []string{"Schere", "Stein", "Papier", QuitWord}, in.completions)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		h, in, _ := newTestHuman("Stein")
		_, err := h.Choose(cctx, objects)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, in.reads)
	})

	t.Run("no objects", func(t *testing.T) {
		h, _, _ := newTestHuman("Stein")
		_, err := h.Choose(ctx, nil)
		assert.ErrorIs(t, err, ErrNoObjects)
	})
}

func TestComputerChoose(t *testing.T) {
	ctx := context.Background()

	t.Run("always picks an available object", func(t *testing.T) {
		c := NewComputer("Computer", randutil.New(1))
		seen := make(map[string]int)
		for range 300 {
			choice, err := c.Choose(ctx, objects)
			require.NoError(t, err)
			assert.Contains(t, objects, choice)
			seen[choice]++
		}
		assert.Len(t, seen, len(objects), "every object should come up eventually")
	})

	t.Run("same seed same choices", func(t *testing.T) {
		a := NewComputer("A", randutil.New(99))
		b := NewComputer("B", randutil.New(99))
		for range 50 {
			ca, err := a.Choose(ctx, objects)
			require.NoError(t, err)
			cb, err := b.Choose(ctx, objects)
			require.NoError(t, err)
			assert.Equal(t, ca, cb)
		}
	})

	t.Run("no objects", func(t *testing.T) {
		_, err := NewComputer("C", randutil.New(1)).Choose(ctx, nil)
		assert.ErrorIs(t, err, ErrNoObjects)
	})
}

func TestTally(t *testing.T) {
	var p Player = NewComputer("Computer", randutil.New(1))
	assert.Equal(t, "Computer", p.Name())
	assert.Equal(t, 0, p.Score())

	p.IncrementScore()
	p.IncrementScore()
	assert.Equal(t, 2, p.Score())
}
