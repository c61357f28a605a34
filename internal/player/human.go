package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// QuitWord ends the match when typed at the prompt.
const QuitWord = "exit"

// LineReader supplies one line of input per call. *readline.Instance
// satisfies it directly.
type LineReader interface {
	Readline() (string, error)
}

// completer is implemented by readers that can offer tab completion.
type completer interface {
	SetCompletions(words []string)
}

// HumanStyles contains styling for the prompt
type HumanStyles struct {
	Prompt lipgloss.Style
	Option lipgloss.Style
	Index  lipgloss.Style
	Error  lipgloss.Style
}

func defaultHumanStyles() HumanStyles {
	return HumanStyles{
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Option: lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		Index:  lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
}

// Human asks a person for each choice.
type Human struct {
	Tally
	in          LineReader
	out         io.Writer
	logger      *log.Logger
	styles      HumanStyles
	maxAttempts int
}

// HumanOption configures a Human.
type HumanOption func(*Human)

// WithMaxAttempts limits consecutive invalid inputs per choice. Zero means
// unlimited.
func WithMaxAttempts(n int) HumanOption {
	return func(h *Human) { h.maxAttempts = n }
}

// WithStyles overrides the prompt styles.
func WithStyles(styles HumanStyles) HumanOption {
	return func(h *Human) { h.styles = styles }
}

// NewHuman creates a human player reading from in and prompting on out.
func NewHuman(name string, in LineReader, out io.Writer, logger *log.Logger, opts ...HumanOption) *Human {
	h := &Human{
		Tally:  NewTally(name),
		in:     in,
		out:    out,
		logger: logger.WithPrefix("human").With("player", name),
		styles: defaultHumanStyles(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Choose prompts until the input names an object, either by label or by
// index. Typing QuitWord or closing the input returns ErrQuit.
func (h *Human) Choose(ctx context.Context, objects []string) (string, error) {
	if len(objects) == 0 {
		return "", ErrNoObjects
	}
	if c, ok := h.in.(completer); ok {
		c.SetCompletions(append(append([]string(nil), objects...), QuitWord))
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		fmt.Fprintf(h.out, "%s\t%s\n", h.styles.Prompt.Render("Choose an object:"), h.renderOptions(objects))

		line, err := h.in.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) {
				h.logger.Info("Input closed")
				return "", ErrQuit
			}
			return "", fmt.Errorf("failed to read choice: %w", err)
		}

		input := strings.TrimSpace(line)
		if choice, ok := match(input, objects); ok {
			h.logger.Debug("Choice accepted", "input", input, "choice", choice, "attempt", attempt)
			return choice, nil
		}
		if input == QuitWord {
			h.logger.Info("Quit requested")
			return "", ErrQuit
		}

		h.logger.Debug("Invalid choice", "input", input, "attempt", attempt)
		fmt.Fprintln(h.out, h.styles.Error.Render(fmt.Sprintf("There is no object %q!", input)))

		if h.maxAttempts > 0 && attempt >= h.maxAttempts {
			return "", fmt.Errorf("%w: %d attempts", ErrTooManyAttempts, attempt)
		}
	}
}

func (h *Human) renderOptions(objects []string) string {
	parts := make([]string, len(objects))
	for i, obj := range objects {
		parts[i] = fmt.Sprintf("%s %s", h.styles.Option.Render(obj), h.styles.Index.Render(fmt.Sprintf("[%d]", i)))
	}
	return strings.Join(parts, ", ")
}

// match accepts an exact label first, then a valid unsigned index.
func match(input string, objects []string) (string, bool) {
	for _, obj := range objects {
		if obj == input {
			return obj, true
		}
	}
	if !isIndex(input) {
		return "", false
	}
	if idx, err := strconv.Atoi(input); err == nil && idx < len(objects) {
		return objects[idx], true
	}
	return "", false
}

// isIndex reports whether s is made of ASCII digits only. Signs and spaces
// are not part of an index.
func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
