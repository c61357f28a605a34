package display

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// ReadlineInput reads lines from the terminal with history and tab
// completion of object names.
type ReadlineInput struct {
	rl *readline.Instance
}

// NewReadlineInput opens the terminal for line editing. historyFile may be
// empty to disable history.
func NewReadlineInput(prompt, historyFile string) (*ReadlineInput, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		AutoComplete:    readline.NewPrefixCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineInput{rl: rl}, nil
}

// Readline implements player.LineReader. Ctrl+C is reported as end of input.
func (r *ReadlineInput) Readline() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

// SetCompletions replaces the words offered on tab.
func (r *ReadlineInput) SetCompletions(words []string) {
	items := make([]readline.PrefixCompleterInterface, len(words))
	for i, w := range words {
		items[i] = readline.PcItem(w)
	}
	r.rl.Config.AutoComplete = readline.NewPrefixCompleter(items...)
}

// Stdout returns a writer that keeps the prompt intact while printing.
func (r *ReadlineInput) Stdout() io.Writer {
	return r.rl.Stdout()
}

func (r *ReadlineInput) Close() error {
	return r.rl.Close()
}
