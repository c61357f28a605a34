package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextPrompt reads each line through a small Bubble Tea text input with
// suggestions. Tab accepts a suggestion; Esc or Ctrl+C closes the input.
type TextPrompt struct {
	prompt      string
	suggestions []string
	options     []tea.ProgramOption
}

// NewTextPrompt creates a prompt. Program options are passed to every
// tea.Program it starts.
func NewTextPrompt(prompt string, opts ...tea.ProgramOption) *TextPrompt {
	return &TextPrompt{prompt: prompt, options: opts}
}

// SetCompletions sets the suggestions offered while typing.
func (p *TextPrompt) SetCompletions(words []string) {
	p.suggestions = append([]string(nil), words...)
}

// Readline implements player.LineReader.
func (p *TextPrompt) Readline() (string, error) {
	final, err := tea.NewProgram(newPromptModel(p.prompt, p.suggestions), p.options...).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", final)
	}
	if m.cancelled {
		return "", io.EOF
	}
	return m.input.Value(), nil
}

type promptModel struct {
	input     textinput.Model
	hint      lipgloss.Style
	submitted bool
	cancelled bool
}

func newPromptModel(prompt string, suggestions []string) promptModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "name or number"
	ti.ShowSuggestions = len(suggestions) > 0
	ti.SetSuggestions(suggestions)
	ti.Focus()

	return promptModel{
		input: ti,
		hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return m.input.View() + "\n" + m.hint.Render("tab to complete, esc to leave") + "\n"
}
