// Package editor is an interactive text box that shows the value of the
// expression being typed, updated on every edit.
package editor

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/calc"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the editor state: a text buffer with a cursor and the description
// of the buffer's current value.
type Model struct {
	input  textinput.Model
	prompt string
	log    *slog.Logger

	// last is the buffer content that output describes.
	last   string
	output string
	failed bool
	evals  int
}

// New creates a focused editor with an empty buffer. prompt is shown while the
// buffer is empty.
func New(prompt string, log *slog.Logger) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "2 * 2 ^ 3"
	ti.Focus()
	m := &Model{input: ti, prompt: prompt, log: log}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlL:
			m.input.Reset()
			m.refresh()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if w := msg.Width - len(m.input.Prompt) - 1; w > 0 {
			m.input.Width = w
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.last {
		m.refresh()
	}
	return m, cmd
}

// refresh re-evaluates the whole buffer. An empty buffer shows the prompt
// without evaluating anything.
func (m *Model) refresh() {
	text := m.input.Value()
	m.last = text
	if text == "" {
		m.output, m.failed = m.prompt, false
		return
	}
	v, err := calc.Eval(text)
	m.evals++
	m.output, m.failed = calc.Describe(v, err), err != nil
	if err != nil {
		m.log.Debug("evaluated", "input", text, "kind", calc.KindOf(err).String(), "error", err)
		return
	}
	m.log.Debug("evaluated", "input", text, "result", v)
}

func (m *Model) View() string {
	style := resultStyle
	switch {
	case m.last == "":
		style = promptStyle
	case m.failed:
		style = errorStyle
	}
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(style.Render(m.output))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("esc quit • ctrl+l clear"))
	b.WriteString("\n")
	return b.String()
}

// Run runs the editor until the user quits or ctx is canceled.
func Run(ctx context.Context, prompt string, log *slog.Logger, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(prompt, log),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	return err
}
