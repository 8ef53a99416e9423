package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	markStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Terminal asks prompts on a terminal, one bubbletea program per prompt.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

var _ Prompter = (*Terminal)(nil)

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

func (t *Terminal) Text(ctx context.Context, p TextPrompt) (string, error) {
	m, err := t.run(ctx, newTextModel(p.Label, p.Default, p.Validate))
	if err != nil {
		return "", err
	}
	final := m.(textModel)
	return final.value, final.err
}

func (t *Terminal) Number(ctx context.Context, p NumberPrompt) (float64, error) {
	var parsed float64
	validate := func(input string) error {
		value, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return errors.New("Please enter a number")
		}
		if p.Validate != nil {
			if err := p.Validate(value); err != nil {
				return err
			}
		}
		parsed = value
		return nil
	}

	m, err := t.run(ctx, newTextModel(p.Label, "", validate))
	if err != nil {
		return 0, err
	}
	if final := m.(textModel); final.err != nil {
		return 0, final.err
	}
	return parsed, nil
}

func (t *Terminal) Select(ctx context.Context, p SelectPrompt) (int, error) {
	if len(p.Choices) == 0 {
		return 0, errors.New("prompt: select without choices")
	}
	m, err := t.run(ctx, newSelectModel(p.Label, p.Choices, p.Default))
	if err != nil {
		return 0, err
	}
	final := m.(selectModel)
	return final.cursor, final.err
}

func (t *Terminal) Confirm(ctx context.Context, p ConfirmPrompt) (bool, error) {
	m, err := t.run(ctx, confirmModel{label: p.Label, value: p.Default})
	if err != nil {
		return false, err
	}
	final := m.(confirmModel)
	return final.value, final.err
}

func (t *Terminal) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return nil, ErrInterrupted
		}
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}

func question(label string) string {
	return markStyle.Render("?") + " " + questionStyle.Render(label)
}

// quitKey maps the keys every prompt shares.
func quitKey(msg tea.KeyMsg) (bool, error) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return true, ErrInterrupted
	case tea.KeyEsc:
		return true, ErrBack
	}
	return false, nil
}

type selectModel struct {
	label   string
	choices []string
	cursor  int
	done    bool
	err     error
}

func newSelectModel(label string, choices []string, selected int) selectModel {
	if selected < 0 || selected >= len(choices) {
		selected = 0
	}
	return selectModel{label: label, choices: choices, cursor: selected}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if stop, err := quitKey(key); stop {
		m.err = err
		m.done = true
		return m, tea.Quit
	}

	switch key.String() {
	case "up", "k":
		m.cursor = (m.cursor - 1 + len(m.choices)) % len(m.choices)
	case "down", "j":
		m.cursor = (m.cursor + 1) % len(m.choices)
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = len(m.choices) - 1
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done {
		if m.err != nil {
			return ""
		}
		return question(m.label) + " " + answerStyle.Render(m.choices[m.cursor]) + "\n"
	}

	var b strings.Builder
	b.WriteString(question(m.label))
	b.WriteString(" " + hintStyle.Render("(Use arrow keys, Esc to go back)") + "\n")
	for i, choice := range m.choices {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("❯ " + choice))
		} else {
			b.WriteString("  " + choice)
		}
		b.WriteString("\n")
	}
	return b.String()
}

type textModel struct {
	label    string
	input    textinput.Model
	validate Validator
	problem  string
	value    string
	done     bool
	err      error
}

func newTextModel(label, initial string, validate Validator) textModel {
	input := textinput.New()
	input.Prompt = ""
	input.SetValue(initial)
	input.Focus()
	return textModel{label: label, input: input, validate: validate}
}

func (m textModel) Init() tea.Cmd { return textinput.Blink }

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if stop, err := quitKey(key); stop {
			m.err = err
			m.done = true
			return m, tea.Quit
		}
		if key.Type == tea.KeyEnter {
			value := strings.TrimSpace(m.input.Value())
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.problem = err.Error()
					return m, nil
				}
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done {
		if m.err != nil {
			return ""
		}
		return question(m.label) + " " + answerStyle.Render(m.value) + "\n"
	}

	view := question(m.label) + " " + m.input.View() + "\n"
	if m.problem != "" {
		view += errorStyle.Render(">> "+m.problem) + "\n"
	}
	return view
}

type confirmModel struct {
	label string
	value bool
	done  bool
	err   error
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if stop, err := quitKey(key); stop {
		m.err = err
		m.done = true
		return m, tea.Quit
	}

	switch strings.ToLower(key.String()) {
	case "y":
		m.value = true
	case "n":
		m.value = false
	case "enter":
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		if m.err != nil {
			return ""
		}
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		return question(m.label) + " " + answerStyle.Render(answer) + "\n"
	}

	hint := "(y/N)"
	if m.value {
		hint = "(Y/n)"
	}
	return question(m.label) + " " + hintStyle.Render(hint) + "\n"
}
