package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-tracker/internal/prompt"
	"employee-tracker/internal/prompt/prompttest"
)

type recorder struct {
	calls []string
}

func (r *recorder) action(name string) Action {
	return func(ctx context.Context) error {
		r.calls = append(r.calls, name)
		return nil
	}
}

func newTestMenu(p prompt.Prompter, r *recorder) *Menu {
	m := New(p)
	m.AddSubmenu("View",
		Item{Label: "View all employees", Action: r.action("view employees")},
	)
	m.AddSubmenu("Add",
		Item{Label: "Add an employee", Action: r.action("add employee")},
		Item{Label: "Add role", Action: r.action("add role")},
	)
	m.AddAction("About", r.action("about"))
	return m
}

func TestActionReturnsToSameSubmenu(t *testing.T) {
	r := &recorder{}
	script := prompttest.New(t,
		prompttest.Choose("Add"),
		prompttest.Choose("Add an employee"),
		prompttest.Choose("Add role"),
		prompttest.Choose(BackLabel),
		prompttest.Choose(ExitLabel),
	)

	require.NoError(t, newTestMenu(script, r).Run(context.Background()))

	assert.Equal(t, []string{"add employee", "add role"}, r.calls)
	require.Len(t, script.Shown, 5)
	addMenu := []string{"Add an employee", "Add role", BackLabel}
	assert.Equal(t, addMenu, script.Shown[1].Choices)
	assert.Equal(t, addMenu, script.Shown[2].Choices, "after an action the Add submenu is shown again")
	assert.Equal(t, addMenu, script.Shown[3].Choices)
	assert.Equal(t, []string{"View", "Add", "About", ExitLabel}, script.Shown[4].Choices, "Back returns to the main menu")
	assert.Equal(t, 0, script.Remaining())
}

func TestEscapeInSubmenuGoesBack(t *testing.T) {
	r := &recorder{}
	script := prompttest.New(t,
		prompttest.Choose("View"),
		prompttest.Back(),
		prompttest.Back(),
		prompttest.Choose(ExitLabel),
	)

	require.NoError(t, newTestMenu(script, r).Run(context.Background()))

	assert.Empty(t, r.calls)
	require.Len(t, script.Shown, 4)
	assert.Equal(t, []string{"View all employees", BackLabel}, script.Shown[1].Choices)
	assert.Equal(t, []string{"View", "Add", "About", ExitLabel}, script.Shown[2].Choices)
	assert.Equal(t, []string{"View", "Add", "About", ExitLabel}, script.Shown[3].Choices, "Esc on the main menu stays there")
}

func TestLeafActionReturnsToMainMenu(t *testing.T) {
	r := &recorder{}
	script := prompttest.New(t,
		prompttest.Choose("About"),
		prompttest.Choose(ExitLabel),
	)

	require.NoError(t, newTestMenu(script, r).Run(context.Background()))
	assert.Equal(t, []string{"about"}, r.calls)
}

func TestActionErrorStopsMenu(t *testing.T) {
	boom := errors.New("connection lost")
	script := prompttest.New(t,
		prompttest.Choose("Fail"),
		prompttest.Choose("Explode"),
	)
	m := New(script)
	m.AddSubmenu("Fail", Item{Label: "Explode", Action: func(context.Context) error { return boom }})

	err := m.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, script.Remaining())
}

func TestPromptInterruptStopsMenu(t *testing.T) {
	m := New(&interruptingPrompter{})
	m.AddAction("About", func(context.Context) error { return nil })

	assert.ErrorIs(t, m.Run(context.Background()), prompt.ErrInterrupted)
}

func TestEmptySubmenuOnlyOffersBack(t *testing.T) {
	script := prompttest.New(t,
		prompttest.Choose("Reports"),
		prompttest.Choose(BackLabel),
		prompttest.Choose(ExitLabel),
	)
	m := New(script)
	m.AddSubmenu("Reports")

	require.NoError(t, m.Run(context.Background()))
	require.Len(t, script.Shown, 3)
	assert.Equal(t, []string{BackLabel}, script.Shown[1].Choices)
	assert.Equal(t, []string{"Reports", ExitLabel}, script.Shown[2].Choices)
}

func TestRunWithoutEntries(t *testing.T) {
	assert.Error(t, New(prompttest.New(t)).Run(context.Background()))
}

func TestTransitions(t *testing.T) {
	r := &recorder{}
	m := newTestMenu(nil, r)

	cases := []struct {
		name   string
		from   state
		choice int
		want   state
	}{
		{"main to submenu", mainMenu, 1, state{kind: stateSubmenu, entry: 1}},
		{"main to leaf", mainMenu, 2, state{kind: stateExecuting, entry: 2, item: -1}},
		{"main exit", mainMenu, 3, terminated},
		{"submenu item", state{kind: stateSubmenu, entry: 1}, 1, state{kind: stateExecuting, entry: 1, item: 1}},
		{"submenu back", state{kind: stateSubmenu, entry: 1}, 2, mainMenu},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := m.transition(tc.from, tc.choice)
			assert.Equal(t, tc.want, got, "got %s", got.kind)
		})
	}

	assert.Equal(t, state{kind: stateSubmenu, entry: 1}, m.afterAction(state{kind: stateExecuting, entry: 1, item: 0}))
	assert.Equal(t, mainMenu, m.afterAction(state{kind: stateExecuting, entry: 2, item: -1}))
}

type interruptingPrompter struct{}

func (interruptingPrompter) Text(context.Context, prompt.TextPrompt) (string, error) {
	return "", prompt.ErrInterrupted
}

func (interruptingPrompter) Number(context.Context, prompt.NumberPrompt) (float64, error) {
	return 0, prompt.ErrInterrupted
}

func (interruptingPrompter) Select(context.Context, prompt.SelectPrompt) (int, error) {
	return 0, prompt.ErrInterrupted
}

func (interruptingPrompter) Confirm(context.Context, prompt.ConfirmPrompt) (bool, error) {
	return false, prompt.ErrInterrupted
}
