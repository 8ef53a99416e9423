// Package menu runs a two-level operator menu as an explicit state machine.
//
// The main menu lists leaf actions and submenus plus "Exit". A submenu lists
// its actions plus "Back". After an action finishes the menu it was started
// from is shown again; "Back" always returns to the main menu.
package menu

import (
	"context"
	"errors"
	"fmt"

	"employee-tracker/internal/prompt"
)

const (
	ExitLabel   = "Exit"
	BackLabel   = "Back"
	SelectLabel = "Select an option:"
)

type Action func(ctx context.Context) error

type Item struct {
	Label  string
	Action Action
}

type entry struct {
	label   string
	action  Action
	submenu bool
	items   []Item
}

type stateKind int

const (
	stateMainMenu stateKind = iota
	stateSubmenu
	stateExecuting
	stateTerminated
)

func (k stateKind) String() string {
	switch k {
	case stateMainMenu:
		return "main-menu"
	case stateSubmenu:
		return "submenu"
	case stateExecuting:
		return "executing"
	case stateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(k))
	}
}

// state is one node of the navigation machine. entry indexes the main menu;
// item indexes the submenu of entry, or is -1 for a leaf action.
type state struct {
	kind  stateKind
	entry int
	item  int
}

var (
	mainMenu   = state{kind: stateMainMenu}
	terminated = state{kind: stateTerminated}
)

type Menu struct {
	prompter prompt.Prompter
	entries  []entry
}

func New(prompter prompt.Prompter) *Menu {
	return &Menu{prompter: prompter}
}

// AddAction adds a main menu entry that runs action directly.
func (m *Menu) AddAction(label string, action Action) {
	m.entries = append(m.entries, entry{label: label, action: action})
}

// AddSubmenu adds a main menu entry that opens a submenu of items.
func (m *Menu) AddSubmenu(label string, items ...Item) {
	m.entries = append(m.entries, entry{label: label, submenu: true, items: append([]Item(nil), items...)})
}

// Run drives the menu until the operator selects Exit, which returns nil.
// The first action error ends the loop and is returned unchanged.
func (m *Menu) Run(ctx context.Context) error {
	if len(m.entries) == 0 {
		return errors.New("menu: no entries")
	}

	current := mainMenu
	for {
		switch current.kind {
		case stateTerminated:
			return nil

		case stateExecuting:
			if err := m.action(current)(ctx); err != nil {
				return err
			}
			current = m.afterAction(current)

		default:
			choice, err := m.prompter.Select(ctx, prompt.SelectPrompt{
				Label:   SelectLabel,
				Choices: m.choices(current),
			})
			switch {
			case errors.Is(err, prompt.ErrBack):
				current = m.back(current)
				continue
			case err != nil:
				return err
			}
			current = m.transition(current, choice)
		}
	}
}

func (m *Menu) choices(s state) []string {
	var labels []string
	switch s.kind {
	case stateMainMenu:
		for _, e := range m.entries {
			labels = append(labels, e.label)
		}
		labels = append(labels, ExitLabel)
	case stateSubmenu:
		for _, item := range m.entries[s.entry].items {
			labels = append(labels, item.Label)
		}
		labels = append(labels, BackLabel)
	}
	return labels
}

// transition applies the choice at index choice of the menu shown in s.
func (m *Menu) transition(s state, choice int) state {
	switch s.kind {
	case stateMainMenu:
		if choice >= len(m.entries) {
			return terminated
		}
		if !m.entries[choice].submenu {
			return state{kind: stateExecuting, entry: choice, item: -1}
		}
		return state{kind: stateSubmenu, entry: choice}

	case stateSubmenu:
		if choice >= len(m.entries[s.entry].items) {
			return mainMenu
		}
		return state{kind: stateExecuting, entry: s.entry, item: choice}
	}
	return s
}

// back handles Esc: a submenu returns to the main menu, the main menu stays.
func (m *Menu) back(s state) state {
	if s.kind == stateSubmenu {
		return mainMenu
	}
	return s
}

func (m *Menu) afterAction(s state) state {
	if s.item < 0 {
		return mainMenu
	}
	return state{kind: stateSubmenu, entry: s.entry}
}

func (m *Menu) action(s state) Action {
	e := m.entries[s.entry]
	if s.item < 0 {
		return e.action
	}
	return e.items[s.item].Action
}
