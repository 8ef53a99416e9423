// Package prompt defines the typed interactive prompts the menu and workflows
// ask the operator, and a terminal implementation built on bubbletea.
package prompt

import (
	"context"
	"errors"
)

var (
	// ErrBack is returned when the operator backs out of a prompt (Esc).
	ErrBack = errors.New("prompt: back")
	// ErrInterrupted is returned when the operator aborts the session (Ctrl+C).
	ErrInterrupted = errors.New("prompt: interrupted")
)

// Validator checks a trimmed text answer. A non-nil error is shown to the
// operator and the prompt is asked again.
type Validator func(string) error

type TextPrompt struct {
	Label    string
	Default  string
	Validate Validator
}

type NumberPrompt struct {
	Label    string
	Validate func(float64) error
}

type SelectPrompt struct {
	Label   string
	Choices []string
	Default int
}

type ConfirmPrompt struct {
	Label   string
	Default bool
}

type Prompter interface {
	// Text returns the trimmed answer.
	Text(ctx context.Context, p TextPrompt) (string, error)
	Number(ctx context.Context, p NumberPrompt) (float64, error)
	// Select returns the index of the chosen entry in p.Choices.
	Select(ctx context.Context, p SelectPrompt) (int, error)
	Confirm(ctx context.Context, p ConfirmPrompt) (bool, error)
}

// Pick asks the operator to choose one of items, labelled by name.
func Pick[T any](ctx context.Context, p Prompter, label string, items []T, name func(T) string) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errors.New("prompt: nothing to pick from")
	}

	choices := make([]string, 0, len(items))
	for _, item := range items {
		choices = append(choices, name(item))
	}

	index, err := p.Select(ctx, SelectPrompt{Label: label, Choices: choices})
	if err != nil {
		return zero, err
	}
	return items[index], nil
}
