// Package prompttest provides a scripted prompt.Prompter for tests.
package prompttest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"employee-tracker/internal/prompt"
)

type kind string

const (
	kindText    kind = "text"
	kindNumber  kind = "number"
	kindSelect  kind = "select"
	kindConfirm kind = "confirm"
	kindBack    kind = "back"
)

// Answer is one scripted operator response.
type Answer struct {
	kind    kind
	text    string
	number  float64
	confirm bool
}

func Text(value string) Answer { return Answer{kind: kindText, text: value} }
func Number(value float64) Answer { return Answer{kind: kindNumber, number: value} }
func Choose(label string) Answer { return Answer{kind: kindSelect, text: label} }
func Confirm(value bool) Answer { return Answer{kind: kindConfirm, confirm: value} }
func Back() Answer { return Answer{kind: kindBack} }
func (a Answer) String() string { return fmt.Sprintf("%s(%q)", a.kind, a.text) }

// Shown records a prompt the script answered.
type Shown struct {
	Kind    string
	Label   string
	Choices []string
}

// Script answers prompts from a fixed list. Choices are picked by label, so
// a script reads like the operator's session. Text answers run through the
// prompt's validator; rejected answers are recorded and the next answer is used.
type Script struct {
	t        testing.TB
	answers  []Answer
	Shown    []Shown
	Rejected []string
}

var _ prompt.Prompter = (*Script)(nil)

func New(t testing.TB, answers ...Answer) *Script {
	return &Script{t: t, answers: answers}
}

// Remaining is the number of unused answers.
func (s *Script) Remaining() int { return len(s.answers) }

// Labels returns the labels of every prompt shown, in order.
func (s *Script) Labels() []string {
	labels := make([]string, 0, len(s.Shown))
	for _, shown := range s.Shown {
		labels = append(labels, shown.Label)
	}
	return labels
}

func (s *Script) next(k kind, label string) (Answer, error) {
	s.t.Helper()
	if len(s.answers) == 0 {
		s.t.Errorf("prompttest: no answer left for %s prompt %q", k, label)
		return Answer{}, prompt.ErrInterrupted
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]

	if answer.kind == kindBack {
		return answer, prompt.ErrBack
	}
	if answer.kind != k {
		s.t.Fatalf("prompttest: %s prompt %q answered with %s", k, label, answer)
	}
	return answer, nil
}

func (s *Script) Text(_ context.Context, p prompt.TextPrompt) (string, error) {
	s.t.Helper()
	s.Shown = append(s.Shown, Shown{Kind: string(kindText), Label: p.Label})
	for {
		answer, err := s.next(kindText, p.Label)
		if err != nil {
			return "", err
		}
		value := strings.TrimSpace(answer.text)
		if value == "" {
			value = p.Default
		}
		if p.Validate != nil {
			if err := p.Validate(value); err != nil {
				s.Rejected = append(s.Rejected, err.Error())
				continue
			}
		}
		return value, nil
	}
}

func (s *Script) Number(_ context.Context, p prompt.NumberPrompt) (float64, error) {
	s.t.Helper()
	s.Shown = append(s.Shown, Shown{Kind: string(kindNumber), Label: p.Label})
	for {
		answer, err := s.next(kindNumber, p.Label)
		if err != nil {
			return 0, err
		}
		if p.Validate != nil {
			if err := p.Validate(answer.number); err != nil {
				s.Rejected = append(s.Rejected, err.Error())
				continue
			}
		}
		return answer.number, nil
	}
}

func (s *Script) Select(_ context.Context, p prompt.SelectPrompt) (int, error) {
	s.t.Helper()
	s.Shown = append(s.Shown, Shown{Kind: string(kindSelect), Label: p.Label, Choices: p.Choices})
	answer, err := s.next(kindSelect, p.Label)
	if err != nil {
		return 0, err
	}
	for i, choice := range p.Choices {
		if choice == answer.text {
			return i, nil
		}
	}
	s.t.Fatalf("prompttest: %q is not a choice of %q: %q", answer.text, p.Label, p.Choices)
	return 0, nil
}

func (s *Script) Confirm(_ context.Context, p prompt.ConfirmPrompt) (bool, error) {
	s.t.Helper()
	s.Shown = append(s.Shown, Shown{Kind: string(kindConfirm), Label: p.Label})
	answer, err := s.next(kindConfirm, p.Label)
	if err != nil {
		return false, err
	}
	return answer.confirm, nil
}
