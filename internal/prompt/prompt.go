// Package prompt describes the questions an action asks the operator and
// collects the answers, either interactively through huh or from a script.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/roster/internal/choices"
)

var (
	// ErrAborted indicates the operator cancelled the prompt
	ErrAborted = errors.New("prompt aborted")

	// ErrUnknownKind indicates a Question with an unsupported Kind
	ErrUnknownKind = errors.New("unknown question kind")
)

// Kind is the kind of prompt a question renders as
type Kind int

const (
	// KindInput is a free-text prompt
	KindInput Kind = iota
	// KindSelect is a single selection from Choices
	KindSelect
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindSelect:
		return "select"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Question is one field of a prompt
type Question struct {
	Name     string
	Kind     Kind
	Message  string
	Choices  []choices.Choice // KindSelect only
	Validate func(string) error
}

// Input builds a free-text question
func Input(name, message string, validate func(string) error) Question {
	return Question{Name: name, Kind: KindInput, Message: message, Validate: validate}
}

// Select builds a single-select question
func Select(name, message string, list []choices.Choice) Question {
	return Question{Name: name, Kind: KindSelect, Message: message, Choices: list}
}

// Answers maps a question name to the operator's answer.
// Input answers are strings, select answers are choices.Choice.
type Answers map[string]any

// String returns the text answer for name, or "" if absent
func (a Answers) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Choice returns the selected choice for name
func (a Answers) Choice(name string) choices.Choice {
	c, _ := a[name].(choices.Choice)
	return c
}

// Prompter asks a set of questions and returns all answers at once
type Prompter interface {
	Ask(ctx context.Context, questions ...Question) (Answers, error)
}
