package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/roster/internal/choices"
)

var (
	// ErrScriptExhausted indicates Ask was called after the last scripted step
	ErrScriptExhausted = errors.New("no scripted steps left")

	// ErrNoScriptedAnswer indicates a step has no entry for a question
	ErrNoScriptedAnswer = errors.New("no scripted answer")

	// ErrNoValidAnswer indicates every scripted attempt failed validation
	ErrNoValidAnswer = errors.New("no scripted attempt passed validation")

	// ErrUnknownChoice indicates a scripted label matched no choice
	ErrUnknownChoice = errors.New("scripted label matches no choice")
)

// Step answers one Ask call. Keys are question names. For input questions the
// values are attempts tried in order until one passes validation; for select
// questions the first value is the label to pick.
// A nil Step makes Ask return ErrAborted.
type Step map[string][]string

// Rejection records a scripted input refused by a validator
type Rejection struct {
	Field string
	Input string
	Err   error
}

// Scripted is a Prompter that replays fixed answers, for tests and
// non-interactive runs.
type Scripted struct {
	steps []Step

	// Asked records every question in the order it was asked
	Asked []Question
	// Rejected records every attempt a validator refused
	Rejected []Rejection
}

// NewScripted creates a prompter that answers one Ask call per step
func NewScripted(steps ...Step) *Scripted {
	return &Scripted{steps: steps}
}

// Remaining returns the number of unused steps
func (s *Scripted) Remaining() int {
	return len(s.steps)
}

// Ask answers questions from the next step
func (s *Scripted) Ask(ctx context.Context, questions ...Question) (Answers, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.steps) == 0 {
		return nil, ErrScriptExhausted
	}

	step := s.steps[0]
	s.steps = s.steps[1:]
	if step == nil {
		return nil, ErrAborted
	}

	answers := make(Answers, len(questions))
	for _, q := range questions {
		s.Asked = append(s.Asked, q)

		attempts := step[q.Name]
		if len(attempts) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoScriptedAnswer, q.Name)
		}

		switch q.Kind {
		case KindInput:
			text, err := s.firstValid(q, attempts)
			if err != nil {
				return nil, err
			}
			answers[q.Name] = text

		case KindSelect:
			c, ok := findChoice(q.Choices, attempts[0])
			if !ok {
				return nil, fmt.Errorf("%w: %q for %s", ErrUnknownChoice, attempts[0], q.Name)
			}
			answers[q.Name] = c

		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownKind, q.Kind)
		}
	}
	return answers, nil
}

// firstValid plays the attempts the way an operator re-answers a refused field
func (s *Scripted) firstValid(q Question, attempts []string) (string, error) {
	for _, text := range attempts {
		if q.Validate != nil {
			if err := q.Validate(text); err != nil {
				s.Rejected = append(s.Rejected, Rejection{Field: q.Name, Input: text, Err: err})
				continue
			}
		}
		return text, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNoValidAnswer, q.Name)
}

func findChoice(list []choices.Choice, label string) (choices.Choice, bool) {
	for _, c := range list {
		if c.Label == label {
			return c, true
		}
	}
	return choices.Choice{}, false
}
