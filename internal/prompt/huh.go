package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// HuhPrompter renders questions as a huh form on the terminal
type HuhPrompter struct {
	theme      *huh.Theme
	accessible bool
}

// NewHuhPrompter creates a prompter using theme. Accessible mode replaces the
// interactive widgets with plain line-based prompts.
func NewHuhPrompter(theme *huh.Theme, accessible bool) *HuhPrompter {
	if theme == nil {
		theme = huh.ThemeBase()
	}
	return &HuhPrompter{theme: theme, accessible: accessible}
}

// Ask runs one form containing every question. Validation failures are
// shown inline and the field is asked again.
func (p *HuhPrompter) Ask(ctx context.Context, questions ...Question) (Answers, error) {
	texts := make([]string, len(questions))
	picks := make([]int, len(questions))

	fields := make([]huh.Field, 0, len(questions))
	for i, q := range questions {
		field, err := buildField(q, &texts[i], &picks[i])
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(p.theme).
		WithAccessible(p.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}
		return nil, fmt.Errorf("running prompt: %w", err)
	}

	answers := make(Answers, len(questions))
	for i, q := range questions {
		switch q.Kind {
		case KindInput:
			answers[q.Name] = texts[i]
		case KindSelect:
			answers[q.Name] = q.Choices[picks[i]]
		}
	}
	return answers, nil
}

// buildField maps a question onto a huh field bound to text or pick.
// Select fields carry the choice index so choices with no value stay selectable.
func buildField(q Question, text *string, pick *int) (huh.Field, error) {
	switch q.Kind {
	case KindInput:
		input := huh.NewInput().
			Key(q.Name).
			Title(q.Message).
			Value(text)
		if q.Validate != nil {
			input = input.Validate(q.Validate)
		}
		return input, nil

	case KindSelect:
		if len(q.Choices) == 0 {
			return nil, fmt.Errorf("select %q has no choices", q.Name)
		}
		options := make([]huh.Option[int], len(q.Choices))
		for j, c := range q.Choices {
			options[j] = huh.NewOption(c.Label, j)
		}
		return huh.NewSelect[int]().
			Key(q.Name).
			Title(q.Message).
			Options(options...).
			Value(pick), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, q.Kind)
	}
}
