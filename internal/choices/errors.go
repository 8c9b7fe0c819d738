package choices

import (
	"errors"
	"fmt"
)

var (
	// ErrNoChoices indicates a select prompt would have nothing to offer
	ErrNoChoices = errors.New("no choices available")

	ErrSalaryEmpty    = errors.New("please enter a salary")
	ErrSalaryNotValid = errors.New("please enter a valid number")
	ErrSalaryNegative = errors.New("salary cannot be negative")
	ErrNameEmpty      = errors.New("please enter a value")
)

// EmptyListError names the kind of record that is missing
type EmptyListError struct {
	What string
}

func (e *EmptyListError) Error() string {
	return fmt.Sprintf("no %s available", e.What)
}

func (e *EmptyListError) Unwrap() error {
	return ErrNoChoices
}
