package mersenne

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for string resolution.
var (
	// ErrUnknownNote indicates a pitch name outside the twelve-tone table.
	ErrUnknownNote = errors.New("mersenne: unknown note")

	// ErrInvalidValue indicates a non-positive or non-finite physical value.
	ErrInvalidValue = errors.New("mersenne: invalid physical value")

	// ErrNothingToCompute is returned when all four primaries are already known.
	// Callers may treat it as success with a notice.
	ErrNothingToCompute = errors.New("mersenne: nothing to compute")

	// ErrUnderdetermined indicates more than one primary is missing.
	ErrUnderdetermined = errors.New("mersenne: not enough data")
)

// UnknownNoteError carries the rejected note name.
type UnknownNoteError struct {
	Note string
}

func (e *UnknownNoteError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownNote.Error(), e.Note)
}

func (e *UnknownNoteError) Unwrap() error {
	return ErrUnknownNote
}

// ValueError reports which quantity failed the positivity check.
type ValueError struct {
	Param string
	Value float64
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s = %g (must be finite and positive)", ErrInvalidValue.Error(), e.Param, e.Value)
}

func (e *ValueError) Unwrap() error {
	return ErrInvalidValue
}

// UnderdeterminedError lists the primaries still missing.
type UnderdeterminedError struct {
	Missing []Primary
}

func (e *UnderdeterminedError) Error() string {
	names := make([]string, len(e.Missing))
	for i, p := range e.Missing {
		names[i] = p.String()
	}
	return fmt.Sprintf("%s: leave only one parameter missing among [%s]", ErrUnderdetermined.Error(), strings.Join(names, ", "))
}

func (e *UnderdeterminedError) Unwrap() error {
	return ErrUnderdetermined
}
