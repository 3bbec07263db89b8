package subarray

import (
	"errors"
	"strconv"
)

// ErrInvalidInput is the sentinel matched by every malformed-input error.
var ErrInvalidInput = errors.New("subarray: invalid input")

// InvalidInputError describes one rejected input token.
//
// Pos is the zero-based position of the token in its source, or -1 when the
// error is not tied to a single token (for example a broken config file).
type InvalidInputError struct {
	Pos   int
	Token string
	Err   error
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	// Example: subarray: invalid input "x" at position 2: strconv.Atoi: parsing "x": invalid syntax
	msg := "subarray: invalid input"
	if e.Token != "" {
		msg += " " + strconv.Quote(e.Token)
	}
	if e.Pos >= 0 {
		msg += " at position " + strconv.Itoa(e.Pos)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *InvalidInputError) Unwrap() error { return e.Err }

// Is reports true for ErrInvalidInput so callers only need the sentinel.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }
