// Package errors provides sentinel errors and error types for the fourplay tool.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrUnrecognizedCode indicates a piece identity code with an unknown
	// seat or role character.
	ErrUnrecognizedCode = errors.New("unrecognized piece code")

	// ErrUnsupportedOperation indicates an operation that the receiver can
	// never perform, such as rotating a captured piece.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrIncompleteSnapshot indicates a snapshot missing some of its cells.
	ErrIncompleteSnapshot = errors.New("incomplete snapshot")

	// ErrDimensionMismatch indicates two boards that do not share a grid.
	ErrDimensionMismatch = errors.New("board dimension mismatch")

	// ErrInvalidSquare indicates a malformed or out of range square code.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInaccessibleSquare indicates a piece placed on a corner cell.
	ErrInaccessibleSquare = errors.New("inaccessible square")

	// ErrParseFailure indicates a general snapshot parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDuplicateSnapshot indicates a snapshot identical to the previous one.
	ErrDuplicateSnapshot = errors.New("duplicate snapshot")
)

// SnapshotError wraps errors with snapshot context, including the turn
// index, the square and the piece code involved. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type SnapshotError struct {
	Err    error  // The underlying error
	Turn   int    // 1-based turn index (0 if not applicable)
	Square string // Algebraic square code (if applicable)
	Code   string // Piece identity code (if applicable)
	File   string // Source file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *SnapshotError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.Square))
	}
	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("code %q", e.Code))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "snapshot error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SnapshotError wrapper.
func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
// It's used for the text snapshot format.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" || e.Line > 0 {
		loc := e.File
		if e.Line > 0 {
			if loc != "" {
				loc += ":"
			} else {
				loc = "line "
			}
			loc += fmt.Sprintf("%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
// It lets callers importing this package skip the standard one.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
