/*
errors.go - Error types for the validation engine

PURPOSE:
  Business-rule violations are never Go errors here; they come back as
  ValidationError values inside a ValidationResult. The only errors this
  package returns are for structurally invalid input that no rule can be
  evaluated against (malformed HH:MM or YYYY-MM-DD strings) and for
  references that make an operation meaningless (reassigning a missing
  entry).

USAGE:
  var fe *roster.FormatError
  if errors.As(err, &fe) {
      // reject at the API boundary with 400
  }
*/
package roster

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEntryNotFound is returned by Reassign when no entry carries the
	// requested ID.
	ErrEntryNotFound = errors.New("schedule entry not found")

	// ErrMalformedInput is the sentinel wrapped by every FormatError.
	ErrMalformedInput = errors.New("malformed input")
)

// =============================================================================
// FORMAT ERROR - Structurally invalid clock or date string
// =============================================================================

// FormatError reports input that does not match its required shape.
// Callers are expected to pre-validate at the boundary, so seeing one of
// these from deep inside a validation run means stored data is corrupt.
type FormatError struct {
	Input string
	Want  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed value %q, want %s", e.Input, e.Want)
}

func (e *FormatError) Unwrap() error {
	return ErrMalformedInput
}
