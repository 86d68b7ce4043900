package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrInvariant       = errors.New("invariant violation")
	ErrNotAcknowledged = errors.New("destructive run not acknowledged")
)

// InvariantError describes a legacy record that breaks an import invariant.
// Any InvariantError aborts the whole run.
type InvariantError struct {
	Lexeme  string
	Field   string
	Message string
}

func (e *InvariantError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("lexeme %q: %s", e.Lexeme, e.Message)
	}
	return fmt.Sprintf("lexeme %q: %s: %s", e.Lexeme, e.Field, e.Message)
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }

// NewInvariantError creates an InvariantError for a lexeme field.
func NewInvariantError(lexeme, field, message string) *InvariantError {
	return &InvariantError{Lexeme: lexeme, Field: field, Message: message}
}
