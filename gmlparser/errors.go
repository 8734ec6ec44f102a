package gmlparser

import "fmt"

// ParseError is the base error type for all gmlparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a lexer-level error (unterminated string, invalid character).
type LexError struct{ ParseError }

// SyntaxError represents a grammar-level error (unexpected token).
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: expected %s, got %s", e.Pos.Line, e.Pos.Column, e.Expected, e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// ValueError represents a value conversion error (integer overflow).
type ValueError struct{ ParseError }

// MissingKeyError reports a value that appeared with no preceding key.
type MissingKeyError struct{ ParseError }

// MissingGraphError reports a document whose root has no "graph" entry.
type MissingGraphError struct{}

func (e *MissingGraphError) Error() string {
	return "no graph entry at document root"
}

// MissingFieldError reports an absent mandatory field (node id, edge
// source/target).
type MissingFieldError struct {
	Entity string // "node" or "edge"
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is missing required field %q", e.Entity, e.Field)
}

// TypeMismatchError reports a field present with the wrong value kind.
type TypeMismatchError struct {
	Field    string
	Expected ValueKind
	Actual   Value
	Pos      Position
}

func (e *TypeMismatchError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: field %q: expected %s, found %s (%s)",
			e.Pos.Line, e.Pos.Column, e.Field, e.Expected, e.Actual.Kind, e.Actual)
	}
	return fmt.Sprintf("field %q: expected %s, found %s (%s)",
		e.Field, e.Expected, e.Actual.Kind, e.Actual)
}
