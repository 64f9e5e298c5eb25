package calc

import (
	"errors"
	"strconv"
)

// SyntaxError is an error indicating a token that cannot appear where it
// does, or unbalanced parentheses. It implements InputError.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Token is the text of the offending token. It is empty if the error is
	// about the expression as a whole.
	Token string
	// Reason describes the problem.
	Reason string
}

func (err *SyntaxError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, err.Reason)
	}
	return errpos(err.Col, err.Reason+": "+strconv.Quote(err.Token))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division with a zero divisor.
type DivisionByZeroError struct {
	// Col is the position of the division operator, if known.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	if err.Col <= 0 {
		return "division by zero"
	}
	return errpos(err.Col, "division by zero")
}

// InternalError indicates a malformed token sequence reaching a stage that
// requires validated input. Expressions that pass Validate never produce an
// InternalError.
type InternalError struct {
	// Stage names the pipeline stage that failed.
	Stage string
	// Msg describes the inconsistency.
	Msg string
}

func (err *InternalError) Error() string {
	return "calc: " + err.Stage + ": " + err.Msg + " (unvalidated input?)"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid syntax implements InputError.
type InputError interface {
	error
	// Pos returns the column of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
)

// ErrorKind classifies errors for callers that only need to know what went
// wrong, not where.
type ErrorKind int8

const (
	// KindNone is the kind of a nil error.
	KindNone ErrorKind = iota
	// KindSyntax is the kind of *LexError and *SyntaxError.
	KindSyntax
	// KindDivisionByZero is the kind of *DivisionByZeroError.
	KindDivisionByZero
	// KindInternal is the kind of *InternalError and any other error.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "OK"
	case KindSyntax:
		return "ERR SYNTAX"
	case KindDivisionByZero:
		return "ERR DIVBYZERO"
	default:
		return "ERR INTERNAL"
	}
}

// Kind classifies an error returned from any stage of the pipeline.
func Kind(err error) ErrorKind {
	var (
		lex *LexError
		syn *SyntaxError
		dz  *DivisionByZeroError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &lex), errors.As(err, &syn):
		return KindSyntax
	case errors.As(err, &dz):
		return KindDivisionByZero
	default:
		return KindInternal
	}
}
