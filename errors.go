package gocalc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedChar is returned when the scanner meets a character that
	// starts no token.
	ErrUnexpectedChar = errors.New("unexpected character")
	// ErrSyntax marks every parser failure.
	ErrSyntax = errors.New("syntax error")
	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is returned when a literal or an intermediate result does
	// not fit in an int64.
	ErrOverflow = errors.New("integer overflow")
	// ErrInputTooLong is returned by ReadLine when the line exceeds its bound.
	ErrInputTooLong = errors.New("input too long")
	// ErrNoInput is returned by ReadLine on an empty stream.
	ErrNoInput = errors.New("no input")
	// ErrNoEOF is returned by Parse when the token slice is not terminated.
	ErrNoEOF = errors.New("token sequence does not end with end of input")
	// ErrNilNode is returned by Eval for a nil tree.
	ErrNilNode = errors.New("nil node")
)

type LexError struct {
	Pos  int
	Char rune
	Err  error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.message(), e.Pos)
}

func (e *LexError) message() string {
	if errors.Is(e.Err, ErrOverflow) {
		return fmt.Sprintf("%v: integer literal", e.Err)
	}
	return fmt.Sprintf("%v %q", e.Err, e.Char)
}

func (e *LexError) Unwrap() error { return e.Err }

// SyntaxError reports the token the parser found where it expected
// something else.
type SyntaxError struct {
	Pos      int
	Expected string
	Found    Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.message(), e.Pos)
}

func (e *SyntaxError) message() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found.describe())
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

type EvalError struct {
	Pos int
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.message(), e.Pos)
}

func (e *EvalError) message() string {
	return e.Err.Error()
}

func (e *EvalError) Unwrap() error { return e.Err }

// Position returns the source offset carried by err, if any.
func Position(err error) (int, bool) {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr.Pos, true
	}
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return synErr.Pos, true
	}
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		return evalErr.Pos, true
	}
	return 0, false
}
