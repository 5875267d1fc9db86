package errors

import "fmt"

// Kind classifies a lexical error.
type Kind int

const (
	// UnrecognizedCharacter is a character that does not begin any lexeme.
	UnrecognizedCharacter Kind = iota + 1
	// IncompleteOperator is the first character of a two-character operator
	// without its required second character.
	IncompleteOperator
	// MalformedNumber is a numeral that does not fit its target representation.
	MalformedNumber
	// TruncatedLexeme is a lexeme whose computed length runs past the input.
	TruncatedLexeme
)

func (k Kind) String() string {
	switch k {
	case UnrecognizedCharacter:
		return "unrecognized character"
	case IncompleteOperator:
		return "incomplete operator"
	case MalformedNumber:
		return "malformed number"
	case TruncatedLexeme:
		return "truncated lexeme"
	default:
		return "unknown"
	}
}

// LexError represents a single error that occurred during tokenizing.
// It includes the 1-based position of the offending input.
type LexError struct {
	Kind   Kind
	Char   rune   // offending character, if any
	Lexeme string // offending numeral for MalformedNumber
	Length int    // requested lexeme length for TruncatedLexeme
	Line   int
	Column int
	Err    error
}

// Unrecognized returns an UnrecognizedCharacter error for ch.
func Unrecognized(ch rune, line, column int) *LexError {
	return &LexError{Kind: UnrecognizedCharacter, Char: ch, Line: line, Column: column}
}

// Incomplete returns an IncompleteOperator error for the operator's first character.
func Incomplete(ch rune, line, column int) *LexError {
	return &LexError{Kind: IncompleteOperator, Char: ch, Line: line, Column: column}
}

// Malformed returns a MalformedNumber error wrapping the conversion failure.
func Malformed(lexeme string, line, column int, err error) *LexError {
	return &LexError{Kind: MalformedNumber, Lexeme: lexeme, Line: line, Column: column, Err: err}
}

// Truncated returns a TruncatedLexeme error.
func Truncated(length, line, column int) *LexError {
	return &LexError{Kind: TruncatedLexeme, Length: length, Line: line, Column: column}
}

func (e *LexError) Error() string {
	switch e.Kind {
	case MalformedNumber:
		return fmt.Sprintf("malformed number '%s' at line : %d, column : %d: %v", e.Lexeme, e.Line, e.Column, e.Err)
	case TruncatedLexeme:
		return fmt.Sprintf("truncated lexeme of length %d at line : %d, column : %d", e.Length, e.Line, e.Column)
	}
	return fmt.Sprintf("unknown token '%c' at line : %d, column : %d", e.Char, e.Line, e.Column)
}

func (e *LexError) Unwrap() error { return e.Err }

// LexErrors is a slice of LexError that implements the error interface.
// It is returned when errors are collected instead of aborting the scan.
type LexErrors []*LexError

func (l LexErrors) Error() string {
	if len(l) == 0 {
		return ""
	}
	// The collection reports the first error; callers range over it for the rest.
	if len(l) == 1 {
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
}

// Unwrap exposes each error to errors.Is and errors.As.
func (l LexErrors) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}
