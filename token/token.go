package token

import (
	"fmt"
	"strconv"
)

// Kind is the terminal category of a token.
type Kind string

const (
	// Special tokens
	UNKNOWN Kind = "tok_unknown" // Classifier did not match; never returned to callers
	EOF     Kind = "tok_end"     // End of input

	// Literals
	IDENT   Kind = "tok_identifier" // foo, _bar, x1
	KEYWORD Kind = "tok_keyword"    // class, while, ...
	INT     Kind = "tok_int"        // 12345
	REAL    Kind = "tok_real"       // 123.45

	// Operators
	ASSIGN    Kind = "tok_assignment" // :=
	FAT_ARROW Kind = "tok_fat_arrow"  // =>

	// Delimiters
	NEWLINE Kind = "tok_new_line"  // \n
	COLON   Kind = "tok_colon"     // :
	DOT     Kind = "tok_dot"       // .
	COMMA   Kind = "tok_comma"     // ,
	LPAREN  Kind = "tok_open_par"  // (
	RPAREN  Kind = "tok_close_par" // )
)

func (k Kind) String() string { return string(k) }

// IsSymbol reports whether k is a punctuation, operator, newline or EOF kind,
// all of which carry no payload.
func (k Kind) IsSymbol() bool {
	switch k {
	case ASSIGN, FAT_ARROW, NEWLINE, COLON, DOT, COMMA, LPAREN, RPAREN, EOF:
		return true
	}
	return false
}

// Span is the location of a lexeme on a single line. Lines and columns are
// 1-based and the column range [Start, End) is half-open.
type Span struct {
	Line  int
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.Line, s.Start, s.End)
}

// Value is the payload of a token. The set of implementations is closed:
// NoValue, KeywordValue, IdentValue, IntValue and RealValue.
type Value interface {
	fmt.Stringer
	value()
}

// NoValue is the payload of punctuation, newline and EOF tokens.
type NoValue struct{}

// KeywordValue is the payload of a KEYWORD token.
type KeywordValue struct{ Keyword Keyword }

// IdentValue is the payload of an IDENT token.
type IdentValue struct{ Name string }

// IntValue is the payload of an INT token.
type IntValue struct{ Value uint64 }

// RealValue is the payload of a REAL token.
type RealValue struct{ Value float64 }

func (NoValue) value()      {}
func (KeywordValue) value() {}
func (IdentValue) value()   {}
func (IntValue) value()     {}
func (RealValue) value()    {}

func (NoValue) String() string        { return "" }
func (v KeywordValue) String() string { return v.Keyword.String() }
func (v IdentValue) String() string   { return v.Name }
func (v IntValue) String() string     { return strconv.FormatUint(v.Value, 10) }
func (v RealValue) String() string    { return strconv.FormatFloat(v.Value, 'g', -1, 64) }

// Token represents a lexical token. Tokens are immutable once built; use New
// or one of the From* constructors.
type Token struct {
	kind  Kind
	span  Span
	value Value
}

// New builds a token, checking that v is the payload shape kind requires.
func New(kind Kind, span Span, v Value) (Token, error) {
	var ok bool
	switch v.(type) {
	case NoValue:
		ok = kind.IsSymbol()
	case KeywordValue:
		ok = kind == KEYWORD
	case IdentValue:
		ok = kind == IDENT
	case IntValue:
		ok = kind == INT
	case RealValue:
		ok = kind == REAL
	}
	if !ok {
		return Token{}, fmt.Errorf("token: kind %s cannot carry payload %T", kind, v)
	}
	return Token{kind: kind, span: span, value: v}, nil
}

// FromSymbol returns a payload-free token. It panics if kind requires a payload.
func FromSymbol(kind Kind, span Span) Token {
	if !kind.IsSymbol() {
		panic("token: " + string(kind) + " is not a symbol kind")
	}
	return Token{kind: kind, span: span, value: NoValue{}}
}

// FromKeyword returns a KEYWORD token.
func FromKeyword(kw Keyword, span Span) Token {
	return Token{kind: KEYWORD, span: span, value: KeywordValue{Keyword: kw}}
}

// FromIdent returns an IDENT token.
func FromIdent(name string, span Span) Token {
	return Token{kind: IDENT, span: span, value: IdentValue{Name: name}}
}

// FromInt returns an INT token.
func FromInt(n uint64, span Span) Token {
	return Token{kind: INT, span: span, value: IntValue{Value: n}}
}

// FromReal returns a REAL token.
func FromReal(f float64, span Span) Token {
	return Token{kind: REAL, span: span, value: RealValue{Value: f}}
}

// Unknown is the transient result of a classifier that did not match.
func Unknown() Token {
	return Token{kind: UNKNOWN, value: NoValue{}}
}

func (t Token) Kind() Kind   { return t.kind }
func (t Token) Span() Span   { return t.span }
func (t Token) Value() Value { return t.value }

// String renders the token as
//
//	type = tok_identifier, span = 1:1-4, value = "foo"
func (t Token) String() string {
	var payload string
	if t.value != nil {
		payload = t.value.String()
	}
	return fmt.Sprintf("type = %s, span = %s, value = \"%s\"", t.kind, t.span, payload)
}
