package lexer

import (
	"strconv"

	lexerrors "github.com/KimNorgaard/go-olex/errors"
	"github.com/KimNorgaard/go-olex/token"
)

// Lexer holds the state for tokenizing a source buffer.
type Lexer struct {
	cur cursor
}

// New creates and returns a new Lexer.
func New(input []byte) *Lexer {
	return NewString(string(input))
}

// NewString creates a Lexer reading directly from src.
func NewString(src string) *Lexer {
	return &Lexer{cur: newCursor(src)}
}

// Next scans the input and returns the next token. At end of input it
// returns an EOF token, and keeps doing so on later calls.
//
// On error the lexer has already moved past the offending input, so a caller
// that wants to keep going may simply call Next again.
func (l *Lexer) Next() (token.Token, error) {
	l.skipElided()

	line, column := l.cur.line, l.cur.column
	ch, ok := l.cur.peek(0)
	if !ok {
		return token.FromSymbol(token.EOF, token.Span{Line: line, Start: column, End: column}), nil
	}

	classifiers := [...]func() (token.Token, error){l.scanWord, l.scanNumber, l.scanSymbol}
	for _, classify := range classifiers {
		tok, err := classify()
		if err != nil {
			return token.Token{}, err
		}
		if tok.Kind() != token.UNKNOWN {
			return tok, nil
		}
	}

	l.cur.advance()
	return token.Token{}, lexerrors.Unrecognized(ch, line, column)
}

// Tokenize scans the remaining input and returns every token up to, but not
// including, EOF. It stops at the first error and returns no tokens then.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	toks := []token.Token{}
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind() == token.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// Tokenize scans input in one pass. See Lexer.Tokenize.
func Tokenize(input []byte) ([]token.Token, error) {
	return New(input).Tokenize()
}

// skipElided drops whitespace and line comments until neither applies.
func (l *Lexer) skipElided() {
	for {
		ws := l.skipWhitespace()
		comment := l.skipComment()
		if !ws && !comment {
			return
		}
	}
}

func (l *Lexer) skipWhitespace() bool {
	skipped := false
	for {
		ch, ok := l.cur.peek(0)
		if !ok || !isSpace(ch) {
			return skipped
		}
		l.cur.advance()
		skipped = true
	}
}

// skipComment drops a // comment up to, but not including, its newline.
func (l *Lexer) skipComment() bool {
	if ch, _ := l.cur.peek(0); ch != '/' {
		return false
	}
	if ch, _ := l.cur.peek(1); ch != '/' {
		return false
	}
	n := 2 + l.cur.runLength(2, func(r rune) bool { return r != '\n' })
	l.cur.consumeRun(n)
	return true
}

func (l *Lexer) scanWord() (token.Token, error) {
	if ch, _ := l.cur.peek(0); !isIdentStart(ch) {
		return token.Unknown(), nil
	}
	line, start := l.cur.line, l.cur.column
	word, err := l.take(1 + l.cur.runLength(1, isIdentChar))
	if err != nil {
		return token.Token{}, err
	}
	span := token.Span{Line: line, Start: start, End: l.cur.column}
	if kw, ok := token.LookupKeyword(word); ok {
		return token.FromKeyword(kw, span), nil
	}
	return token.FromIdent(word, span), nil
}

func (l *Lexer) scanNumber() (token.Token, error) {
	if ch, _ := l.cur.peek(0); !isDigit(ch) {
		return token.Unknown(), nil
	}
	line, start := l.cur.line, l.cur.column

	n := 1 + l.cur.runLength(1, isDigit)
	isReal := false
	// A '.' belongs to the numeral only when a digit follows it.
	if dot, _ := l.cur.peek(n); dot == '.' {
		if digit, _ := l.cur.peek(n + 1); isDigit(digit) {
			n += 2 + l.cur.runLength(n+2, isDigit)
			isReal = true
		}
	}

	lexeme, err := l.take(n)
	if err != nil {
		return token.Token{}, err
	}
	span := token.Span{Line: line, Start: start, End: l.cur.column}

	if isReal {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return token.Token{}, lexerrors.Malformed(lexeme, line, start, err)
		}
		return token.FromReal(f, span), nil
	}
	v, err := strconv.ParseUint(lexeme, 10, 64)
	if err != nil {
		return token.Token{}, lexerrors.Malformed(lexeme, line, start, err)
	}
	return token.FromInt(v, span), nil
}

func (l *Lexer) scanSymbol() (token.Token, error) {
	line, start := l.cur.line, l.cur.column
	ch, _ := l.cur.peek(0)
	next, _ := l.cur.peek(1)

	var kind token.Kind
	length := 1
	switch ch {
	case '(':
		kind = token.LPAREN
	case ')':
		kind = token.RPAREN
	case '.':
		kind = token.DOT
	case ',':
		kind = token.COMMA
	case '\n':
		kind = token.NEWLINE
	case ':':
		kind = token.COLON
		if next == '=' {
			kind, length = token.ASSIGN, 2
		}
	case '=':
		if next != '>' {
			l.cur.advance()
			return token.Token{}, lexerrors.Incomplete(ch, line, start)
		}
		kind, length = token.FAT_ARROW, 2
	default:
		return token.Unknown(), nil
	}

	if _, err := l.take(length); err != nil {
		return token.Token{}, err
	}
	// Columns are computed from the start so a newline's span stays on its own line.
	return token.FromSymbol(kind, token.Span{Line: line, Start: start, End: start + length}), nil
}

// take consumes a lexeme of length characters whose extent was measured by
// lookahead. Running out of input here means a classifier miscounted.
func (l *Lexer) take(length int) (string, error) {
	line, column := l.cur.line, l.cur.column
	lexeme, ok := l.cur.consumeRun(length)
	if !ok {
		for !l.cur.atEOF() {
			l.cur.advance()
		}
		return "", lexerrors.Truncated(length, line, column)
	}
	return lexeme, nil
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\v' || ch == '\f'
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return isLetter(ch) || ch == '_'
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
