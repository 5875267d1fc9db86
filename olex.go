package olex

import (
	stderrors "errors"
	"fmt"
	"io"

	lexerrors "github.com/KimNorgaard/go-olex/errors"
	"github.com/KimNorgaard/go-olex/lexer"
	"github.com/KimNorgaard/go-olex/token"
)

// Tokenize scans src and returns its tokens in source order, without a
// trailing EOF token.
//
// By default the first lexical error aborts the scan and no tokens are
// returned. The error is a *errors.LexError carrying the offending position.
// See Recover for the alternative.
func Tokenize(src []byte, opts ...Option) ([]token.Token, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	l := lexer.New(src)
	if !o.recover {
		return l.Tokenize()
	}
	return tokenizeRecovering(l, o.maxErrors)
}

// TokenizeString is like Tokenize but reads from a string.
func TokenizeString(src string, opts ...Option) ([]token.Token, error) {
	return Tokenize([]byte(src), opts...)
}

func tokenizeRecovering(l *lexer.Lexer, maxErrors int) ([]token.Token, error) {
	toks := []token.Token{}
	var errs lexerrors.LexErrors
	for {
		tok, err := l.Next()
		if err != nil {
			var lexErr *lexerrors.LexError
			if !stderrors.As(err, &lexErr) {
				return toks, err
			}
			errs = append(errs, lexErr)
			if maxErrors > 0 && len(errs) >= maxErrors {
				break
			}
			continue
		}
		if tok.Kind() == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	if len(errs) > 0 {
		return toks, errs
	}
	return toks, nil
}

// Tokenizer reads source text from an input stream and tokenizes it.
type Tokenizer struct {
	r    io.Reader
	opts []Option
}

// NewTokenizer returns a new tokenizer that reads from r.
//
// It is the caller's responsibility to call Close on r if required.
func NewTokenizer(r io.Reader, opts ...Option) *Tokenizer {
	return &Tokenizer{r: r, opts: opts}
}

// Tokenize reads all of its input and tokenizes it. See Tokenize.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first.
func (t *Tokenizer) Tokenize() ([]token.Token, error) {
	if t.r == nil {
		return nil, fmt.Errorf("olex: Tokenize(nil reader)")
	}
	src, err := io.ReadAll(t.r)
	if err != nil {
		return nil, fmt.Errorf("olex: reading source: %w", err)
	}
	return Tokenize(src, t.opts...)
}
