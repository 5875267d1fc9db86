package olex_test

import (
	stderrors "errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/KimNorgaard/go-olex"
	lexerrors "github.com/KimNorgaard/go-olex/errors"
	"github.com/KimNorgaard/go-olex/token"
	"github.com/stretchr/testify/require"
)

func TestTokenizeString(t *testing.T) {
	toks, err := olex.TokenizeString("method f => this")
	require.NoError(t, err)
	require.Equal(t, []token.Token{
		token.FromKeyword(token.METHOD, token.Span{Line: 1, Start: 1, End: 7}),
		token.FromIdent("f", token.Span{Line: 1, Start: 8, End: 9}),
		token.FromSymbol(token.FAT_ARROW, token.Span{Line: 1, Start: 10, End: 12}),
		token.FromKeyword(token.THIS, token.Span{Line: 1, Start: 13, End: 17}),
	}, toks)
}

func TestTokenizeFailsWithoutPartialResult(t *testing.T) {
	toks, err := olex.TokenizeString("a b c = d")
	require.Nil(t, toks)
	require.EqualError(t, err, "unknown token '=' at line : 1, column : 7")

	var lexErr *lexerrors.LexError
	require.True(t, stderrors.As(err, &lexErr))
	require.Equal(t, lexerrors.IncompleteOperator, lexErr.Kind)
}

func TestRecover(t *testing.T) {
	src := "x = 1\n" +
		"y := 99999999999999999999 + 2\n" +
		"z := 3"

	toks, err := olex.TokenizeString(src, olex.Recover())
	require.Error(t, err)

	var errs lexerrors.LexErrors
	require.True(t, stderrors.As(err, &errs))
	require.Len(t, errs, 3)

	require.Equal(t, lexerrors.IncompleteOperator, errs[0].Kind)
	require.Equal(t, 1, errs[0].Line)
	require.Equal(t, 3, errs[0].Column)

	require.Equal(t, lexerrors.MalformedNumber, errs[1].Kind)
	require.Equal(t, "99999999999999999999", errs[1].Lexeme)
	require.Equal(t, 2, errs[1].Line)
	require.Equal(t, 6, errs[1].Column)

	require.Equal(t, lexerrors.UnrecognizedCharacter, errs[2].Kind)
	require.Equal(t, '+', errs[2].Char)
	require.Equal(t, 27, errs[2].Column)

	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind())
	}
	require.Equal(t, []token.Kind{
		token.IDENT, token.INT, token.NEWLINE,
		token.IDENT, token.ASSIGN, token.INT, token.NEWLINE,
		token.IDENT, token.ASSIGN, token.INT,
	}, kinds)
}

func TestRecoverWithoutErrors(t *testing.T) {
	toks, err := olex.TokenizeString("a.b", olex.Recover())
	require.NoError(t, err)
	require.Len(t, toks, 3)
}

func TestMaxErrors(t *testing.T) {
	toks, err := olex.TokenizeString("a ? b ? c ? d", olex.Recover(), olex.MaxErrors(2))

	var errs lexerrors.LexErrors
	require.True(t, stderrors.As(err, &errs))
	require.Len(t, errs, 2)
	require.Len(t, toks, 2, "scan stops at the second error")

	_, err = olex.TokenizeString("a", olex.MaxErrors(0))
	require.EqualError(t, err, "olex: max errors must be a positive integer")
}

func TestTokenizer(t *testing.T) {
	toks, err := olex.NewTokenizer(strings.NewReader("if x then y end")).Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 5)

	_, err = olex.NewTokenizer(nil).Tokenize()
	require.EqualError(t, err, "olex: Tokenize(nil reader)")

	_, err = olex.NewTokenizer(iotest.ErrReader(stderrors.New("boom"))).Tokenize()
	require.EqualError(t, err, "olex: reading source: boom")

	_, err = olex.NewTokenizer(strings.NewReader("a ? b"), olex.Recover()).Tokenize()
	var errs lexerrors.LexErrors
	require.True(t, stderrors.As(err, &errs))
}

func TestFormatString(t *testing.T) {
	toks, err := olex.TokenizeString("(1, 2.5)")
	require.NoError(t, err)

	expected := `type = tok_open_par, span = 1:1-2, value = ""
type = tok_int, span = 1:2-3, value = "1"
type = tok_comma, span = 1:3-4, value = ""
type = tok_real, span = 1:5-8, value = "2.5"
type = tok_close_par, span = 1:8-9, value = ""
`
	require.Equal(t, expected, olex.FormatString(toks))
}

func TestConcurrentTokenize(t *testing.T) {
	const src = "class A extends B is\n  var n : Integer\nend\n"
	want, err := olex.TokenizeString(src)
	require.NoError(t, err)

	results := make(chan []token.Token, 8)
	for i := 0; i < cap(results); i++ {
		go func() {
			toks, _ := olex.TokenizeString(src)
			results <- toks
		}()
	}
	for i := 0; i < cap(results); i++ {
		require.Equal(t, want, <-results)
	}
}
