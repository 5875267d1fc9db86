//go:build go1.18

package olex_test

import (
	"strconv"
	"testing"

	"github.com/KimNorgaard/go-olex"
	"github.com/KimNorgaard/go-olex/internal/testutil"
	"github.com/KimNorgaard/go-olex/token"
	"github.com/stretchr/testify/require"
)

func FuzzTokenize(f *testing.F) {
	// Seed the corpus with the sample sources.
	names, err := testutil.Sources()
	if err != nil {
		f.Fatalf("failed to list seed files: %v", err)
	}
	for _, name := range names {
		data, err := testutil.ReadTestData(name)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", name, err)
		}
		f.Add(data)
	}

	f.Add([]byte(""))
	f.Add([]byte(":= => : ="))
	f.Add([]byte("123. 1.5 .5"))
	f.Add([]byte("// c\n//\n"))
	f.Add([]byte("é\xff"))

	f.Fuzz(func(t *testing.T, src []byte) {
		// 1. Tokenizing must be deterministic.
		first, err1 := olex.Tokenize(src)
		second, err2 := olex.Tokenize(src)
		require.Equal(t, first, second)
		require.Equal(t, err1, err2)
		if err1 != nil {
			require.Nil(t, first)
			return
		}

		// 2. Every span must cover exactly the lexeme it was scanned from.
		for i, tok := range first {
			require.NotEqual(t, token.UNKNOWN, tok.Kind())
			require.NotEqual(t, token.EOF, tok.Kind())

			text, ok := testutil.SpanText(string(src), tok.Span())
			require.True(t, ok, "token[%d] span %s out of range", i, tok.Span())

			switch v := tok.Value().(type) {
			case token.KeywordValue:
				require.Equal(t, v.Keyword.String(), text)
			case token.IdentValue:
				require.Equal(t, v.Name, text)
			case token.IntValue:
				require.Equal(t, strconv.FormatUint(v.Value, 10), trimZeros(text))
			case token.RealValue:
				parsed, err := strconv.ParseFloat(text, 64)
				require.NoError(t, err)
				require.Equal(t, v.Value, parsed)
			case token.NoValue:
				require.Equal(t, tok.Span().End-tok.Span().Start, len([]rune(text)))
			}
		}

		// 3. Recovery never drops a token the strict mode would have returned.
		recovered, err := olex.Tokenize(src, olex.Recover())
		require.NoError(t, err)
		require.Equal(t, first, recovered)
	})
}

func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}
