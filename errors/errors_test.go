package errors_test

import (
	stderrors "errors"
	"strconv"
	"testing"

	lexerrors "github.com/KimNorgaard/go-olex/errors"
	"github.com/stretchr/testify/require"
)

func TestLexErrorMessages(t *testing.T) {
	_, rangeErr := strconv.ParseUint("99999999999999999999", 10, 64)

	tests := []struct {
		name     string
		err      *lexerrors.LexError
		expected string
	}{
		{
			name:     "unrecognized character",
			err:      lexerrors.Unrecognized('$', 3, 7),
			expected: "unknown token '$' at line : 3, column : 7",
		},
		{
			name:     "incomplete operator",
			err:      lexerrors.Incomplete('=', 1, 1),
			expected: "unknown token '=' at line : 1, column : 1",
		},
		{
			name:     "malformed number",
			err:      lexerrors.Malformed("99999999999999999999", 1, 5, rangeErr),
			expected: `malformed number '99999999999999999999' at line : 1, column : 5: strconv.ParseUint: parsing "99999999999999999999": value out of range`,
		},
		{
			name:     "truncated lexeme",
			err:      lexerrors.Truncated(4, 1, 9),
			expected: "truncated lexeme of length 4 at line : 1, column : 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.EqualError(t, tt.err, tt.expected)
		})
	}
}

func TestLexErrorUnwrap(t *testing.T) {
	_, rangeErr := strconv.ParseFloat("1e400", 64)
	err := error(lexerrors.Malformed("1e400", 1, 1, rangeErr))

	require.ErrorIs(t, err, strconv.ErrRange)

	var lexErr *lexerrors.LexError
	require.True(t, stderrors.As(err, &lexErr))
	require.Equal(t, lexerrors.MalformedNumber, lexErr.Kind)
}

func TestLexErrors(t *testing.T) {
	require.Equal(t, "", lexerrors.LexErrors(nil).Error())

	one := lexerrors.LexErrors{lexerrors.Unrecognized('#', 1, 2)}
	require.EqualError(t, one, "unknown token '#' at line : 1, column : 2")

	many := lexerrors.LexErrors{
		lexerrors.Unrecognized('#', 1, 2),
		lexerrors.Incomplete('=', 2, 4),
		lexerrors.Unrecognized('?', 3, 1),
	}
	require.EqualError(t, many, "unknown token '#' at line : 1, column : 2 (and 2 more errors)")

	var lexErr *lexerrors.LexError
	require.True(t, stderrors.As(error(many), &lexErr))
	require.Equal(t, 1, lexErr.Line)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "unrecognized character", lexerrors.UnrecognizedCharacter.String())
	require.Equal(t, "incomplete operator", lexerrors.IncompleteOperator.String())
	require.Equal(t, "malformed number", lexerrors.MalformedNumber.String())
	require.Equal(t, "truncated lexeme", lexerrors.TruncatedLexeme.String())
	require.Equal(t, "unknown", lexerrors.Kind(0).String())
}
