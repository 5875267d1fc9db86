package olex

import (
	"bytes"
	"io"

	"github.com/KimNorgaard/go-olex/internal/formatter"
	"github.com/KimNorgaard/go-olex/token"
)

// Format writes toks to w, one token per line, in the form
//
//	type = tok_keyword, span = 1:1-6, value = "class"
func Format(w io.Writer, toks []token.Token) error {
	return formatter.New(w, formatter.Plain).Format(toks)
}

// FormatString returns the listing Format would write.
func FormatString(toks []token.Token) string {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = Format(&buf, toks)
	return buf.String()
}
