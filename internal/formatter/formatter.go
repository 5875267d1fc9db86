package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KimNorgaard/go-olex/token"
)

// Mode selects the listing layout.
type Mode int

const (
	// Plain writes Token.String, one token per line.
	Plain Mode = iota
	// Pretty writes an aligned, colored table.
	Pretty
)

// ParseMode maps a mode name ("plain" or "pretty") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "plain", "":
		return Plain, nil
	case "pretty":
		return Pretty, nil
	}
	return Plain, fmt.Errorf("unknown format %q (want plain or pretty)", s)
}

func (m Mode) String() string {
	if m == Pretty {
		return "pretty"
	}
	return "plain"
}

// Formatter writes token listings to an output stream.
type Formatter struct {
	w      io.Writer
	mode   Mode
	styles styles
}

type styles struct {
	header  lipgloss.Style
	span    lipgloss.Style
	keyword lipgloss.Style
	ident   lipgloss.Style
	number  lipgloss.Style
	symbol  lipgloss.Style
	newline lipgloss.Style
	value   lipgloss.Style
	footer  lipgloss.Style
	err     lipgloss.Style
}

var (
	purple = lipgloss.Color("#7C3AED")
	cyan   = lipgloss.Color("#06B6D4")
	green  = lipgloss.Color("#10B981")
	amber  = lipgloss.Color("#F59E0B")
	red    = lipgloss.Color("#EF4444")
	slate  = lipgloss.Color("#94A3B8")
)

// New returns a new formatter that writes to w. Colors are only emitted when
// w is a terminal that supports them.
func New(w io.Writer, mode Mode) *Formatter {
	r := lipgloss.NewRenderer(w)
	return &Formatter{
		w:    w,
		mode: mode,
		styles: styles{
			header:  r.NewStyle().Bold(true).Underline(true),
			span:    r.NewStyle().Foreground(slate),
			keyword: r.NewStyle().Foreground(purple).Bold(true),
			ident:   r.NewStyle().Foreground(cyan),
			number:  r.NewStyle().Foreground(green),
			symbol:  r.NewStyle().Foreground(amber),
			newline: r.NewStyle().Foreground(slate).Italic(true),
			value:   r.NewStyle(),
			footer:  r.NewStyle().Foreground(slate).Italic(true),
			err:     r.NewStyle().Foreground(red).Bold(true),
		},
	}
}

// Format writes the listing of toks.
func (f *Formatter) Format(toks []token.Token) error {
	if f.mode == Pretty {
		return f.formatPretty(toks)
	}
	for _, tok := range toks {
		if _, err := io.WriteString(f.w, tok.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

const (
	spanWidth = 12
	kindWidth = 16
)

func (f *Formatter) formatPretty(toks []token.Token) error {
	header := f.styles.header.Render(pad("SPAN", spanWidth)) + " " +
		f.styles.header.Render(pad("KIND", kindWidth)) + " " +
		f.styles.header.Render("VALUE")
	if _, err := io.WriteString(f.w, header+"\n"); err != nil {
		return err
	}
	for _, tok := range toks {
		kindStyle := f.kindStyle(tok.Kind())
		line := f.styles.span.Render(pad(tok.Span().String(), spanWidth)) + " " +
			kindStyle.Render(pad(strings.TrimPrefix(tok.Kind().String(), "tok_"), kindWidth)) + " " +
			f.styles.value.Render(displayValue(tok))
		if _, err := io.WriteString(f.w, strings.TrimRight(line, " ")+"\n"); err != nil {
			return err
		}
	}
	footer := f.styles.footer.Render(fmt.Sprintf("%d tokens", len(toks)))
	_, err := io.WriteString(f.w, footer+"\n")
	return err
}

// FormatError writes err as a diagnostic line. A collection of errors is
// written one per line.
func (f *Formatter) FormatError(err error) error {
	var msgs []string
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range multi.Unwrap() {
			msgs = append(msgs, e.Error())
		}
	} else {
		msgs = append(msgs, err.Error())
	}
	for _, msg := range msgs {
		if f.mode == Pretty {
			msg = f.styles.err.Render("error:") + " " + msg
		}
		if _, werr := io.WriteString(f.w, msg+"\n"); werr != nil {
			return werr
		}
	}
	return nil
}

func (f *Formatter) kindStyle(k token.Kind) lipgloss.Style {
	switch k {
	case token.KEYWORD:
		return f.styles.keyword
	case token.IDENT:
		return f.styles.ident
	case token.INT, token.REAL:
		return f.styles.number
	case token.NEWLINE:
		return f.styles.newline
	default:
		return f.styles.symbol
	}
}

var symbolText = map[token.Kind]string{
	token.ASSIGN:    ":=",
	token.FAT_ARROW: "=>",
	token.NEWLINE:   `\n`,
	token.COLON:     ":",
	token.DOT:       ".",
	token.COMMA:     ",",
	token.LPAREN:    "(",
	token.RPAREN:    ")",
}

// displayValue shows the payload, or the lexeme for payload-free tokens.
func displayValue(tok token.Token) string {
	if s, ok := symbolText[tok.Kind()]; ok {
		return s
	}
	return tok.Value().String()
}

func pad(s string, width int) string {
	if n := width - len(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
