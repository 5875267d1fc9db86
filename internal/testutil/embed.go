package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/KimNorgaard/go-olex/token"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	path := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Sources returns the names of every embedded .ol source file.
func Sources() ([]string, error) {
	matches, err := fs.Glob(TestdataFS, "testdata/*.ol")
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimPrefix(m, "testdata/")
	}
	return names, nil
}

// SpanText returns the text of src covered by span. The second result is
// false if span does not lie within src.
func SpanText(src string, span token.Span) (string, bool) {
	lines := strings.Split(src, "\n")
	if span.Line < 1 || span.Line > len(lines) {
		return "", false
	}
	line := []rune(lines[span.Line-1])
	if span.Line < len(lines) {
		// Keep the terminating newline addressable.
		line = append(line, '\n')
	}
	if span.Start < 1 || span.End < span.Start || span.End-1 > len(line) {
		return "", false
	}
	return string(line[span.Start-1 : span.End-1]), true
}
