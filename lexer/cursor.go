package lexer

import (
	"strings"
	"unicode/utf8"
)

// cursor is a read-only view over the unconsumed source with the position of
// the next unconsumed character.
type cursor struct {
	src    string
	offset int // byte offset of the next unconsumed character
	line   int
	column int
}

func newCursor(src string) cursor {
	return cursor{src: src, line: 1, column: 1}
}

// peek returns the character n positions ahead without consuming anything.
func (c *cursor) peek(n int) (rune, bool) {
	rest := c.src[c.offset:]
	for len(rest) > 0 {
		r, size := utf8.DecodeRuneInString(rest)
		if n == 0 {
			return r, true
		}
		rest = rest[size:]
		n--
	}
	return 0, false
}

// runLength counts the consecutive characters, starting n positions ahead,
// for which accept holds.
func (c *cursor) runLength(n int, accept func(rune) bool) int {
	count := 0
	for _, r := range c.src[c.offset:] {
		if n > 0 {
			n--
			continue
		}
		if !accept(r) {
			break
		}
		count++
	}
	return count
}

// advance consumes and returns the next character.
func (c *cursor) advance() (rune, bool) {
	if c.offset >= len(c.src) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.src[c.offset:])
	c.offset += size
	if r == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return r, true
}

// consumeRun consumes exactly length characters. It consumes nothing and
// reports false if fewer than length characters remain.
func (c *cursor) consumeRun(length int) (string, bool) {
	end := c.offset
	for i := 0; i < length; i++ {
		if end >= len(c.src) {
			return "", false
		}
		_, size := utf8.DecodeRuneInString(c.src[end:])
		end += size
	}
	run := c.src[c.offset:end]
	c.offset = end
	c.line, c.column = advancePosition(c.line, c.column, run)
	return run, true
}

func (c *cursor) atEOF() bool { return c.offset >= len(c.src) }

// advancePosition returns the position just past text when text starts at
// line and column.
func advancePosition(line, column int, text string) (int, int) {
	newlines := strings.Count(text, "\n")
	if newlines == 0 {
		return line, column + utf8.RuneCountInString(text)
	}
	tail := text[strings.LastIndexByte(text, '\n')+1:]
	return line + newlines, 1 + utf8.RuneCountInString(tail)
}
