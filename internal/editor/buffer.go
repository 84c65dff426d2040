// Package editor holds the editable shader texts: one Buffer per slot with a cursor,
// and the Set that tracks which buffer the user is currently editing.
package editor

import (
	"strings"
	"unicode/utf8"
)

// TabWidth is the number of spaces inserted for Tab.
const TabWidth = 4

// Buffer is a text with a byte-offset cursor that always sits on a rune boundary.
// Revision increases on every change so readers can tell edited text from compiled text.
type Buffer struct {
	text     string
	cursor   int
	revision uint64
}

// NewBuffer returns a buffer holding text with the cursor at the start.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text}
}

// Text returns the current text.
func (b *Buffer) Text() string {
	return b.text
}

// Revision returns the edit counter.
func (b *Buffer) Revision() uint64 {
	return b.revision
}

// SetText replaces the whole text and moves the cursor to the start.
func (b *Buffer) SetText(text string) {
	b.text = text
	b.cursor = 0
	b.revision++
}

// Cursor returns the cursor as zero-based line and column (in runes).
func (b *Buffer) Cursor() (line, col int) {
	before := b.text[:b.cursor]
	line = strings.Count(before, "\n")
	start := strings.LastIndexByte(before, '\n') + 1
	return line, utf8.RuneCountInString(before[start:])
}

// Offset returns the cursor byte offset.
func (b *Buffer) Offset() int {
	return b.cursor
}

// Lines splits the text at newlines.
func (b *Buffer) Lines() []string {
	return strings.Split(b.text, "\n")
}

// Insert types s at the cursor.
func (b *Buffer) Insert(s string) {
	if s == "" {
		return
	}
	b.text = b.text[:b.cursor] + s + b.text[b.cursor:]
	b.cursor += len(s)
	b.revision++
}

// InsertRune types r at the cursor. Control characters other than tab and newline are dropped.
func (b *Buffer) InsertRune(r rune) {
	switch {
	case r == '\t':
		b.Tab()
	case r == '\n':
		b.Newline()
	case r < 0x20 || r == 0x7f || !utf8.ValidRune(r):
	default:
		b.Insert(string(r))
	}
}

// Tab inserts TabWidth spaces.
func (b *Buffer) Tab() {
	b.Insert(strings.Repeat(" ", TabWidth))
}

// Newline breaks the line and copies the current line's indentation.
func (b *Buffer) Newline() {
	start := strings.LastIndexByte(b.text[:b.cursor], '\n') + 1
	indent := b.text[start:b.cursor]
	indent = indent[:len(indent)-len(strings.TrimLeft(indent, " \t"))]
	b.Insert("\n" + indent)
}

// Backspace removes the rune before the cursor.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(b.text[:b.cursor])
	b.text = b.text[:b.cursor-size] + b.text[b.cursor:]
	b.cursor -= size
	b.revision++
}

// Delete removes the rune after the cursor.
func (b *Buffer) Delete() {
	if b.cursor >= len(b.text) {
		return
	}
	_, size := utf8.DecodeRuneInString(b.text[b.cursor:])
	b.text = b.text[:b.cursor] + b.text[b.cursor+size:]
	b.revision++
}

// Left moves the cursor one rune back.
func (b *Buffer) Left() {
	if b.cursor > 0 {
		_, size := utf8.DecodeLastRuneInString(b.text[:b.cursor])
		b.cursor -= size
	}
}

// Right moves the cursor one rune forward.
func (b *Buffer) Right() {
	if b.cursor < len(b.text) {
		_, size := utf8.DecodeRuneInString(b.text[b.cursor:])
		b.cursor += size
	}
}

// Home moves to the start of the line.
func (b *Buffer) Home() {
	b.cursor = strings.LastIndexByte(b.text[:b.cursor], '\n') + 1
}

// End moves to the end of the line.
func (b *Buffer) End() {
	if i := strings.IndexByte(b.text[b.cursor:], '\n'); i >= 0 {
		b.cursor += i
		return
	}
	b.cursor = len(b.text)
}

// Up moves to the previous line, keeping the column where possible.
func (b *Buffer) Up() {
	line, col := b.Cursor()
	if line > 0 {
		b.moveTo(line-1, col)
	}
}

// Down moves to the next line, keeping the column where possible.
func (b *Buffer) Down() {
	line, col := b.Cursor()
	if line < strings.Count(b.text, "\n") {
		b.moveTo(line+1, col)
	}
}

func (b *Buffer) moveTo(line, col int) {
	off := 0
	for i := 0; i < line; i++ {
		off += strings.IndexByte(b.text[off:], '\n') + 1
	}
	rest := b.text[off:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	for col > 0 && len(rest) > 0 {
		_, size := utf8.DecodeRuneInString(rest)
		off += size
		rest = rest[size:]
		col--
	}
	b.cursor = off
}
