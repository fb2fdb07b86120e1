package emit

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer collects generated source line by line.
type Writer struct {
	buf    bytes.Buffer
	indent string
}

// NewWriter creates a Writer that indents with one copy of unit per level.
func NewWriter(unit string) *Writer {
	return &Writer{indent: unit}
}

// Line writes one line at the given depth.
func (w *Writer) Line(depth int, format string, args ...any) {
	w.buf.WriteString(strings.Repeat(w.indent, depth))
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

// Blank writes an empty line.
func (w *Writer) Blank() {
	w.buf.WriteByte('\n')
}

// Bytes returns the source written so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *Writer) String() string {
	return w.buf.String()
}
