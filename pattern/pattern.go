// Package pattern loads the line-oriented CIL pattern notation.
//
// A pattern is written top-to-bottom in execution order, one instruction per
// line:
//
//	08: stloc.N    V_0
//	09: ldloc.N    V_0
//	0A: ldc.i4.0
//	0B: ble        1F
//
// The offset label is decorative. Blank lines and lines whose first
// non-whitespace character is '#' are dropped before anything else looks at
// the input, so they never shift the position of an entry.
package pattern

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

const commentMarker = "#"

// Entry is one accepted pattern line.
type Entry struct {
	// Position is the 0-based index of the entry in original input order.
	Position int
	Label    string
	Mnemonic string
	// Argument is the free text after the mnemonic, empty when absent.
	Argument string
	// Text is the trimmed source line, echoed into the generated code.
	Text string
}

// HasArgument reports whether the line carried anything after the mnemonic.
func (e Entry) HasArgument() bool {
	return e.Argument != ""
}

func (e Entry) String() string {
	return fmt.Sprintf("Entry{%d: %s %q}", e.Position, e.Mnemonic, e.Argument)
}

// Pattern is an ordered, parsed pattern.
type Pattern struct {
	Entries []Entry
}

// Len returns the number of entries.
func (p Pattern) Len() int {
	return len(p.Entries)
}

// Lines returns the echo text of every entry in original order.
func (p Pattern) Lines() []string {
	lines := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		lines[i] = e.Text
	}

	return lines
}

// Offset returns how far back from the end index the entry at position must
// lie. The last entry is at offset 0.
func (p Pattern) Offset(position int) int {
	return len(p.Entries) - 1 - position
}

// Filter trims every line and drops blank and comment lines. Filtering an
// already filtered slice returns an equal slice.
func Filter(raw []string) []string {
	lines := make([]string, 0, len(raw))
	for _, candidate := range raw {
		line := strings.TrimSpace(candidate)
		if filterLine(line) {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}

func filterLine(line string) bool {
	return len(line) == 0 || strings.HasPrefix(line, commentMarker)
}

// Load reads all of r and returns the filtered lines.
func Load(r io.Reader) ([]string, error) {
	var raw []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw = append(raw, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pattern: %w", err)
	}

	return Filter(raw), nil
}

// LoadFile reads the pattern file at path and returns the filtered lines.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pattern file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Parse turns filtered lines into a Pattern. Lines are expected to be the
// output of Filter; a line that still is blank or a comment is malformed.
func Parse(lines []string) (Pattern, error) {
	p := Pattern{Entries: make([]Entry, 0, len(lines))}
	for i, line := range lines {
		e, err := ParseEntry(line)
		if err != nil {
			return Pattern{}, &EntryError{Line: i, Text: line, Err: err}
		}
		e.Position = i
		p.Entries = append(p.Entries, e)
	}

	return p, nil
}

// ParseEntry splits one line into label, mnemonic and argument.
func ParseEntry(line string) (Entry, error) {
	text := strings.TrimSpace(line)
	if filterLine(text) {
		return Entry{}, ErrMalformedEntry
	}

	label, rest := cutField(text)
	mnemonic, rest := cutField(rest)
	if mnemonic == "" {
		return Entry{}, fmt.Errorf("%w: missing mnemonic", ErrMalformedEntry)
	}
	if !unicode.IsLetter(rune(mnemonic[0])) {
		return Entry{}, fmt.Errorf("%w: mnemonic %q does not start with a letter",
			ErrMalformedEntry, mnemonic)
	}

	return Entry{
		Label:    strings.TrimSuffix(label, ":"),
		Mnemonic: mnemonic,
		Argument: strings.TrimSpace(rest),
		Text:     text,
	}, nil
}

// cutField returns the first whitespace-separated field of s and the
// remainder after it.
func cutField(s string) (field, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}

	return s[:end], s[end:]
}

// Read loads and parses a pattern in one step.
func Read(r io.Reader) (Pattern, error) {
	lines, err := Load(r)
	if err != nil {
		return Pattern{}, err
	}

	return Parse(lines)
}
