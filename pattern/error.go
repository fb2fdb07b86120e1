package pattern

import (
	"errors"
	"fmt"
)

// ErrMalformedEntry is returned for a line that cannot be split into an
// offset label and a mnemonic.
var ErrMalformedEntry = errors.New("malformed pattern entry")

// EntryError locates a parse failure in the filtered pattern.
type EntryError struct {
	// Line is the 0-based index among the accepted lines.
	Line int
	Text string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("pattern line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
