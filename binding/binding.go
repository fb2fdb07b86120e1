// Package binding tracks the slot placeholders of a pattern.
//
// A placeholder is a single upper case letter suffixed to a local load or
// store (ldloc.N, stloc.N). Every occurrence of the same letter must refer to
// the same local variable, whatever its slot number turns out to be.
package binding

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Direction tells which side of a local variable access an entry is.
type Direction int

// Directions of a slot access.
const (
	Load Direction = iota
	Store
)

func (d Direction) String() string {
	switch d {
	case Load:
		return "load"
	case Store:
		return "store"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Placeholder is a qualifying slot reference found in a mnemonic.
type Placeholder struct {
	ID        rune
	Direction Direction
}

// Name returns the identifier the generated code uses for the bound value.
func (p Placeholder) Name() string {
	return VarName(p.ID)
}

// VarName returns the generated identifier for placeholder id.
func VarName(id rune) string {
	return "var" + string(id)
}

var stemDirections = map[string]Direction{
	"ldloc": Load,
	"stloc": Store,
}

// Parse reports whether mnemonic is a local load or store ending in a
// separator followed by one upper case letter.
func Parse(mnemonic string) (Placeholder, bool) {
	stem, _, _ := strings.Cut(mnemonic, ".")
	dir, ok := stemDirections[stem]
	if !ok {
		return Placeholder{}, false
	}

	id, ok := trailingLetter(mnemonic)
	if !ok {
		return Placeholder{}, false
	}

	return Placeholder{ID: id, Direction: dir}, true
}

// HasPlaceholderSuffix reports whether mnemonic ends in a separator and a
// single upper case letter, whatever its stem.
func HasPlaceholderSuffix(mnemonic string) bool {
	_, ok := trailingLetter(mnemonic)
	return ok
}

func trailingLetter(mnemonic string) (rune, bool) {
	id, size := utf8.DecodeLastRuneInString(mnemonic)
	if size == 0 || !unicode.IsUpper(id) {
		return 0, false
	}

	rest := mnemonic[:len(mnemonic)-size]
	if !strings.HasSuffix(rest, ".") || len(rest) < 2 {
		return 0, false
	}

	return id, true
}

// Action is what the emitter has to generate for one placeholder occurrence.
type Action int

// Actions of a placeholder occurrence.
const (
	// Declare introduces the named value.
	Declare Action = iota
	// Compare guards against the previously bound value.
	Compare
)

func (a Action) String() string {
	if a == Declare {
		return "declare"
	}

	return "compare"
}

// Tracker is the run-scoped placeholder table. The zero value is not usable,
// create it with NewTracker.
type Tracker struct {
	bound    map[rune]string
	compared map[rune]bool
	order    []rune
}

// NewTracker creates an empty tracker for one generation run.
func NewTracker() *Tracker {
	return &Tracker{
		bound:    make(map[rune]string),
		compared: make(map[rune]bool),
	}
}

// Bind records an occurrence of id whose accessor is expr. The first
// occurrence declares, every later one compares; a bound expression is never
// replaced.
func (t *Tracker) Bind(id rune, expr string) Action {
	if _, ok := t.bound[id]; ok {
		t.compared[id] = true
		return Compare
	}

	t.bound[id] = expr
	t.order = append(t.order, id)

	return Declare
}

// Bound returns the expression id was first bound to.
func (t *Tracker) Bound(id rune) (string, bool) {
	expr, ok := t.bound[id]
	return expr, ok
}

// Len returns the number of bound placeholders.
func (t *Tracker) Len() int {
	return len(t.bound)
}

// Unused returns the placeholders that were declared but never compared, in
// the order they were declared.
func (t *Tracker) Unused() []rune {
	var ids []rune
	for _, id := range t.order {
		if !t.compared[id] {
			ids = append(ids, id)
		}
	}

	return ids
}

// IDs returns the bound placeholders sorted by letter.
func (t *Tracker) IDs() []rune {
	ids := append([]rune(nil), t.order...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
