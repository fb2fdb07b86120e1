package emit

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/sarchlab/matchgen/binding"
	"github.com/sarchlab/matchgen/config"
	"github.com/sarchlab/matchgen/target"
)

// ErrUnknownDialect is returned by LookupDialect for names it does not know.
var ErrUnknownDialect = errors.New("unknown dialect")

// Dialect renders the pieces of a matcher in one output language. The
// emitter calls the methods in a fixed order:
//
//	Indent, Header, Echo..., Prologue,
//	  (Fetch, [Note], KindGuard, [Accessor, Declare|Compare], [TargetGuard], EndBlock)...,
//	Epilogue, Finish
type Dialect interface {
	Name() string
	// Indent is the unit of one indentation level.
	Indent() string

	// Header writes anything that precedes the echoed input.
	Header(w *Writer, plan *Plan)
	// Echo writes one accepted input line as a comment.
	Echo(w *Writer, line string)
	// Prologue opens the function and writes the bounds guard. span is
	// negative for an empty pattern, which gets no guard.
	Prologue(w *Writer, span int)

	// Fetch loads the candidate instruction at the offset and its kind.
	Fetch(w *Writer, offset int, first bool)
	// Note writes a diagnostic comment.
	Note(w *Writer, text string)
	// KindGuard fails unless the kind is one of variants.
	KindGuard(w *Writer, variants []string)
	// Accessor returns the expression reading the placeholder's slot from
	// the current candidate instruction.
	Accessor(p binding.Placeholder) string
	// Declare binds name to expr.
	Declare(w *Writer, name, expr string)
	// Compare fails unless name equals expr.
	Compare(w *Writer, name, expr string)
	// TargetGuard fails unless the call target satisfies m.
	TargetGuard(w *Writer, m target.Matcher)
	// EndBlock separates the checks of two entries.
	EndBlock(w *Writer)

	// Epilogue reports success. unused names the bound values no guard
	// ever compared.
	Epilogue(w *Writer, unused []string)
	// Finish post-processes the complete source.
	Finish(src []byte) ([]byte, error)
}

type dialectFactory func(host config.Host) Dialect

var dialects = map[string]dialectFactory{
	"go":     func(h config.Host) Dialect { return NewGoDialect(h) },
	"csharp": func(h config.Host) Dialect { return NewCSharpDialect(h) },
}

// LookupDialect creates the named dialect bound to host.
func LookupDialect(name string, host config.Host) (Dialect, error) {
	factory, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownDialect, name, Dialects())
	}

	return factory(host), nil
}

// Dialects returns the known dialect names.
func Dialects() []string {
	names := lo.Keys(dialects)
	sort.Strings(names)

	return names
}
