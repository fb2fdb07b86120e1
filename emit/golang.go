package emit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/sarchlab/matchgen/binding"
	"github.com/sarchlab/matchgen/config"
	"github.com/sarchlab/matchgen/target"
)

// GoDialect emits a Go function returning bool.
//
// Without a package name in the host the output is a fragment: the echoed
// pattern and the function. Callers pasting it into a file need the
// "strings" import whenever a target guard uses a wildcard.
type GoDialect struct {
	host config.Host
}

// NewGoDialect creates a Go dialect bound to host.
func NewGoDialect(host config.Host) *GoDialect {
	return &GoDialect{host: host}
}

// Name returns "go".
func (g *GoDialect) Name() string {
	return "go"
}

// Indent returns a tab.
func (g *GoDialect) Indent() string {
	return "\t"
}

// Header writes the package clause and imports when the host names a
// package.
func (g *GoDialect) Header(w *Writer, plan *Plan) {
	if g.host.Package == "" {
		return
	}

	w.Line(0, "// Code generated by matchgen. DO NOT EDIT.")
	w.Blank()
	w.Line(0, "package %s", g.host.Package)
	w.Blank()

	var std []string
	if plan.NeedsStrings() {
		std = append(std, "strings")
	}
	other := append([]string(nil), g.host.Imports...)
	sort.Strings(other)

	if len(std)+len(other) == 0 {
		return
	}

	w.Line(0, "import (")
	for _, path := range std {
		w.Line(1, "%s", strconv.Quote(path))
	}
	if len(std) > 0 && len(other) > 0 {
		w.Blank()
	}
	for _, path := range other {
		w.Line(1, "%s", strconv.Quote(path))
	}
	w.Line(0, ")")
	w.Blank()
}

// Echo writes a line comment.
func (g *GoDialect) Echo(w *Writer, line string) {
	w.Line(0, "// %s", line)
}

// Prologue writes the signature and the bounds guard.
func (g *GoDialect) Prologue(w *Writer, span int) {
	w.Blank()

	recv := ""
	if g.host.Receiver != "" {
		recv = "(" + g.host.Receiver + ") "
	}
	params := g.host.Index + " int"
	if g.host.Params != "" {
		params = g.host.Params + ", " + params
	}
	w.Line(0, "func %s%s(%s) bool {", recv, g.host.Func, params)

	if span < 0 {
		return
	}

	cond := fmt.Sprintf("%s-%d < 0", g.host.Index, span)
	if g.host.UpperBound {
		cond += fmt.Sprintf(" || %s >= len(%s)", g.host.Index, g.host.Instructions)
	}
	w.Line(1, "if %s {", cond)
	w.Line(2, "return false")
	w.Line(1, "}")
	w.Blank()
}

// Fetch declares instruction and code on the first block and reassigns them
// afterwards.
func (g *GoDialect) Fetch(w *Writer, offset int, first bool) {
	op := "="
	if first {
		op = ":="
	}

	w.Line(1, "instruction %s %s[%s-%d]", op, g.host.Instructions, g.host.Index, offset)
	w.Line(1, "code %s %s", op, g.host.Kind)
}

// Note writes a comment inside the function.
func (g *GoDialect) Note(w *Writer, text string) {
	w.Line(1, "// %s", text)
}

// KindGuard writes one conjunction of inequalities.
func (g *GoDialect) KindGuard(w *Writer, variants []string) {
	conds := make([]string, len(variants))
	for i, v := range variants {
		conds[i] = "code != " + g.host.KindQualifier + v
	}

	g.guard(w, strings.Join(conds, " && "))
}

// Accessor type-asserts the candidate instruction to the local load or
// store type.
func (g *GoDialect) Accessor(p binding.Placeholder) string {
	typ := g.host.LoadLocal
	if p.Direction == binding.Store {
		typ = g.host.StoreLocal
	}

	return fmt.Sprintf("instruction.(%s).%s", typ, g.host.Variable)
}

// Declare writes a short variable declaration.
func (g *GoDialect) Declare(w *Writer, name, expr string) {
	w.Line(1, "%s := %s", name, expr)
}

// Compare guards on equality with the bound value.
func (g *GoDialect) Compare(w *Writer, name, expr string) {
	g.guard(w, fmt.Sprintf("%s != %s", name, expr))
}

// TargetGuard guards on the call target.
func (g *GoDialect) TargetGuard(w *Writer, m target.Matcher) {
	t := fmt.Sprintf("instruction.(%s).%s", g.host.Call, g.host.Target)

	switch m.Shape {
	case target.Exact:
		g.guard(w, fmt.Sprintf("%s != %s", t, strconv.Quote(m.Literal)))
	case target.Prefix:
		g.guard(w, fmt.Sprintf("!strings.HasPrefix(%s, %s)", t, strconv.Quote(m.Literal)))
	case target.Suffix:
		g.guard(w, fmt.Sprintf("!strings.HasSuffix(%s, %s)", t, strconv.Quote(m.Literal)))
	case target.Contains:
		g.guard(w, fmt.Sprintf("!strings.Contains(%s, %s)", t, strconv.Quote(m.Literal)))
	case target.PrefixSuffix:
		g.guard(w, fmt.Sprintf("!strings.HasPrefix(%s, %s) || !strings.HasSuffix(%s, %s)",
			t, strconv.Quote(m.Prefix), t, strconv.Quote(m.Suffix)))
	default:
		panic(fmt.Sprintf("unknown target shape %v", m.Shape))
	}
}

// EndBlock writes a blank line.
func (g *GoDialect) EndBlock(w *Writer) {
	w.Blank()
}

// Epilogue discards bound values nothing compared, which Go would otherwise
// reject, and returns true.
func (g *GoDialect) Epilogue(w *Writer, unused []string) {
	for _, name := range unused {
		w.Line(1, "_ = %s", name)
	}
	if len(unused) > 0 {
		w.Blank()
	}

	w.Line(1, "return true")
	w.Line(0, "}")
}

// Finish runs gofmt over the source. Imports are never added or removed, so
// the output only depends on the pattern and the host.
func (g *GoDialect) Finish(src []byte) ([]byte, error) {
	out, err := imports.Process("matcher.go", src, &imports.Options{
		Fragment:   true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}

	return out, nil
}

func (g *GoDialect) guard(w *Writer, cond string) {
	w.Line(1, "if %s {", cond)
	w.Line(2, "return false")
	w.Line(1, "}")
}
