package emit

import (
	"fmt"
	"strings"

	"github.com/sarchlab/matchgen/binding"
	"github.com/sarchlab/matchgen/config"
	"github.com/sarchlab/matchgen/target"
)

// Depths of the C# method. The method is emitted as a class member, so it
// starts two levels in.
const (
	csMember = 2
	csBody   = 3
	csLoop   = 4
	csExit   = 5
)

// CSharpDialect emits a C# method that runs its guards inside a
// do { ... } while (false) loop and leaves it with break on the first
// failing guard.
type CSharpDialect struct {
	host config.Host
}

// NewCSharpDialect creates a C# dialect bound to host.
func NewCSharpDialect(host config.Host) *CSharpDialect {
	return &CSharpDialect{host: host}
}

// Name returns "csharp".
func (c *CSharpDialect) Name() string {
	return "csharp"
}

// Indent returns a tab.
func (c *CSharpDialect) Indent() string {
	return "\t"
}

// Header writes nothing. The method is pasted into an existing class.
func (c *CSharpDialect) Header(w *Writer, plan *Plan) {}

// Echo writes a line comment at member depth.
func (c *CSharpDialect) Echo(w *Writer, line string) {
	w.Line(csMember, "// %s", line)
}

// Prologue opens the method and the loop and writes the bounds guard.
func (c *CSharpDialect) Prologue(w *Writer, span int) {
	w.Line(csMember, "public bool %s(int %s)", c.host.Func, c.host.Index)
	w.Line(csMember, "{")
	w.Line(csBody, "bool match = false;")
	w.Blank()
	w.Line(csBody, "do")
	w.Line(csBody, "{")

	if span < 0 {
		return
	}

	cond := fmt.Sprintf("%s - %d < 0", c.host.Index, span)
	if c.host.UpperBound {
		cond += fmt.Sprintf(" || %s >= %s.Length", c.host.Index, c.host.Instructions)
	}
	c.guard(w, cond)
	w.Blank()
}

// Fetch declares instruction and code on the first block and reassigns them
// afterwards.
func (c *CSharpDialect) Fetch(w *Writer, offset int, first bool) {
	if first {
		w.Line(csLoop, "%s instruction = %s[%s - %d];",
			c.host.InstructionType, c.host.Instructions, c.host.Index, offset)
		w.Line(csLoop, "%s code = %s;", c.host.KindType, c.host.Kind)

		return
	}

	w.Line(csLoop, "instruction = %s[%s - %d];", c.host.Instructions, c.host.Index, offset)
	w.Line(csLoop, "code = %s;", c.host.Kind)
}

// Note writes an unindented comment.
func (c *CSharpDialect) Note(w *Writer, text string) {
	w.Line(0, "// %s", text)
}

// KindGuard writes one conjunction of inequalities.
func (c *CSharpDialect) KindGuard(w *Writer, variants []string) {
	conds := make([]string, len(variants))
	for i, v := range variants {
		conds[i] = "code != " + c.host.KindQualifier + v
	}

	c.guard(w, strings.Join(conds, " && "))
}

// Accessor casts the candidate instruction to the local load or store type.
func (c *CSharpDialect) Accessor(p binding.Placeholder) string {
	typ := c.host.LoadLocal
	if p.Direction == binding.Store {
		typ = c.host.StoreLocal
	}

	return fmt.Sprintf("((%s) instruction).%s", typ, c.host.Variable)
}

// Declare writes an int local.
func (c *CSharpDialect) Declare(w *Writer, name, expr string) {
	w.Line(csLoop, "int %s = %s;", name, expr)
}

// Compare breaks out unless the bound value matches.
func (c *CSharpDialect) Compare(w *Writer, name, expr string) {
	c.guard(w, fmt.Sprintf("%s != %s", name, expr))
}

// TargetGuard breaks out unless the call target satisfies m.
func (c *CSharpDialect) TargetGuard(w *Writer, m target.Matcher) {
	t := fmt.Sprintf("((%s) instruction).%s", c.host.Call, c.host.Target)

	switch m.Shape {
	case target.Exact:
		c.guard(w, fmt.Sprintf("%s != %s", t, csQuote(m.Literal)))
	case target.Prefix:
		c.guard(w, fmt.Sprintf("!%s.StartsWith(%s)", t, csQuote(m.Literal)))
	case target.Suffix:
		c.guard(w, fmt.Sprintf("!%s.EndsWith(%s)", t, csQuote(m.Literal)))
	case target.Contains:
		c.guard(w, fmt.Sprintf("!%s.Contains(%s)", t, csQuote(m.Literal)))
	case target.PrefixSuffix:
		c.guard(w, fmt.Sprintf("!%s.StartsWith(%s) || !%s.EndsWith(%s)",
			t, csQuote(m.Prefix), t, csQuote(m.Suffix)))
	default:
		panic(fmt.Sprintf("unknown target shape %v", m.Shape))
	}
}

// EndBlock writes a blank line.
func (c *CSharpDialect) EndBlock(w *Writer) {
	w.Blank()
}

// Epilogue sets match, closes the loop and returns. C# accepts unused
// locals, so unused is ignored.
func (c *CSharpDialect) Epilogue(w *Writer, unused []string) {
	w.Line(csLoop, "match = true;")
	w.Line(csBody, "}")
	w.Line(csBody, "while (false);")
	w.Blank()
	w.Line(csBody, "return match;")
	w.Line(csMember, "}")
	w.Blank()
}

// Finish returns src unchanged.
func (c *CSharpDialect) Finish(src []byte) ([]byte, error) {
	return src, nil
}

func (c *CSharpDialect) guard(w *Writer, cond string) {
	w.Line(csLoop, "if (%s)", cond)
	w.Line(csExit, "break;")
}

var csEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func csQuote(s string) string {
	return `"` + csEscaper.Replace(s) + `"`
}
