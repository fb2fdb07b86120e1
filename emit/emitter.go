// Package emit generates the source of a matcher predicate from a parsed
// pattern.
//
// The generated predicate takes the end index of a window in the host's
// instruction stream and checks the pattern backward from it: the last
// pattern line is compared with the instruction at the end index, the line
// before it with the instruction one earlier, and so on. Every check is a
// guard that fails the whole match, so the generated code is a straight
// sequence with no branching besides the early exits.
package emit

import (
	"fmt"
	"io"

	"github.com/sarchlab/matchgen/binding"
	"github.com/sarchlab/matchgen/isa"
	"github.com/sarchlab/matchgen/pattern"
)

// Emitter renders patterns through a dialect.
type Emitter struct {
	dialect Dialect
	isa     *isa.ISA
}

// NewEmitter creates an emitter. A nil set uses isa.DefaultISA.
func NewEmitter(dialect Dialect, set *isa.ISA) *Emitter {
	if set == nil {
		set = isa.DefaultISA
	}

	return &Emitter{dialect: dialect, isa: set}
}

// Dialect returns the dialect the emitter renders with.
func (e *Emitter) Dialect() Dialect {
	return e.dialect
}

// Plan resolves p without rendering anything.
func (e *Emitter) Plan(p pattern.Pattern) (*Plan, error) {
	return NewPlan(p, e.isa)
}

// Render produces the matcher source for a plan. Each call uses a fresh
// binding tracker, so renders never influence each other.
func (e *Emitter) Render(plan *Plan) ([]byte, error) {
	d := e.dialect
	w := NewWriter(d.Indent())

	d.Header(w, plan)
	for _, line := range plan.Lines {
		d.Echo(w, line)
	}
	d.Prologue(w, plan.Span())

	tracker := binding.NewTracker()
	for i, b := range plan.Blocks {
		Trace("block",
			"dialect", d.Name(),
			"offset", b.Offset,
			"mnemonic", b.Entry.Mnemonic,
			"variants", b.Resolution.Variants)

		d.Fetch(w, b.Offset, i == 0)
		if b.Resolution.Note != "" {
			d.Note(w, b.Resolution.Note)
		}
		d.KindGuard(w, b.Resolution.Variants)

		if b.Placeholder != nil {
			e.emitPlaceholder(w, tracker, *b.Placeholder)
		}

		if b.Target != nil {
			Trace("target", "offset", b.Offset, "matcher", b.Target.String())
			d.TargetGuard(w, *b.Target)
		}

		d.EndBlock(w)
	}

	var unused []string
	for _, id := range tracker.Unused() {
		unused = append(unused, binding.VarName(id))
	}
	d.Epilogue(w, unused)

	out, err := d.Finish(w.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s dialect: %w", d.Name(), err)
	}

	return out, nil
}

func (e *Emitter) emitPlaceholder(
	w *Writer,
	tracker *binding.Tracker,
	p binding.Placeholder,
) {
	expr := e.dialect.Accessor(p)

	switch tracker.Bind(p.ID, expr) {
	case binding.Declare:
		e.dialect.Declare(w, p.Name(), expr)
	case binding.Compare:
		e.dialect.Compare(w, p.Name(), expr)
	}
}

// Emit plans and renders p and writes the result to out. Nothing is written
// when any step fails.
func (e *Emitter) Emit(p pattern.Pattern, out io.Writer) error {
	plan, err := e.Plan(p)
	if err != nil {
		return err
	}

	src, err := e.Render(plan)
	if err != nil {
		return err
	}

	_, err = out.Write(src)

	return err
}
