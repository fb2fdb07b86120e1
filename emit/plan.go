package emit

import (
	"github.com/sarchlab/matchgen/binding"
	"github.com/sarchlab/matchgen/isa"
	"github.com/sarchlab/matchgen/pattern"
	"github.com/sarchlab/matchgen/target"
)

// Block is everything needed to emit the checks for one entry.
type Block struct {
	Entry pattern.Entry
	// Offset is the distance back from the end index.
	Offset     int
	Resolution isa.Resolution
	// Placeholder is set for ldloc.X / stloc.X entries.
	Placeholder *binding.Placeholder
	// Target is set for call entries that carry a target.
	Target *target.Matcher
}

// Plan is a fully resolved pattern, ready to be rendered.
type Plan struct {
	// Lines are the accepted input lines in original order.
	Lines []string
	// Blocks are in emission order: the last input line comes first.
	Blocks []Block
}

// Span is the offset of the first input line, -1 for an empty pattern.
func (p *Plan) Span() int {
	return len(p.Lines) - 1
}

// NeedsStrings reports whether any target guard uses a string predicate
// other than equality.
func (p *Plan) NeedsStrings() bool {
	for _, b := range p.Blocks {
		if b.Target != nil && b.Target.Shape != target.Exact {
			return true
		}
	}

	return false
}

// NewPlan resolves every entry of p against set, or isa.DefaultISA when set
// is nil. Entries are visited back-to-front; p itself is left in input order.
func NewPlan(p pattern.Pattern, set *isa.ISA) (*Plan, error) {
	if set == nil {
		set = isa.DefaultISA
	}

	plan := &Plan{
		Lines:  p.Lines(),
		Blocks: make([]Block, 0, p.Len()),
	}

	for pos := p.Len() - 1; pos >= 0; pos-- {
		e := p.Entries[pos]
		b := Block{
			Entry:      e,
			Offset:     p.Offset(pos),
			Resolution: set.Resolve(e.Mnemonic),
		}

		if ph, ok := binding.Parse(e.Mnemonic); ok {
			b.Placeholder = &ph
		}

		if target.Applies(e.Mnemonic) && e.HasArgument() {
			m, err := target.Build(e.Argument)
			if err != nil {
				return nil, &pattern.EntryError{Line: pos, Text: e.Text, Err: err}
			}
			b.Target = &m
		}

		plan.Blocks = append(plan.Blocks, b)
	}

	return plan, nil
}
