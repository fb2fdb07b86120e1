package isa

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes the alias table as a text table, one row per stem.
func (isa *ISA) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("%s aliases (%d stems)", isa.isaName, len(isa.stemToKinds)))
	t.AppendHeader(table.Row{"Stem", "Variants", "Kinds"})

	for _, stem := range isa.Stems() {
		kinds := isa.stemToKinds[stem]
		t.AppendRow(table.Row{stem, len(kinds), strings.Join(kinds, " ")})
	}

	fmt.Fprintln(w, t.Render())
}
