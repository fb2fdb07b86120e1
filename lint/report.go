package lint

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/sarchlab/matchgen/pattern"
)

// Report is the result of linting one pattern.
type Report struct {
	Source  string
	Entries int
	Issues  []Issue
}

// GenerateReport lints p. source names the pattern in the rendered report.
func GenerateReport(source string, p pattern.Pattern) *Report {
	return &Report{
		Source:  source,
		Entries: p.Len(),
		Issues:  RunLint(p),
	}
}

// HasErrors reports whether generation would fail on the pattern.
func (r *Report) HasErrors() bool {
	return lo.SomeBy(r.Issues, func(issue Issue) bool {
		return issue.Severity == SeverityError
	})
}

// Count returns the number of issues of one severity.
func (r *Report) Count(severity Severity) int {
	return lo.CountBy(r.Issues, func(issue Issue) bool {
		return issue.Severity == severity
	})
}

// WriteReport writes the issues as a table followed by a summary line.
func (r *Report) WriteReport(w io.Writer) {
	if len(r.Issues) == 0 {
		fmt.Fprintf(w, "%s: %d entries, no lint issues\n", r.Source, r.Entries)
		return
	}

	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("%s lint", r.Source))
	t.AppendHeader(table.Row{"Line", "Severity", "Type", "Entry", "Message"})

	for _, issue := range r.Issues {
		t.AppendRow(table.Row{
			issue.Line,
			issue.Severity,
			issue.Type,
			issue.Text,
			issue.Message,
		})
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%s: %d entries, %d errors, %d warnings\n",
		r.Source, r.Entries, r.Count(SeverityError), r.Count(SeverityWarning))
}
