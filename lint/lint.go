// Package lint checks patterns for lines the generator rejects or accepts
// with a result the author probably did not mean.
package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sarchlab/matchgen/binding"
	"github.com/sarchlab/matchgen/isa"
	"github.com/sarchlab/matchgen/pattern"
	"github.com/sarchlab/matchgen/target"
)

// IssueType categorizes lint issues
type IssueType string

const (
	// IssueWildcard is a call target the generator rejects.
	IssueWildcard IssueType = "WILDCARD"
	// IssuePlaceholder is a placeholder suffix on a mnemonic that does not
	// bind, which resolves to a kind name that does not exist.
	IssuePlaceholder IssueType = "PLACEHOLDER"
	// IssueSingleUse is a placeholder nothing else refers to.
	IssueSingleUse IssueType = "SINGLE_USE"
	// IssueNoTarget is a call without a target, which matches any callee.
	IssueNoTarget IssueType = "NO_TARGET"
	// IssueEmptySegment is a mnemonic with an empty dotted segment.
	IssueEmptySegment IssueType = "EMPTY_SEGMENT"
)

// Severity tells whether generation would fail.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue represents a single lint issue
type Issue struct {
	Type     IssueType
	Severity Severity
	Line     int    // Position of the entry in the filtered pattern
	Text     string // The entry as written
	Message  string
	Details  map[string]interface{}
}

func (i Issue) String() string {
	return fmt.Sprintf("%d: %s: %s", i.Line, i.Type, i.Message)
}

// RunLint performs static checks on a parsed pattern. Issues come back in
// line order.
func RunLint(p pattern.Pattern) []Issue {
	var issues []Issue

	uses := make(map[rune][]pattern.Entry)

	for _, e := range p.Entries {
		issues = append(issues, checkSegments(e)...)
		issues = append(issues, checkCall(e)...)

		if ph, ok := binding.Parse(e.Mnemonic); ok {
			uses[ph.ID] = append(uses[ph.ID], e)
		} else if binding.HasPlaceholderSuffix(e.Mnemonic) &&
			!isa.IsVerbatim(e.Mnemonic) {
			issues = append(issues, Issue{
				Type:     IssuePlaceholder,
				Severity: SeverityWarning,
				Line:     e.Position,
				Text:     e.Text,
				Message: fmt.Sprintf(
					"%s: only ldloc and stloc take a placeholder, this resolves to %s",
					e.Mnemonic, isa.FallbackName(e.Mnemonic)),
				Details: map[string]interface{}{"stem": isa.Stem(e.Mnemonic)},
			})
		}
	}

	for id, entries := range uses {
		if len(entries) > 1 {
			continue
		}

		e := entries[0]
		issues = append(issues, Issue{
			Type:     IssueSingleUse,
			Severity: SeverityWarning,
			Line:     e.Position,
			Text:     e.Text,
			Message: fmt.Sprintf("placeholder %c is only used once and constrains nothing",
				id),
			Details: map[string]interface{}{"placeholder": string(id)},
		})
	}

	sort.SliceStable(issues, func(a, b int) bool {
		return issues[a].Line < issues[b].Line
	})

	return issues
}

func checkSegments(e pattern.Entry) []Issue {
	segments := strings.Split(e.Mnemonic, isa.Separator)
	for i, s := range segments {
		if s != "" {
			continue
		}

		return []Issue{{
			Type:     IssueEmptySegment,
			Severity: SeverityWarning,
			Line:     e.Position,
			Text:     e.Text,
			Message:  fmt.Sprintf("%s has an empty segment", e.Mnemonic),
			Details:  map[string]interface{}{"segment": i},
		}}
	}

	return nil
}

func checkCall(e pattern.Entry) []Issue {
	if !target.Applies(e.Mnemonic) {
		return nil
	}

	if !e.HasArgument() {
		return []Issue{{
			Type:     IssueNoTarget,
			Severity: SeverityWarning,
			Line:     e.Position,
			Text:     e.Text,
			Message:  fmt.Sprintf("%s without a target matches any callee", e.Mnemonic),
		}}
	}

	_, err := target.Build(e.Argument)
	if err == nil {
		return nil
	}

	return []Issue{{
		Type:     IssueWildcard,
		Severity: SeverityError,
		Line:     e.Position,
		Text:     e.Text,
		Message:  err.Error(),
		Details: map[string]interface{}{
			"wildcards": strings.Count(e.Argument, target.Wildcard),
		},
	}}
}
