// Package report compares two extraction runs and renders the differences as
// a change report.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ivanyeors/solar-design-system/cache"
)

// detailLimit caps how many tokens each section lists before eliding.
const detailLimit = 10

// Item is one added or removed token.
type Item struct {
	Path  string
	Value string
	Type  string
}

// Change is one token whose value differs between runs.
type Change struct {
	Path     string
	OldValue string
	NewValue string
}

// Report describes what changed between the previous and current runs.
type Report struct {
	// HasPrevious is false when no earlier run was recorded; the renderers
	// then produce a short notice instead of a diff.
	HasPrevious bool

	PreviousRun   time.Time
	PreviousCount int
	CurrentCount  int

	Added    []Item
	Removed  []Item
	Modified []Change

	// TypeCounts summarizes the current run by token type.
	TypeCounts map[string]int
}

// Diff builds a report from the previous run's info and snapshot against the
// current snapshot. A nil previous snapshot still yields count totals when
// info carries them.
func Diff(info cache.Info, ok bool, previous, current cache.Snapshot) Report {
	r := Report{
		HasPrevious:   ok,
		PreviousRun:   info.LastRun,
		PreviousCount: info.TokenCount,
		CurrentCount:  len(current),
		TypeCounts:    make(map[string]int),
	}
	for _, entry := range current {
		r.TypeCounts[entry.Type]++
	}
	if !ok {
		return r
	}

	paths := make([]string, 0, len(current))
	for path := range current {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		entry := current[path]
		prev, existed := previous[path]
		switch {
		case !existed:
			r.Added = append(r.Added, Item{Path: path, Value: entry.Value, Type: entry.Type})
		case prev.Value != entry.Value:
			r.Modified = append(r.Modified, Change{Path: path, OldValue: prev.Value, NewValue: entry.Value})
		}
	}

	removed := make([]string, 0)
	for path := range previous {
		if _, exists := current[path]; !exists {
			removed = append(removed, path)
		}
	}
	sort.Strings(removed)
	for _, path := range removed {
		entry := previous[path]
		r.Removed = append(r.Removed, Item{Path: path, Value: entry.Value, Type: entry.Type})
	}
	return r
}

// Render produces the report in the named format, "text" or "markdown".
func (r Report) Render(format string) (string, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return r.Text(), nil
	case "markdown", "md":
		return r.Markdown(), nil
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
}

// Text renders the report as plain text.
func (r Report) Text() string {
	if !r.HasPrevious {
		return "No previous token extraction data available for comparison."
	}

	var b strings.Builder
	b.WriteString("Token Change Report\n")
	b.WriteString("==================\n")
	fmt.Fprintf(&b, "Previous extraction: %s\n", r.previousRunLabel())
	fmt.Fprintf(&b, "Previous token count: %d\n", r.PreviousCount)
	fmt.Fprintf(&b, "Current token count: %d\n", r.CurrentCount)
	b.WriteString(r.countLine("") + "\n")
	r.writeDetails(&b)
	return b.String()
}

// Markdown renders the report as a markdown document.
func (r Report) Markdown() string {
	if !r.HasPrevious {
		return "# Token Change Report\n\nNo previous token extraction data available for comparison."
	}

	var b strings.Builder
	b.WriteString("# Token Change Report\n\n")
	fmt.Fprintf(&b, "**Previous extraction:** %s\n", r.previousRunLabel())
	fmt.Fprintf(&b, "**Previous token count:** %d\n", r.PreviousCount)
	fmt.Fprintf(&b, "**Current token count:** %d\n\n", r.CurrentCount)
	b.WriteString(r.countLine("**") + "\n")
	r.writeDetails(&b)
	return b.String()
}

func (r Report) previousRunLabel() string {
	if r.PreviousRun.IsZero() {
		return "unknown"
	}
	return r.PreviousRun.Format(time.RFC3339)
}

func (r Report) countLine(marker string) string {
	diff := r.CurrentCount - r.PreviousCount
	switch {
	case diff > 0:
		return fmt.Sprintf("%sAdded %d new tokens%s", marker, diff, marker)
	case diff < 0:
		return fmt.Sprintf("%sRemoved %d tokens%s", marker, -diff, marker)
	default:
		return marker + "Token count unchanged" + marker
	}
}

func (r Report) writeDetails(b *strings.Builder) {
	if len(r.Added) > 0 {
		b.WriteString("\nAdded Tokens:\n------------\n")
		for i, item := range r.Added {
			if i == detailLimit {
				fmt.Fprintf(b, "... and %d more\n", len(r.Added)-detailLimit)
				break
			}
			fmt.Fprintf(b, "- %s: %s (%s)\n", item.Path, item.Value, item.Type)
		}
	}
	if len(r.Removed) > 0 {
		b.WriteString("\nRemoved Tokens:\n--------------\n")
		for i, item := range r.Removed {
			if i == detailLimit {
				fmt.Fprintf(b, "... and %d more\n", len(r.Removed)-detailLimit)
				break
			}
			fmt.Fprintf(b, "- %s: %s (%s)\n", item.Path, item.Value, item.Type)
		}
	}
	if len(r.Modified) > 0 {
		b.WriteString("\nModified Tokens:\n---------------\n")
		for i, change := range r.Modified {
			if i == detailLimit {
				fmt.Fprintf(b, "... and %d more\n", len(r.Modified)-detailLimit)
				break
			}
			fmt.Fprintf(b, "- %s: %s -> %s\n", change.Path, change.OldValue, change.NewValue)
		}
	}

	if len(r.TypeCounts) > 0 {
		b.WriteString("\nToken Type Summary:\n-----------------\n")
		types := make([]string, 0, len(r.TypeCounts))
		for t := range r.TypeCounts {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Fprintf(b, "- %s: %d tokens\n", t, r.TypeCounts[t])
		}
	}
}
