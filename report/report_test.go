package report_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanyeors/solar-design-system/cache"
	"github.com/ivanyeors/solar-design-system/report"
)

func TestDiff_NoPreviousRun(t *testing.T) {
	current := cache.Snapshot{
		"light:color.cerulean.500": {Value: "#2D9CDB", Type: "color"},
	}

	r := report.Diff(cache.Info{}, false, nil, current)
	assert.False(t, r.HasPrevious)
	assert.Equal(t, 1, r.CurrentCount)

	assert.Equal(t, "No previous token extraction data available for comparison.", r.Text())
	assert.Contains(t, r.Markdown(), "# Token Change Report")
}

func TestDiff_AddedRemovedModified(t *testing.T) {
	previous := cache.Snapshot{
		"light:color.cerulean.500": {Value: "#2D9CDB", Type: "color"},
		"light:base.radius.card":   {Value: "8px", Type: "radius"},
	}
	current := cache.Snapshot{
		"light:color.cerulean.500": {Value: "#1C8CCB", Type: "color"},
		"light:base.gap.list":      {Value: "16px", Type: "spacing"},
	}
	info := cache.Info{
		LastRun:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TokenCount: 2,
	}

	r := report.Diff(info, true, previous, current)
	require.True(t, r.HasPrevious)

	require.Len(t, r.Added, 1)
	assert.Equal(t, report.Item{Path: "light:base.gap.list", Value: "16px", Type: "spacing"}, r.Added[0])

	require.Len(t, r.Removed, 1)
	assert.Equal(t, "light:base.radius.card", r.Removed[0].Path)

	require.Len(t, r.Modified, 1)
	assert.Equal(t, report.Change{
		Path:     "light:color.cerulean.500",
		OldValue: "#2D9CDB",
		NewValue: "#1C8CCB",
	}, r.Modified[0])

	assert.Equal(t, map[string]int{"color": 1, "spacing": 1}, r.TypeCounts)
}

func TestText(t *testing.T) {
	previous := cache.Snapshot{
		"light:base.radius.card": {Value: "8px", Type: "radius"},
	}
	current := cache.Snapshot{
		"light:base.radius.card": {Value: "12px", Type: "radius"},
		"light:base.gap.list":    {Value: "16px", Type: "spacing"},
	}
	info := cache.Info{
		LastRun:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TokenCount: 1,
	}

	out := report.Diff(info, true, previous, current).Text()

	assert.Contains(t, out, "Token Change Report")
	assert.Contains(t, out, "Previous extraction: 2025-06-01T12:00:00Z")
	assert.Contains(t, out, "Previous token count: 1")
	assert.Contains(t, out, "Current token count: 2")
	assert.Contains(t, out, "Added 1 new tokens")
	assert.Contains(t, out, "- light:base.gap.list: 16px (spacing)")
	assert.Contains(t, out, "- light:base.radius.card: 8px -> 12px")
	assert.Contains(t, out, "- radius: 1 tokens")
}

func TestMarkdown(t *testing.T) {
	info := cache.Info{TokenCount: 3}
	current := cache.Snapshot{
		"light:a": {Value: "1", Type: "dimension"},
		"light:b": {Value: "2", Type: "dimension"},
	}

	out := report.Diff(info, true, cache.Snapshot{}, current).Markdown()

	assert.True(t, strings.HasPrefix(out, "# Token Change Report"))
	assert.Contains(t, out, "**Previous extraction:** unknown")
	assert.Contains(t, out, "**Removed 1 tokens**")
}

func TestDetailLimitElides(t *testing.T) {
	current := make(cache.Snapshot)
	for i := 0; i < 15; i++ {
		current[fmt.Sprintf("light:scale.spacing.size-%02d", i)] = cache.Entry{Value: "4px", Type: "spacing"}
	}

	out := report.Diff(cache.Info{}, true, cache.Snapshot{}, current).Text()
	assert.Contains(t, out, "... and 5 more")
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := report.Report{}.Render("xml")
	require.Error(t, err)

	text, err := report.Report{HasPrevious: true}.Render("")
	require.NoError(t, err)
	assert.Contains(t, text, "Token Change Report")
}
