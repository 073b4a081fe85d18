package emit

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"github.com/ivanyeors/solar-design-system/classify"
)

// SortColors orders color records lightest to darkest within each category,
// using perceptual lightness. Records whose values do not parse as CSS
// colors (unresolved placeholders, references to other variables) keep their
// relative order at the end of their category.
func SortColors(records []classify.OutputRecord) []classify.OutputRecord {
	out := make([]classify.OutputRecord, len(records))
	copy(out, records)

	// Sort each contiguous category segment on its own so category order is
	// untouched.
	for start := 0; start < len(out); {
		end := start + 1
		for end < len(out) && out[end].Category == out[start].Category {
			end++
		}
		segment := out[start:end]
		sort.SliceStable(segment, func(a, b int) bool {
			la, oka := lightness(segment[a].Value)
			lb, okb := lightness(segment[b].Value)
			if oka && okb {
				return la > lb
			}
			return oka && !okb
		})
		start = end
	}
	return out
}

// lightness parses a CSS color and returns its L* component.
func lightness(value string) (float64, bool) {
	parsed, err := csscolorparser.Parse(value)
	if err != nil {
		return 0, false
	}
	c := colorful.Color{R: parsed.R, G: parsed.G, B: parsed.B}
	l, _, _ := c.Lab()
	return l, true
}
