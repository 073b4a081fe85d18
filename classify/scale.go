package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ivanyeors/solar-design-system/token"
)

// scaleGroup pairs a category with its membership patterns. Declaration
// order breaks ties: the first matching group wins.
type scaleGroup struct {
	category string
	pattern  *regexp.Regexp
}

var scaleGroups = []scaleGroup{
	{"spacing", regexp.MustCompile(`(?i)spacing|space|gap|margin|padding|indent|inset`)},
	{"sizing", regexp.MustCompile(`(?i)size|width|height|scale|dimension`)},
	{"radius", regexp.MustCompile(`(?i)radius|corner|rounded|pill`)},
	{"borders", regexp.MustCompile(`(?i)border|stroke|outline|thickness`)},
	{"elevation", regexp.MustCompile(`(?i)elevation|z-?index|layer|level`)},
}

// Subcategory patterns, a second narrower pass within spacing and sizing.
var spacingSubgroups = []scaleGroup{
	{"inset", regexp.MustCompile(`(?i)padding|margin|inset`)},
	{"gap", regexp.MustCompile(`(?i)gap|grid|column|row|gutter`)},
	{"layout", regexp.MustCompile(`(?i)layout|container|section|panel`)},
}

var sizingSubgroups = []scaleGroup{
	{"width", regexp.MustCompile(`(?i)width|w-`)},
	{"height", regexp.MustCompile(`(?i)height|h-`)},
	{"font", regexp.MustCompile(`(?i)font|text|t-`)},
	{"component", regexp.MustCompile(`(?i)button|icon|avatar|input|card|component`)},
}

// standardSeries detects numbered spacing/sizing series, which always land
// in the standard subcategory regardless of other keyword hits.
var standardSeries = regexp.MustCompile(`(?i)(spacing|space|sizing|size)-\d+`)

// sizeNames orders named size suffixes for sorting. The values only feed
// SortKey, never the category choice.
var sizeNames = []struct {
	name  string
	order int
}{
	{"none", 0},
	{"2xs", 10},
	{"xs", 20},
	{"sm", 30},
	{"md", 40},
	{"lg", 50},
	{"xl", 60},
	{"2xl", 70},
	{"3xl", 80},
	{"4xl", 90},
	{"pill", 100},
}

var trailingNumbers = regexp.MustCompile(`\d+`)

// classifyScale buckets a dimension, spacing or radius token by ordered
// regex membership.
func classifyScale(tok *token.Token) Result {
	path := lowerPath(tok.Path)
	res := Result{Kind: KindScale, SortKey: scaleSortKey(tok.Name())}

	if strings.Contains(path, "depr") {
		res.Excluded = true
		res.Category = "deprecated"
		return res
	}

	for _, group := range scaleGroups {
		if !group.pattern.MatchString(path) {
			continue
		}
		res.Category = group.category
		switch group.category {
		case "spacing":
			res.Subcategory = subcategoryFor(path, spacingSubgroups)
		case "sizing":
			res.Subcategory = subcategoryFor(path, sizingSubgroups)
		}
		return res
	}
	res.Category = "other"
	return res
}

// subcategoryFor runs the narrower second pass. Numbered series force the
// standard bucket.
func subcategoryFor(path string, subgroups []scaleGroup) string {
	if standardSeries.MatchString(path) {
		return "standard"
	}
	for _, group := range subgroups {
		if group.pattern.MatchString(path) {
			return group.category
		}
	}
	return "standard"
}

// scaleSortKey orders tokens by named size suffix first, trailing numeric
// value second.
func scaleSortKey(name string) int {
	lower := strings.ToLower(name)
	for _, size := range sizeNames {
		if strings.Contains(lower, "-"+size.name) || lower == size.name {
			return size.order
		}
	}
	return numericSortKey(name)
}

// numericSortKey extracts the last number in a name for ordering, falling
// back to the end of the category.
func numericSortKey(name string) int {
	matches := trailingNumbers.FindAllString(name, -1)
	if len(matches) == 0 {
		return defaultSortKey
	}
	n, err := strconv.Atoi(matches[len(matches)-1])
	if err != nil {
		return defaultSortKey
	}
	return n
}
