package classify

import (
	"regexp"
	"strings"

	"github.com/ivanyeors/solar-design-system/token"
)

// fontSystemPattern recognizes composite typography roles. A system match
// beats a generic size or weight match, so "heading-32" classifies as system
// rather than size.
var fontSystemPattern = regexp.MustCompile(`(?i)heading|body|caption|label|display|title|overline|text-[lmsx]`)

var fontGroups = []scaleGroup{
	{"family", regexp.MustCompile(`(?i)family|font-family|typeface|font$`)},
	{"weight", regexp.MustCompile(`(?i)weight|font-weight|bold|black|light|medium|regular|thin`)},
	{"size", regexp.MustCompile(`(?i)size|font-size|text-size|fontsize`)},
	{"line-height", regexp.MustCompile(`(?i)line-height|lineheight|leading`)},
	{"letter-spacing", regexp.MustCompile(`(?i)letter-spacing|letterspacing|tracking|character-spacing`)},
	{"paragraph-spacing", regexp.MustCompile(`(?i)paragraph-spacing|paragraphspacing`)},
	{"paragraph-indent", regexp.MustCompile(`(?i)paragraph-indent|paragraphindent|indent`)},
	{"style", regexp.MustCompile(`(?i)style|font-style|italic|oblique|normal`)},
}

// fontWeightOrder sorts weight tokens lightest to heaviest. Italic variants
// sort just after their upright counterpart.
var fontWeightOrder = []struct {
	name  string
	order int
}{
	{"thin", 10},
	{"extralight", 20},
	{"light", 30},
	{"regular", 40},
	{"medium", 50},
	{"semibold", 60},
	{"bold", 70},
	{"extrabold", 80},
	{"black", 90},
}

// classifyFont buckets a typography token.
func classifyFont(tok *token.Token) Result {
	path := lowerPath(tok.Path)
	res := Result{Kind: KindFont}

	if strings.Contains(path, "-depr") {
		res.Excluded = true
		res.Category = "deprecated"
		return res
	}

	if fontSystemPattern.MatchString(path) {
		res.Category = "system"
		res.SortKey = defaultSortKey
		return res
	}
	for _, group := range fontGroups {
		if group.pattern.MatchString(path) {
			res.Category = group.category
			res.SortKey = fontSortKey(tok.Name(), group.category)
			return res
		}
	}
	res.Category = "other"
	res.SortKey = defaultSortKey
	return res
}

// fontSortKey orders size tokens numerically and weight tokens by the named
// weight scale. Other categories sort alphabetically downstream.
func fontSortKey(name, category string) int {
	lower := strings.ToLower(name)
	switch category {
	case "size":
		if key := numericSortKey(lower); key != defaultSortKey {
			return key
		}
		for _, size := range sizeNames {
			if strings.Contains(lower, size.name) {
				return size.order
			}
		}
	case "weight":
		for _, weight := range fontWeightOrder {
			if strings.Contains(lower, weight.name) {
				if strings.Contains(lower, "italic") {
					return weight.order + 5
				}
				return weight.order
			}
		}
	}
	return defaultSortKey
}
