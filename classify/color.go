package classify

import (
	"strings"

	"github.com/ivanyeors/solar-design-system/token"
)

// semanticColorKeywords are checked before hue membership; order is part of
// the contract.
var semanticColorKeywords = []string{
	"error", "warning", "success", "info", "primary", "secondary", "tertiary",
	"brand", "accent", "danger", "alert", "notification",
}

// huePalette is the fixed list of named hues recognized as palette colors.
var huePalette = []string{
	"red", "blue", "green", "yellow", "purple", "orange", "pink", "teal",
	"indigo", "cyan", "amber", "lime", "emerald", "violet", "fuchsia", "sky",
	"turquoise", "cobalt", "brick", "marmalade", "jade", "merigold", "grape",
	"lemon", "cerulean", "lavender", "stone", "crimson", "sea", "rose",
}

// classifyColor buckets an option color token. Rules run in a fixed order:
// deprecated marker, dark-theme marker, brand ownership, semantic keyword,
// neutral marker, hue palette membership, then "other".
func classifyColor(tok *token.Token) Result {
	path := lowerPath(tok.Path)
	res := Result{Kind: KindColor, SortKey: numericSortKey(tok.Name())}

	if strings.Contains(path, "depr") {
		res.Excluded = true
		res.Category = "deprecated"
		return res
	}
	if strings.Contains(path, "dark") {
		res.Dark = true
	}
	if brand := brandOwner(path); brand != "" {
		res.Brand = brand
		res.Category = "brand"
		return res
	}
	for _, keyword := range semanticColorKeywords {
		if strings.Contains(path, keyword) {
			res.Category = "semantic"
			res.Subcategory = keyword
			return res
		}
	}
	if strings.Contains(path, "neutral") {
		res.Category = "neutral"
		return res
	}
	for _, hue := range huePalette {
		if strings.Contains(path, hue) {
			res.Category = "palette"
			res.Subcategory = hue
			return res
		}
	}
	res.Category = "other"
	return res
}

// brandOwner returns the owning brand key for brand-scoped color paths.
func brandOwner(path string) string {
	switch {
	case strings.Contains(path, "bruhealth"):
		return "bruhealth"
	case strings.Contains(path, "evyd"):
		return "evydcore"
	case strings.Contains(path, "brand"):
		return "common"
	default:
		return ""
	}
}
