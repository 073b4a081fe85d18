// Package classify buckets resolved tokens into output categories using
// ordered, first-match pattern rules, and builds the collision-free output
// identifiers derived from them.
package classify

import (
	"strings"

	"github.com/ivanyeors/solar-design-system/token"
)

// Kind selects which rule group classified a token.
type Kind int

const (
	// KindColor covers option color tokens.
	KindColor Kind = iota

	// KindScale covers dimension, spacing and radius option tokens.
	KindScale

	// KindFont covers typography option tokens.
	KindFont

	// KindSemantic covers component and brand tokens.
	KindSemantic

	// KindOther is the explicit uncategorized bucket. Nothing is dropped.
	KindOther
)

// String returns the kind name used as an identifier prefix.
func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindScale:
		return "scale"
	case KindFont:
		return "font"
	case KindSemantic:
		return "component"
	default:
		return "other"
	}
}

// Result is the classification attached to one resolved token. It is used
// purely for output grouping and naming, never for resolution.
type Result struct {
	Kind        Kind
	Category    string
	Subcategory string

	// Component is the UI component name for semantic tokens, empty when the
	// token fell through to a system group instead.
	Component string

	// SystemGroup is one of the eight cross-cutting groups assigned to
	// semantic tokens without a component.
	SystemGroup string

	// State and Variant refine semantic token names (hover, primary, ...).
	State   string
	Variant string

	// Brand is set for brand-owned tokens, which are deferred to
	// brand-specific output.
	Brand string

	// SortKey orders tokens within a category. Size suffixes and numeric
	// values feed it; they never influence the category choice.
	SortKey int

	// Excluded marks deprecated tokens, which are dropped from output.
	Excluded bool

	// Dark marks dark-theme tokens, which are excluded from the light pass
	// and emitted into their own theme bucket.
	Dark bool
}

// Classify assigns a resolved token to exactly one category. It is a pure
// function of the token's path, value, type and description; the same token
// always yields the same result.
func Classify(tok *token.Token) Result {
	if isSemanticPath(tok.Path) {
		return classifySemantic(tok)
	}
	switch tok.Type {
	case token.TypeColor:
		return classifyColor(tok)
	case token.TypeDimension, token.TypeSpacing, token.TypeRadius:
		return classifyScale(tok)
	case token.TypeFontFamily, token.TypeFontWeight, token.TypeFontSize,
		token.TypeLineHeight, token.TypeLetterSpacing:
		return classifyFont(tok)
	default:
		return Result{Kind: KindOther, Category: "other", SortKey: defaultSortKey}
	}
}

// isSemanticPath reports whether the token lives in the component or brand
// tree, where the semantic rule group applies regardless of value type.
func isSemanticPath(path []string) bool {
	if len(path) == 0 {
		return false
	}
	switch strings.ToLower(path[0]) {
	case "comp", "component", "brands":
		return true
	}
	return false
}

// defaultSortKey places tokens without a recognizable size or numeric suffix
// at the end of their category.
const defaultSortKey = 1000

// lowerPath joins a path for case-insensitive keyword scans.
func lowerPath(path []string) string {
	return strings.ToLower(strings.Join(path, "."))
}
