package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ivanyeors/solar-design-system/token"
)

var (
	invalidChars    = regexp.MustCompile(`[^a-z0-9\-]`)
	repeatedHyphens = regexp.MustCompile(`-{2,}`)
)

// Clean lowercases a name fragment, converts spaces to hyphens, strips
// everything outside [a-z0-9-] and collapses hyphen runs.
func Clean(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = invalidChars.ReplaceAllString(s, "")
	s = repeatedHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Normalizer builds hyphenated output identifiers and keeps them unique
// within one output namespace. The collision counter is the only state the
// classification stage carries; it is scoped to a single run.
type Normalizer struct {
	seen map[string]int
}

// NewNormalizer creates an empty naming namespace.
func NewNormalizer() *Normalizer {
	return &Normalizer{seen: make(map[string]int)}
}

// Identifier derives the output name for a classified token and makes it
// unique. The first token to claim a name keeps it unsuffixed; later
// collisions get -1, -2, ... appended. Deterministic for a stable input
// order.
func (n *Normalizer) Identifier(tok *token.Token, res Result) string {
	return n.unique(baseIdentifier(tok, res))
}

func (n *Normalizer) unique(name string) string {
	count, exists := n.seen[name]
	if !exists {
		n.seen[name] = 0
		return name
	}
	for {
		count++
		n.seen[name] = count
		candidate := fmt.Sprintf("%s-%d", name, count)
		if _, taken := n.seen[candidate]; !taken {
			n.seen[candidate] = 0
			return candidate
		}
	}
}

// baseIdentifier assembles the naive, pre-collision name from category,
// subcategory, component and the cleaned trailing path segment.
func baseIdentifier(tok *token.Token, res Result) string {
	name := Clean(tok.Name())

	switch res.Kind {
	case KindColor:
		return colorIdentifier(name, res)
	case KindScale:
		if res.Subcategory != "" && res.Subcategory != "standard" {
			return joinParts("scale", res.Category, res.Subcategory, name)
		}
		return joinParts("scale", res.Category, name)
	case KindFont:
		return joinParts("font", res.Category, name)
	case KindSemantic:
		return semanticIdentifier(name, res)
	default:
		return joinParts("other", name)
	}
}

func colorIdentifier(name string, res Result) string {
	switch res.Category {
	case "brand":
		return joinParts("color", res.Brand, name)
	case "neutral":
		// White/black markers belong in descriptions, not variable names.
		name = strings.ReplaceAll(name, "-white", "")
		name = strings.ReplaceAll(name, "-black", "")
		return joinParts("color", "neutral", name)
	case "palette":
		return joinParts("color", res.Subcategory, name)
	default:
		return joinParts("color", name)
	}
}

// semanticIdentifier follows the component-property-variant-state pattern.
func semanticIdentifier(name string, res Result) string {
	if res.Component == "" {
		return joinParts("system", res.SystemGroup, name)
	}
	parts := []string{"component", Clean(res.Component)}
	if res.Subcategory != "" && res.Subcategory != "base" {
		parts = append(parts, res.Subcategory)
	}
	if res.Variant != "" {
		parts = append(parts, res.Variant)
	}
	if res.State != "" {
		parts = append(parts, res.State)
	}
	return joinParts(parts...)
}

// joinParts hyphen-joins the non-empty parts and squashes a segment that
// repeats the one before it, so "button-button-hover" becomes "button-hover".
func joinParts(parts ...string) string {
	joined := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		joined = append(joined, part)
	}
	name := repeatedHyphens.ReplaceAllString(strings.Join(joined, "-"), "-")

	segments := strings.Split(name, "-")
	deduped := segments[:0]
	for _, seg := range segments {
		if len(deduped) > 0 && deduped[len(deduped)-1] == seg {
			continue
		}
		deduped = append(deduped, seg)
	}
	return strings.Join(deduped, "-")
}
