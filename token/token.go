// Package token provides the design token types and the per-run token table.
package token

import "strings"

// Type classifies a token's value domain.
type Type string

const (
	TypeColor         Type = "color"
	TypeDimension     Type = "dimension"
	TypeFontFamily    Type = "fontFamily"
	TypeFontWeight    Type = "fontWeight"
	TypeFontSize      Type = "fontSize"
	TypeLineHeight    Type = "lineHeight"
	TypeLetterSpacing Type = "letterSpacing"
	TypeSpacing       Type = "spacing"
	TypeRadius        Type = "radius"
	TypeOther         Type = "other"
)

// ParseType maps the loosely-typed source annotations (Token Studio uses
// "borderRadius", "sizing", "text-color" and friends) onto the closed Type set.
func ParseType(s string) Type {
	switch strings.TrimSpace(s) {
	case "color", "border", "background", "text-color":
		return TypeColor
	case "dimension", "number", "size", "sizing":
		return TypeDimension
	case "fontFamily", "fontFamilies":
		return TypeFontFamily
	case "fontWeight", "fontWeights":
		return TypeFontWeight
	case "fontSize", "fontSizes":
		return TypeFontSize
	case "lineHeight", "lineHeights":
		return TypeLineHeight
	case "letterSpacing":
		return TypeLetterSpacing
	case "spacing", "space", "gap", "padding", "margin":
		return TypeSpacing
	case "radius", "borderRadius":
		return TypeRadius
	default:
		return TypeOther
	}
}

// State tracks a token's progress through the fixed-point pass engine.
type State int

const (
	// Unvisited means resolution has not yet touched this token.
	Unvisited State = iota

	// PartiallyResolved means at least one placeholder is still outstanding.
	// The partially-substituted value is kept so later passes only re-resolve
	// the remaining placeholders.
	PartiallyResolved

	// Resolved means the value contains no placeholders.
	Resolved

	// FallbackCommitted is terminal: the pass budget ran out and the current
	// value (possibly still containing placeholder syntax) was committed.
	FallbackCommitted
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case PartiallyResolved:
		return "partially-resolved"
	case Resolved:
		return "resolved"
	case FallbackCommitted:
		return "fallback-committed"
	default:
		return "unknown"
	}
}

// Token is one design token: a dotted path mapped to a typed value.
//
// Path is immutable once created. RawValue is never mutated in place;
// resolution writes ResolvedValue so raw and resolved values stay
// distinguishable for diagnostics.
type Token struct {
	// Path is the dotted source path, split into segments.
	Path []string

	// Type is the token's value domain.
	Type Type

	// RawValue is the literal value or a string containing one or more
	// {reference.path} placeholders, possibly mixed with literal text.
	RawValue string

	// ResolvedValue is the value after reference resolution. Empty until the
	// pass engine has visited the token.
	ResolvedValue string

	// State is the resolution state.
	State State

	// Description is optional documentation, used only as classification
	// evidence.
	Description string
}

// DotPath returns the dot-joined source path.
func (t *Token) DotPath() string {
	return strings.Join(t.Path, ".")
}

// FlatKey returns the hyphen-joined path, the derived key used for
// color-namespace lookups (color.cerulean.500 -> color-cerulean-500).
func (t *Token) FlatKey() string {
	return strings.Join(t.Path, "-")
}

// Name returns the trailing path segment.
func (t *Token) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

// Value returns the resolved value when resolution has produced one, falling
// back to the raw value.
func (t *Token) Value() string {
	if t.State == Unvisited {
		return t.RawValue
	}
	return t.ResolvedValue
}

// HasPlaceholder reports whether the raw value contains a reference.
func (t *Token) HasPlaceholder() bool {
	return HasRef(t.RawValue)
}
