package resolver

import "github.com/ivanyeors/solar-design-system/token"

// DefaultMaxPasses is the default full-sweep budget for ResolveAll.
const DefaultMaxPasses = 5

// Fallbacks is the per-type default table substituted when a reference cannot
// be resolved. The source scripts disagreed on some of these; this table is
// the single documented choice.
type Fallbacks struct {
	// Color is the neutral color substituted for missing color.* references.
	Color string

	// Radius is the default for missing base.radius.* references.
	Radius string

	// Padding is the default for missing base.padding.* references.
	Padding string

	// Gap is the default for missing base.gap.* references.
	Gap string

	// Margin is the default for missing base.margin.* references.
	Margin string

	// Spacing is the default for missing base.spacing.* references.
	Spacing string

	// Dimension is the generic default for other dimensional types.
	Dimension string
}

// DefaultFallbacks returns the documented fallback table.
func DefaultFallbacks() Fallbacks {
	return Fallbacks{
		Color:     "#CCCCCC",
		Radius:    "4px",
		Padding:   "4px",
		Gap:       "8px",
		Margin:    "8px",
		Spacing:   "8px",
		Dimension: "16px",
	}
}

// forProperty returns the default for a base.<property>.* reference.
func (f Fallbacks) forProperty(property string) string {
	switch property {
	case "radius":
		return f.Radius
	case "padding":
		return f.Padding
	case "gap":
		return f.Gap
	case "margin":
		return f.Margin
	case "spacing":
		return f.Spacing
	default:
		return f.Dimension
	}
}

// ForType returns the default committed for a token of the given type when a
// cycle forces a fallback.
func (f Fallbacks) ForType(t token.Type) string {
	switch t {
	case token.TypeColor:
		return f.Color
	case token.TypeRadius:
		return f.Radius
	case token.TypeSpacing:
		return f.Spacing
	default:
		return f.Dimension
	}
}

// radiusOrdinals maps the trailing size token of a base.radius.* reference to
// the percentage of the 16px base scale it derives from.
var radiusOrdinals = map[string]string{
	"size-1": "6",
	"size-2": "12",
	"size-3": "37",
	"size-4": "50",
	"size-5": "75",
	"size-6": "100",
	"size-7": "125",
	"size-8": "150",
	"size-9": "175",
	"pill":   "500",
	"none":   "0",
}

// spacingOrdinals is the larger ordinal range used by base.gap, base.padding,
// base.margin and base.spacing references. The source scale defines no
// size-13 or size-14.
var spacingOrdinals = map[string]string{
	"size-1":  "6",
	"size-2":  "12",
	"size-3":  "37",
	"size-4":  "50",
	"size-5":  "75",
	"size-6":  "100",
	"size-7":  "125",
	"size-8":  "150",
	"size-9":  "175",
	"size-10": "200",
	"size-11": "225",
	"size-12": "250",
	"size-15": "350",
	"size-16": "400",
	"none":    "0",
}

// derivedScaleKey builds the flat key of the 16px-scale token a percentage
// maps to, e.g. "50" -> "16px-scale-50percent".
func derivedScaleKey(pct string) string {
	return "16px-scale-" + pct + "percent"
}
