package classify_test

import (
	"testing"

	"github.com/ivanyeors/solar-design-system/classify"
	"github.com/ivanyeors/solar-design-system/token"
)

func colorToken(path ...string) *token.Token {
	return &token.Token{Path: path, Type: token.TypeColor, RawValue: "#000000"}
}

func TestClassifyColor_RuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		tok      *token.Token
		category string
		sub      string
	}{
		{"semantic keyword", colorToken("color", "light", "error", "500"), "semantic", "error"},
		{"neutral", colorToken("color", "light", "neutral", "25"), "neutral", ""},
		{"palette hue", colorToken("color", "light", "cerulean", "500-main"), "palette", "cerulean"},
		{"uncategorized", colorToken("color", "light", "mystery", "500"), "other", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := classify.Classify(tt.tok)
			if res.Category != tt.category {
				t.Errorf("expected category %q, got %q", tt.category, res.Category)
			}
			if res.Subcategory != tt.sub {
				t.Errorf("expected subcategory %q, got %q", tt.sub, res.Subcategory)
			}
		})
	}
}

func TestClassifyColor_DeprecatedExcluded(t *testing.T) {
	res := classify.Classify(colorToken("color", "light", "neutral-depr", "25"))
	if !res.Excluded {
		t.Error("expected deprecated token to be excluded")
	}
}

func TestClassifyColor_DarkTheme(t *testing.T) {
	res := classify.Classify(colorToken("color", "dark", "cerulean", "500"))
	if !res.Dark {
		t.Error("expected dark theme marker")
	}
	if res.Category != "palette" {
		t.Errorf("expected palette category, got %q", res.Category)
	}
}

func TestClassifyColor_BrandDeferred(t *testing.T) {
	res := classify.Classify(colorToken("color", "light", "bruhealth-accent", "500"))
	if res.Category != "brand" {
		t.Errorf("expected brand category, got %q", res.Category)
	}
	if res.Brand != "bruhealth" {
		t.Errorf("expected bruhealth owner, got %q", res.Brand)
	}
}

func scaleToken(typ token.Type, path ...string) *token.Token {
	return &token.Token{Path: path, Type: typ, RawValue: "8px"}
}

func TestClassifyScale_GroupOrder(t *testing.T) {
	tests := []struct {
		name     string
		tok      *token.Token
		category string
		sub      string
	}{
		{"padding is inset spacing", scaleToken(token.TypeSpacing, "scale", "padding-md"), "spacing", "inset"},
		{"gap", scaleToken(token.TypeSpacing, "scale", "gap-lg"), "spacing", "gap"},
		{"numbered series forces standard", scaleToken(token.TypeSpacing, "scale", "spacing-4"), "spacing", "standard"},
		{"width sizing", scaleToken(token.TypeDimension, "scale", "width-sm"), "sizing", "width"},
		{"radius", scaleToken(token.TypeRadius, "radius-pill"), "radius", ""},
		{"border width", scaleToken(token.TypeDimension, "border-thickness-2"), "borders", ""},
		{"z-index", scaleToken(token.TypeDimension, "zindex-modal"), "elevation", ""},
		{"uncategorized", scaleToken(token.TypeOther, "mystery-value"), "other", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := classify.Classify(tt.tok)
			if res.Category != tt.category {
				t.Errorf("expected category %q, got %q", tt.category, res.Category)
			}
			if res.Subcategory != tt.sub {
				t.Errorf("expected subcategory %q, got %q", tt.sub, res.Subcategory)
			}
		})
	}
}

func TestClassifyScale_SpacingBeatsSizingOnTie(t *testing.T) {
	// "spacing-size-4" matches both groups; declaration order wins.
	res := classify.Classify(scaleToken(token.TypeSpacing, "scale", "spacing-size-4"))
	if res.Category != "spacing" {
		t.Errorf("expected spacing, got %q", res.Category)
	}
}

func TestClassifyScale_SortKeyNeverChangesCategory(t *testing.T) {
	a := classify.Classify(scaleToken(token.TypeSpacing, "scale", "gap-xs"))
	b := classify.Classify(scaleToken(token.TypeSpacing, "scale", "gap-2xl"))
	if a.Category != b.Category || a.Subcategory != b.Subcategory {
		t.Error("size suffix changed the category")
	}
	if a.SortKey >= b.SortKey {
		t.Errorf("expected xs (%d) to sort before 2xl (%d)", a.SortKey, b.SortKey)
	}
}

func fontToken(typ token.Type, path ...string) *token.Token {
	return &token.Token{Path: path, Type: typ, RawValue: "16px"}
}

func TestClassifyFont_Categories(t *testing.T) {
	tests := []struct {
		name     string
		tok      *token.Token
		category string
	}{
		{"family", fontToken(token.TypeFontFamily, "font", "family-primary"), "family"},
		{"weight", fontToken(token.TypeFontWeight, "font", "weight-semibold"), "weight"},
		{"size", fontToken(token.TypeFontSize, "font", "size-16"), "size"},
		{"line height", fontToken(token.TypeLineHeight, "font", "line-height-tight"), "line-height"},
		{"letter spacing", fontToken(token.TypeLetterSpacing, "font", "letter-spacing-wide"), "letter-spacing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if res := classify.Classify(tt.tok); res.Category != tt.category {
				t.Errorf("expected %q, got %q", tt.category, res.Category)
			}
		})
	}
}

func TestClassifyFont_SystemBeatsSize(t *testing.T) {
	// heading-32 carries both a system keyword and a numeric size pattern.
	res := classify.Classify(fontToken(token.TypeFontSize, "font", "heading-32"))
	if res.Category != "system" {
		t.Errorf("expected system category, got %q", res.Category)
	}
}

func TestClassifyFont_WeightSortOrder(t *testing.T) {
	light := classify.Classify(fontToken(token.TypeFontWeight, "font", "weight-light"))
	bold := classify.Classify(fontToken(token.TypeFontWeight, "font", "weight-bold"))
	if light.SortKey >= bold.SortKey {
		t.Errorf("expected light (%d) before bold (%d)", light.SortKey, bold.SortKey)
	}
}

func semanticToken(path ...string) *token.Token {
	return &token.Token{Path: path, Type: token.TypeColor, RawValue: "#000000"}
}

func TestClassifySemantic_ComponentVocabulary(t *testing.T) {
	res := classify.Classify(semanticToken("brands", "evydCore", "color", "text", "button-primary"))
	if res.Component != "button" {
		t.Errorf("expected button component, got %q", res.Component)
	}
	if res.Variant != "primary" {
		t.Errorf("expected primary variant, got %q", res.Variant)
	}
}

func TestClassifySemantic_StateSuffixImpliesComponent(t *testing.T) {
	res := classify.Classify(semanticToken("comp", "fab", "bg-hover"))
	if res.Component != "fab" {
		t.Errorf("expected fab component from state suffix, got %q", res.Component)
	}
	if res.State != "hover" {
		t.Errorf("expected hover state, got %q", res.State)
	}
}

func TestClassifySemantic_ElementIndicator(t *testing.T) {
	res := classify.Classify(semanticToken("comp", "hero", "title"))
	if res.Component != "hero" {
		t.Errorf("expected hero component from element indicator, got %q", res.Component)
	}
}

func TestClassifySemantic_SystemGroupFallback(t *testing.T) {
	tests := []struct {
		name  string
		tok   *token.Token
		group string
	}{
		{"surface", semanticToken("comp", "global", "bg"), "surface"},
		{"feedback", semanticToken("comp", "global", "warning-tint"), "feedback"},
		{"elevation", semanticToken("comp", "global", "shadow-2"), "elevation"},
		{"other", semanticToken("comp", "global", "misc"), "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := classify.Classify(tt.tok)
			if res.Component != "" {
				t.Fatalf("expected no component, got %q", res.Component)
			}
			if res.SystemGroup != tt.group {
				t.Errorf("expected group %q, got %q", tt.group, res.SystemGroup)
			}
		})
	}
}

func TestClassifySemantic_DescriptionEvidence(t *testing.T) {
	tok := semanticToken("comp", "global", "misc")
	tok.Description = "Container background for page surfaces"
	res := classify.Classify(tok)
	if res.SystemGroup != "surface" {
		t.Errorf("expected surface from description, got %q", res.SystemGroup)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	tok := semanticToken("brands", "evydCore", "color", "text", "button-primary")
	first := classify.Classify(tok)
	for i := 0; i < 10; i++ {
		if got := classify.Classify(tok); got != first {
			t.Fatalf("classification changed between runs: %+v vs %+v", first, got)
		}
	}
}
