package parser_test

import (
	"errors"
	"testing"

	"github.com/ivanyeors/solar-design-system/parser"
	"github.com/ivanyeors/solar-design-system/schema"
	"github.com/ivanyeors/solar-design-system/token"
)

const studioDoc = `{
	// Token Studio export
	"color/Light": {
		"color": {
			"cerulean": {
				"500-main": {"value": "#2D9CDB", "type": "color", "description": "Primary action color"}
			}
		}
	},
	"scale/option-token": {
		"16px-scale-50percent": {"value": "8px", "type": "dimension"}
	},
	"$metadata": {
		"tokenSetOrder": ["color/Light"]
	}
}`

func TestParse_FlattensLeaves(t *testing.T) {
	doc, err := parser.NewParser().Parse([]byte(studioDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(doc.Sets))
	}
	// Sets are sorted by name for determinism.
	colors := doc.Sets[0]
	if colors.Name != "color/Light" {
		t.Fatalf("expected color/Light first, got %q", colors.Name)
	}
	if len(colors.Tokens) != 1 {
		t.Fatalf("expected 1 color token, got %d", len(colors.Tokens))
	}

	tok := colors.Tokens[0]
	if tok.DotPath() != "color.cerulean.500-main" {
		t.Errorf("expected color.cerulean.500-main, got %q", tok.DotPath())
	}
	if tok.Type != token.TypeColor {
		t.Errorf("expected color type, got %v", tok.Type)
	}
	if tok.RawValue != "#2D9CDB" {
		t.Errorf("expected #2D9CDB, got %q", tok.RawValue)
	}
	if tok.Description != "Primary action color" {
		t.Errorf("expected description preserved, got %q", tok.Description)
	}
}

func TestParse_MetadataKeysSkipped(t *testing.T) {
	doc, err := parser.NewParser().Parse([]byte(studioDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, set := range doc.Sets {
		if set.Name == "$metadata" {
			t.Error("expected $metadata set to be skipped")
		}
	}
}

func TestParse_MalformedLeafReported(t *testing.T) {
	doc, err := parser.NewParser().Parse([]byte(`{
		"scale/option-token": {
			"good": {"value": "8px", "type": "dimension"},
			"no-type": {"value": "8px"}
		}
	}`))
	if err != nil {
		t.Fatalf("expected malformed leaf to be non-fatal, got %v", err)
	}

	if len(doc.Malformed) != 1 {
		t.Fatalf("expected 1 malformed entry, got %d", len(doc.Malformed))
	}
	if doc.Malformed[0].Path != "scale/option-token.no-type" {
		t.Errorf("unexpected malformed path %q", doc.Malformed[0].Path)
	}
	if len(doc.Sets[0].Tokens) != 1 {
		t.Errorf("expected malformed entry excluded from tokens")
	}
}

func TestParse_MalformedEntriesWrapSentinel(t *testing.T) {
	doc, err := parser.NewParser().Parse([]byte(`{
		"scale/option-token": {
			"no-type": {"value": "8px"}
		}
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Malformed) != 1 {
		t.Fatalf("expected 1 malformed entry, got %d", len(doc.Malformed))
	}
	if !errors.Is(doc.Malformed[0], schema.ErrMalformedToken) {
		t.Errorf("expected ErrMalformedToken, got %v", doc.Malformed[0])
	}
}

func TestParse_StructuralErrorIsFatal(t *testing.T) {
	_, err := parser.NewParser().Parse([]byte(`"just a string with value and type words"`))
	if err == nil {
		t.Fatal("expected an error for non-mapping input")
	}
}

func TestParse_NumericValuesStringified(t *testing.T) {
	doc, err := parser.NewParser().Parse([]byte(`{
		"font/option-token": {
			"weight-bold": {"value": 700, "type": "fontWeights"}
		}
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Sets[0].Tokens[0].RawValue; got != "700" {
		t.Errorf("expected 700, got %q", got)
	}
}

func TestParse_DTCGDialect(t *testing.T) {
	doc, err := parser.NewParser().Parse([]byte(`{
		"color/Light": {
			"accent": {"$value": "#FF6B35", "$type": "color", "$description": "accent"}
		}
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok := doc.Sets[0].Tokens[0]
	if tok.RawValue != "#FF6B35" || tok.Type != token.TypeColor {
		t.Errorf("unexpected token %+v", tok)
	}
	if tok.Description != "accent" {
		t.Errorf("expected $description preserved, got %q", tok.Description)
	}
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := parser.NewParser().Parse([]byte(`{"nothing": {"here": true}}`))
	if !errors.Is(err, schema.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestSetScope(t *testing.T) {
	tests := []struct {
		name   string
		scope  token.Scope
		prefix string
	}{
		{"color/Light", token.Scope{Theme: "light"}, "color.light"},
		{"color/Dark", token.Scope{Theme: "dark"}, "color.dark"},
		{"brands/EVYDCore", token.Scope{Brand: "EVYDCore"}, "brands.EVYDCore"},
		{"scale/option-token", token.Scope{}, "scale"},
		{"font/option-token", token.Scope{}, "font"},
	}
	for _, tt := range tests {
		scope, prefix := parser.SetScope(tt.name)
		if scope != tt.scope {
			t.Errorf("%s: expected scope %+v, got %+v", tt.name, tt.scope, scope)
		}
		if got := joinDots(prefix); got != tt.prefix {
			t.Errorf("%s: expected prefix %q, got %q", tt.name, tt.prefix, got)
		}
	}
}

func joinDots(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}

func TestTables_PrefixesAndAliases(t *testing.T) {
	doc, err := parser.NewParser().Parse([]byte(studioDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tables := parser.Tables(doc)
	light, ok := tables[token.Scope{Theme: "light"}]
	if !ok {
		t.Fatal("expected a light theme table")
	}

	// The redundant leading "color" group folds into the set prefix.
	tok, ok := light.Get("color.light.cerulean.500-main")
	if !ok {
		t.Fatal("expected prefixed path in table")
	}
	// The in-set path stays available as an alias for reference lookups.
	alias, ok := light.Get("color.cerulean.500-main")
	if !ok || alias != tok {
		t.Error("expected in-set path alias to hit the same token")
	}

	options := tables[token.Scope{}]
	if _, ok := options.GetFlat("16px-scale-50percent"); !ok {
		t.Error("expected bare scale key alias")
	}
}
