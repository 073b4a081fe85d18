package emit_test

import (
	"strings"
	"testing"

	"github.com/ivanyeors/solar-design-system/classify"
	"github.com/ivanyeors/solar-design-system/emit"
	"github.com/ivanyeors/solar-design-system/internal/mapfs"
)

func sampleRecords() []classify.OutputRecord {
	return []classify.OutputRecord{
		{Name: "color-cerulean-900", Value: "#0B3954", Kind: classify.KindColor, Category: "palette"},
		{Name: "color-cerulean-100", Value: "#D6EFFF", Kind: classify.KindColor, Category: "palette"},
		{Name: "scale-spacing-gap-md", Value: "16px", Kind: classify.KindScale, Category: "spacing", Subcategory: "gap"},
		{Name: "font-weight-bold", Value: "700", Kind: classify.KindFont, Category: "weight"},
		{Name: "component-button-background", Value: "#2D9CDB", Kind: classify.KindSemantic, Category: "component", Component: "button", Brand: "evydcore"},
		{Name: "color-neutral-800", Value: "#333333", Kind: classify.KindColor, Category: "neutral", Dark: true},
	}
}

func TestBuildFiles_Partitioning(t *testing.T) {
	files := emit.BuildFiles(sampleRecords())

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	want := []string{
		"option-tokens/colors",
		"option-tokens/scale",
		"option-tokens/font",
		"semantic-tokens/brands/evydcore",
		"semantic-tokens/themes",
	}
	if len(names) != len(want) {
		t.Fatalf("expected %d files, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected file %q at %d, got %q", want[i], i, names[i])
		}
	}
}

func TestBuildFiles_ColorsSortedLightestFirst(t *testing.T) {
	files := emit.BuildFiles(sampleRecords())

	colors := files[0]
	if len(colors.Groups) != 1 || len(colors.Groups[0].Records) != 2 {
		t.Fatalf("unexpected color groups %+v", colors.Groups)
	}
	if colors.Groups[0].Records[0].Name != "color-cerulean-100" {
		t.Errorf("expected lightest color first, got %q", colors.Groups[0].Records[0].Name)
	}
}

func TestSortColors_UnparsableValuesKeepOrderAtEnd(t *testing.T) {
	records := []classify.OutputRecord{
		{Name: "a", Value: "{broken}", Category: "palette"},
		{Name: "b", Value: "#000000", Category: "palette"},
		{Name: "c", Value: "not-a-color", Category: "palette"},
	}
	sorted := emit.SortColors(records)
	if sorted[0].Name != "b" {
		t.Errorf("expected parsable color first, got %q", sorted[0].Name)
	}
	if sorted[1].Name != "a" || sorted[2].Name != "c" {
		t.Errorf("expected unparsable order preserved, got %q then %q", sorted[1].Name, sorted[2].Name)
	}
}

func TestSCSSFormatter(t *testing.T) {
	f := emit.NewSCSSFormatter()
	out := string(f.Format(emit.File{
		Name:        "option-tokens/colors",
		Description: "Color option tokens",
		Groups: []emit.Group{{
			Title:   "Palette",
			Records: []classify.OutputRecord{{Name: "color-cerulean-500", Value: "#2D9CDB"}},
		}},
	}))

	if !strings.Contains(out, "$color-cerulean-500: #2D9CDB;") {
		t.Errorf("missing variable declaration in %q", out)
	}
	if !strings.Contains(out, "/* Palette */") {
		t.Errorf("missing section comment in %q", out)
	}
	if got := f.FileName("option-tokens/colors"); got != "option-tokens/_colors" {
		t.Errorf("expected partial naming, got %q", got)
	}
}

func TestCSSFormatter(t *testing.T) {
	out := string(emit.NewCSSFormatter().Format(emit.File{
		Name:        "option-tokens/colors",
		Description: "Color option tokens",
		Groups: []emit.Group{{
			Title:   "Palette",
			Records: []classify.OutputRecord{{Name: "color-cerulean-500", Value: "#2D9CDB"}},
		}},
	}))

	if !strings.Contains(out, ":root {") {
		t.Errorf("missing :root block in %q", out)
	}
	if !strings.Contains(out, "--color-cerulean-500: #2D9CDB;") {
		t.Errorf("missing custom property in %q", out)
	}
}

func TestJSFormatter(t *testing.T) {
	f := emit.NewJSFormatter()
	out := string(f.Format(emit.File{
		Name:        "option-tokens/colors",
		Description: "Color option tokens",
		Groups: []emit.Group{{
			Title:   "Palette",
			Records: []classify.OutputRecord{{Name: "color-cerulean-500", Value: "#2D9CDB"}},
		}},
	}))

	if !strings.Contains(out, "'color-cerulean-500': '#2D9CDB',") {
		t.Errorf("missing token entry in %q", out)
	}
	if !strings.Contains(out, "export default tokens;") {
		t.Errorf("missing export in %q", out)
	}

	index := string(f.FormatIndex([]emit.File{{Name: "option-tokens/evyd-core"}}))
	if !strings.Contains(index, "import evydCore from './option-tokens/evyd-core';") {
		t.Errorf("unexpected index %q", index)
	}
}

func TestWrite(t *testing.T) {
	mfs := mapfs.New()
	files := emit.BuildFiles(sampleRecords())

	written, err := emit.Write(mfs, "/out", files, emit.NewSCSSFormatter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Five files plus the index.
	if len(written) != 6 {
		t.Fatalf("expected 6 written paths, got %v", written)
	}
	if !mfs.Exists("/out/option-tokens/_colors.scss") {
		t.Error("expected colors partial written")
	}

	index, err := mfs.ReadFile("/out/_tokens.scss")
	if err != nil {
		t.Fatalf("expected index written: %v", err)
	}
	if !strings.Contains(string(index), "@import 'option-tokens/colors';") {
		t.Errorf("unexpected index contents %q", index)
	}
}
