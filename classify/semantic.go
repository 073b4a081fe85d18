package classify

import (
	"strings"

	"github.com/ivanyeors/solar-design-system/token"
)

// componentVocabulary is the fixed keyword set scanned against path segments
// to attribute a semantic token to a UI component.
var componentVocabulary = []string{
	"button", "input", "card", "toggle", "checkbox", "radio", "dropdown",
	"slider", "tooltip", "modal", "tab", "accordion", "table", "avatar",
	"badge", "banner", "toast", "alert", "progress", "spinner", "menu",

	"form", "header", "footer", "sidebar", "navigation", "pagination",
	"breadcrumb", "dialog", "popover", "tag", "chip", "layout", "grid",
	"container", "divider", "section",

	"datepicker", "timepicker", "calendar", "carousel", "drawer", "stepper",
	"panel", "list", "listitem", "treeview", "combobox", "textarea",
	"select", "switch", "skeleton", "link", "icon", "separator", "field",
	"pill", "notification", "snackbar",
}

// stateSuffixes imply the preceding path segment names a component.
var stateSuffixes = []string{
	"-rest", "-hover", "-active", "-press", "-disabled",
	"-focus", "-selected", "-error",
}

// elementIndicators are UI elements whose preceding segment supplies the
// component context.
var elementIndicators = map[string]bool{
	"title": true, "subtitle": true, "heading": true, "label": true,
	"caption": true, "body": true, "container": true,
}

// states recognized in semantic token names.
var uiStates = []string{
	"hover", "active", "focus", "disabled", "pressed", "selected", "error", "loading",
}

// variants recognized in semantic token names.
var uiVariants = []string{
	"primary", "secondary", "tertiary", "success", "warning", "error", "info",
	"subtle", "outline", "ghost",
}

// systemGroupRule matches a semantic token into one of the eight
// cross-cutting groups when no component claims it. Declaration order is the
// evaluation order.
type systemGroupRule struct {
	group            string
	pathTerms        []string
	descriptionTerms []string
}

var systemGroupRules = []systemGroupRule{
	{"surface", []string{"background", "bg", "surface", "fill"}, []string{"background", "surface", "container"}},
	{"text", []string{"text", "font", "typography", "label"}, []string{"text", "font", "typography"}},
	{"border", []string{"border", "outline", "stroke"}, []string{"border", "outline", "stroke"}},
	{"interactive", []string{"hover", "active", "focus", "press", "click"}, []string{"interaction", "clickable", "selectable"}},
	{"feedback", []string{"error", "warning", "success", "info", "alert", "notification"}, []string{"error", "warning", "success", "alert", "status"}},
	{"layout", []string{"spacing", "gap", "margin", "padding", "layout", "grid"}, []string{"spacing", "layout", "position", "alignment"}},
	{"elevation", []string{"shadow", "elevation", "depth", "layer"}, []string{"shadow", "elevation", "layer", "z-index"}},
}

// classifySemantic attributes a component or brand token. Component
// extraction runs first; tokens without a component land in a system group.
func classifySemantic(tok *token.Token) Result {
	path := lowerPath(tok.Path)
	res := Result{
		Kind:     KindSemantic,
		Brand:    brandOwner(path),
		State:    identifyState(path),
		Variant:  identifyVariant(path),
		SortKey:  numericSortKey(tok.Name()),
		Category: "component",
	}
	if strings.Contains(path, "depr") {
		res.Excluded = true
		res.Category = "deprecated"
		return res
	}
	if strings.Contains(path, "dark") {
		res.Dark = true
	}

	if component := ExtractComponent(tok.Path); component != "" {
		res.Component = component
		res.Subcategory = propertyType(path)
		return res
	}
	res.Category = "system"
	res.SystemGroup = identifySystemGroup(path, tok.Description)
	res.Subcategory = propertyType(path)
	return res
}

// ExtractComponent scans path segments against the component vocabulary,
// then falls back to state-suffix and element-indicator heuristics that read
// the component name from the preceding segment.
func ExtractComponent(path []string) string {
	for _, part := range path {
		lower := strings.ToLower(part)
		for _, keyword := range componentVocabulary {
			if strings.Contains(lower, keyword) {
				return keyword
			}
		}
	}
	for i, part := range path {
		if i == 0 {
			continue
		}
		lower := strings.ToLower(part)
		for _, suffix := range stateSuffixes {
			if strings.Contains(lower, suffix) {
				return strings.ToLower(path[i-1])
			}
		}
		if elementIndicators[lower] {
			prev := strings.ToLower(path[i-1])
			switch prev {
			case "color", "font", "typography", "scale":
			default:
				return prev
			}
		}
	}
	return ""
}

// identifySystemGroup assigns one of the eight system groups by keyword and
// description matching, in fixed rule order.
func identifySystemGroup(path, description string) string {
	desc := strings.ToLower(description)
	for _, rule := range systemGroupRules {
		for _, term := range rule.pathTerms {
			if strings.Contains(path, term) {
				return rule.group
			}
		}
		for _, term := range rule.descriptionTerms {
			if desc != "" && strings.Contains(desc, term) {
				return rule.group
			}
		}
	}
	return "other"
}

// propertyType names the CSS concern a semantic token targets.
func propertyType(path string) string {
	switch {
	case containsAny(path, "background", "bg-", "bg_", "-bg", "_bg", ".bg", "bg."):
		return "background"
	case containsAny(path, "color", "text-color", "text-style"):
		return "text"
	case containsAny(path, "border", "outline", "stroke"):
		return "border"
	case containsAny(path, "shadow", "elevation"):
		return "shadow"
	case containsAny(path, "radius", "corner", "round"):
		return "radius"
	case containsAny(path, "spacing", "padding", "margin", "gap"):
		return "spacing"
	case containsAny(path, "size", "width", "height", "dimension"):
		return "size"
	case containsAny(path, "font", "text", "typography"):
		return "typography"
	case strings.Contains(path, "icon"):
		return "icon"
	default:
		return "base"
	}
}

func identifyState(path string) string {
	for _, state := range uiStates {
		if strings.Contains(path, state) {
			return state
		}
	}
	return ""
}

func identifyVariant(path string) string {
	for _, variant := range uiVariants {
		if strings.Contains(path, variant) {
			return variant
		}
	}
	return ""
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
