// Package parser flattens hierarchical token documents into flat token
// lists. It accepts Token Studio and DTCG dialects, in JSON (with comments)
// or YAML.
package parser

import (
	"fmt"
	"sort"
	"strings"

	"encoding/json"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/ivanyeors/solar-design-system/fs"
	"github.com/ivanyeors/solar-design-system/schema"
	"github.com/ivanyeors/solar-design-system/token"
)

// Malformed records a table entry that carried a value or a type but not
// both. Malformed entries are excluded from resolution and reported; they
// never abort the run.
type Malformed struct {
	Path   string
	Reason string
}

func (m Malformed) Error() string {
	return fmt.Sprintf("%v at %s: %s", schema.ErrMalformedToken, m.Path, m.Reason)
}

// Unwrap ties entries to the ErrMalformedToken sentinel.
func (m Malformed) Unwrap() error { return schema.ErrMalformedToken }

// Set is one top-level token set from a Token Studio export, e.g.
// "color/Light" or "brands/EVYDCore".
type Set struct {
	Name   string
	Tokens []*token.Token
}

// Document is a parsed token file: its sets in source order plus the
// malformed entries found while flattening.
type Document struct {
	Sets      []*Set
	Malformed []Malformed
}

// Parser flattens token documents.
type Parser struct{}

// NewParser creates a token document parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes and flattens a token document. The flattening rule: keys
// prefixed with $ are metadata and skipped; an object carrying both a value
// and a type is a leaf token; any other object is a group to recurse into.
// A non-mapping root is a structural error and fatal.
func (p *Parser) Parse(data []byte) (*Document, error) {
	format, err := schema.Detect(data)
	if err != nil {
		return nil, err
	}

	raw, err := decode(data)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	for _, name := range sortedKeys(raw) {
		if strings.HasPrefix(name, "$") {
			continue
		}
		setMap, ok := raw[name].(map[string]any)
		if !ok {
			continue
		}
		set := &Set{Name: name}
		p.flatten(setMap, nil, format, set, doc)
		doc.Sets = append(doc.Sets, set)
	}
	return doc, nil
}

// ParseFile reads and parses a token file.
func (p *Parser) ParseFile(filesystem fs.FileSystem, path string) (*Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	doc, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return doc, nil
}

// decode unmarshals JSON (comments allowed) or YAML into a string-keyed map.
func decode(data []byte) (map[string]any, error) {
	if isLikelyJSON(data) {
		var raw map[string]any
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", schema.ErrStructural, err)
		}
		return raw, nil
	}
	var yamlRaw any
	if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrStructural, err)
	}
	raw, ok := normalizeMap(yamlRaw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: root is not a mapping", schema.ErrStructural)
	}
	return raw, nil
}

// flatten walks one set, collecting leaf tokens and malformed entries.
func (p *Parser) flatten(data map[string]any, path []string, format schema.Format, set *Set, doc *Document) {
	valueKey, typeKey := "value", "type"
	if format == schema.DTCG {
		valueKey, typeKey = "$value", "$type"
	}

	for _, key := range sortedKeys(data) {
		if strings.HasPrefix(key, "$") {
			continue
		}
		child, ok := data[key].(map[string]any)
		if !ok {
			continue
		}

		childPath := appendPath(path, key)
		rawValue, hasValue := child[valueKey]
		_, hasType := child[typeKey]

		switch {
		case hasValue && hasType:
			set.Tokens = append(set.Tokens, leafToken(childPath, child, rawValue, typeKey))
		case hasValue || hasType:
			reason := "missing " + typeKey
			if hasType {
				reason = "missing " + valueKey
			}
			doc.Malformed = append(doc.Malformed, Malformed{
				Path:   set.Name + "." + strings.Join(childPath, "."),
				Reason: reason,
			})
		default:
			p.flatten(child, childPath, format, set, doc)
		}
	}
}

// leafToken builds a token from a leaf object.
func leafToken(path []string, leaf map[string]any, rawValue any, typeKey string) *token.Token {
	typeStr, _ := leaf[typeKey].(string)
	tok := &token.Token{
		Path:     path,
		Type:     token.ParseType(typeStr),
		RawValue: stringifyValue(rawValue),
	}
	if desc, ok := leaf["description"].(string); ok {
		tok.Description = desc
	} else if desc, ok := leaf["$description"].(string); ok {
		tok.Description = desc
	}
	return tok
}

// stringifyValue renders scalar token values. Token Studio emits numbers for
// weights and scales; everything downstream works on strings.
func stringifyValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%v", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// isLikelyJSON checks whether data looks like JSON rather than YAML.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r', 0xEF, 0xBB, 0xBF:
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap converts YAML's map[any]any into string-keyed maps.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func appendPath(path []string, key string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path...)
	return append(out, key)
}
