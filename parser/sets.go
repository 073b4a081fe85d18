package parser

import (
	"strings"

	"github.com/ivanyeors/solar-design-system/token"
)

// SetScope maps a Token Studio set name onto the (brand, theme) partition it
// belongs to and the path prefix its tokens carry in the flat table, so that
// "color/Light" tokens surface as color.light.* and "brands/EVYDCore" tokens
// as brands.evydCore.*.
func SetScope(name string) (token.Scope, []string) {
	parts := strings.SplitN(name, "/", 2)
	head := strings.ToLower(parts[0])
	tail := ""
	if len(parts) == 2 {
		tail = parts[1]
	}

	switch head {
	case "color":
		return token.Scope{Theme: strings.ToLower(tail)}, []string{"color", strings.ToLower(tail)}
	case "brands":
		return token.Scope{Brand: tail}, []string{"brands", tail}
	case "font", "scale":
		// Option token sets are theme- and brand-agnostic.
		return token.Scope{}, []string{head}
	default:
		prefix := []string{head}
		if tail != "" {
			prefix = append(prefix, tail)
		}
		return token.Scope{}, prefix
	}
}

// Tables partitions a parsed document into per-scope token tables, applying
// each set's path prefix. Sets sharing a scope merge in document order. Each
// token's original in-set path is kept as a lookup alias so that references
// written against the unprefixed name still resolve.
func Tables(doc *Document) map[token.Scope]*token.Table {
	tables := make(map[token.Scope]*token.Table)
	for _, set := range doc.Sets {
		scope, prefix := SetScope(set.Name)
		table, ok := tables[scope]
		if !ok {
			table = token.NewTable(scope)
			tables[scope] = table
		}
		for _, tok := range set.Tokens {
			inset := tok.DotPath()
			prefixed := *tok
			prefixed.Path = prefixPath(prefix, tok.Path)
			table.Put(&prefixed)
			table.PutAlias(inset, &prefixed)
		}
	}
	return tables
}

// prefixPath prepends the set prefix, dropping a leading path segment that
// repeats the prefix head ("color/Light" sets nest their tokens under a
// redundant "color" group).
func prefixPath(prefix, path []string) []string {
	if len(prefix) > 0 && len(path) > 0 && strings.EqualFold(path[0], prefix[0]) {
		path = path[1:]
	}
	return token.PrefixedPath(prefix, strings.Join(path, "."))
}
