package classify

import (
	"sort"

	"github.com/ivanyeors/solar-design-system/token"
)

// OutputRecord is one named variable ready for emission. Records carry no
// output syntax; formatters downstream decide that.
type OutputRecord struct {
	Name        string
	Value       string
	Kind        Kind
	Category    string
	Subcategory string
	Component   string
	SystemGroup string

	// Brand routes the record to brand-specific output files.
	Brand string

	// Dark routes the record to the dark theme bucket.
	Dark bool
}

// Records classifies and names every token of a resolved table, in a stable
// category order. Deprecated tokens are dropped; everything else is kept,
// uncategorizable tokens included.
func Records(table *token.Table) []OutputRecord {
	type entry struct {
		tok   *token.Token
		res   Result
		index int
	}

	entries := make([]entry, 0, table.Len())
	for i, tok := range table.Tokens() {
		res := Classify(tok)
		if res.Excluded {
			continue
		}
		entries = append(entries, entry{tok: tok, res: res, index: i})
	}

	// Order by rule group, then category, then sort key. Insertion order
	// breaks the remaining ties so naming stays deterministic.
	sort.SliceStable(entries, func(a, b int) bool {
		ea, eb := entries[a], entries[b]
		if ea.res.Kind != eb.res.Kind {
			return ea.res.Kind < eb.res.Kind
		}
		if ea.res.Category != eb.res.Category {
			return ea.res.Category < eb.res.Category
		}
		if ea.res.SortKey != eb.res.SortKey {
			return ea.res.SortKey < eb.res.SortKey
		}
		return ea.index < eb.index
	})

	normalizer := NewNormalizer()
	records := make([]OutputRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, OutputRecord{
			Name:        normalizer.Identifier(e.tok, e.res),
			Value:       e.tok.Value(),
			Kind:        e.res.Kind,
			Category:    e.res.Category,
			Subcategory: e.res.Subcategory,
			Component:   e.res.Component,
			SystemGroup: e.res.SystemGroup,
			Brand:       e.res.Brand,
			Dark:        e.res.Dark,
		})
	}
	return records
}
