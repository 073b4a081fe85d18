package token

import "strings"

// Scope identifies the (brand, theme) partition a table belongs to.
// References never cross scope boundaries except through explicitly shared
// common tokens merged in by MergeCommon.
type Scope struct {
	Brand string
	Theme string
}

// String returns a readable scope label for diagnostics.
func (s Scope) String() string {
	switch {
	case s.Brand != "" && s.Theme != "":
		return s.Brand + "/" + s.Theme
	case s.Brand != "":
		return s.Brand
	case s.Theme != "":
		return s.Theme
	default:
		return "global"
	}
}

// Precedence controls how shared common tokens combine with brand-specific
// ones when both define the same path.
type Precedence int

const (
	// OverrideWins keeps the brand-specific (overlay) token. Default.
	OverrideWins Precedence = iota

	// CommonWins keeps the shared common token.
	CommonWins
)

// Table is the immutable-per-run store of tokens for one scope. Insertion
// order is preserved so that resolution and naming stay deterministic.
type Table struct {
	scope  Scope
	order  []string
	byPath map[string]*Token
	byFlat map[string]*Token
}

// NewTable creates an empty table for the given scope.
func NewTable(scope Scope) *Table {
	return &Table{
		scope:  scope,
		byPath: make(map[string]*Token),
		byFlat: make(map[string]*Token),
	}
}

// Scope returns the table's (brand, theme) partition.
func (t *Table) Scope() Scope {
	return t.scope
}

// Put inserts a token, replacing any existing token at the same path.
// Replacement keeps the original insertion position.
func (t *Table) Put(tok *Token) {
	key := tok.DotPath()
	if _, exists := t.byPath[key]; !exists {
		t.order = append(t.order, key)
	}
	t.byPath[key] = tok
	t.byFlat[tok.FlatKey()] = tok
}

// PutAlias registers an additional lookup path for a token without adding it
// to iteration order. Existing entries are never displaced by an alias.
func (t *Table) PutAlias(path string, tok *Token) {
	if _, exists := t.byPath[path]; !exists {
		t.byPath[path] = tok
	}
	flat := strings.ReplaceAll(path, ".", "-")
	if _, exists := t.byFlat[flat]; !exists {
		t.byFlat[flat] = tok
	}
}

// Get looks a token up by its dotted path.
func (t *Table) Get(path string) (*Token, bool) {
	tok, ok := t.byPath[path]
	return tok, ok
}

// GetFlat looks a token up by its hyphen-joined flat key.
func (t *Table) GetFlat(key string) (*Token, bool) {
	tok, ok := t.byFlat[key]
	return tok, ok
}

// Len returns the number of tokens in the table.
func (t *Table) Len() int {
	return len(t.order)
}

// Tokens returns all tokens in insertion order.
func (t *Table) Tokens() []*Token {
	out := make([]*Token, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.byPath[key])
	}
	return out
}

// Aliases returns the lookup paths registered through PutAlias, mapped to
// their tokens.
func (t *Table) Aliases() map[string]*Token {
	out := make(map[string]*Token)
	for path, tok := range t.byPath {
		if path != tok.DotPath() {
			out[path] = tok
		}
	}
	return out
}

// Paths returns all dotted paths in insertion order.
func (t *Table) Paths() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// MergeCommon combines shared common tokens with a brand-specific overlay
// into a new table carrying the overlay's scope. Conflicting paths are
// settled by precedence; both source tables are left untouched.
func MergeCommon(common, overlay *Table, p Precedence) *Table {
	merged := NewTable(overlay.scope)
	for _, tok := range common.Tokens() {
		merged.Put(tok)
	}
	for _, tok := range overlay.Tokens() {
		if _, exists := merged.Get(tok.DotPath()); exists && p == CommonWins {
			continue
		}
		merged.Put(tok)
	}
	return merged
}

// Merge copies every token of src into dst, aliases included. Later tables
// win on conflicts.
func Merge(dst *Table, srcs ...*Table) *Table {
	for _, src := range srcs {
		for _, tok := range src.Tokens() {
			dst.Put(tok)
		}
		for alias, tok := range src.Aliases() {
			dst.PutAlias(alias, tok)
		}
	}
	return dst
}

// PrefixedPath prepends prefix segments to a dotted path string.
func PrefixedPath(prefix []string, path string) []string {
	segs := strings.Split(path, ".")
	out := make([]string, 0, len(prefix)+len(segs))
	out = append(out, prefix...)
	out = append(out, segs...)
	return out
}
