// Package load reads token files and assembles the per-scope tables the
// resolution engine runs over.
package load

import (
	"fmt"

	"github.com/ivanyeors/solar-design-system/fs"
	"github.com/ivanyeors/solar-design-system/internal/logger"
	"github.com/ivanyeors/solar-design-system/parser"
	"github.com/ivanyeors/solar-design-system/token"
)

// Result holds everything loaded from a set of token files.
type Result struct {
	// Tables maps each (brand, theme) scope to its merged token table. The
	// zero scope holds shared option tokens.
	Tables map[token.Scope]*token.Table

	// Malformed collects the malformed entries found across all files.
	Malformed []parser.Malformed
}

// Files parses every token file and merges the resulting tables by scope.
// Later files win on path conflicts within a scope. Malformed entries are
// reported, not fatal; a structurally broken file aborts the load.
func Files(filesystem fs.FileSystem, paths []string) (*Result, error) {
	p := parser.NewParser()
	result := &Result{Tables: make(map[token.Scope]*token.Table)}

	for _, path := range paths {
		doc, err := p.ParseFile(filesystem, path)
		if err != nil {
			return nil, err
		}
		result.Malformed = append(result.Malformed, doc.Malformed...)

		for scope, table := range parser.Tables(doc) {
			dst, ok := result.Tables[scope]
			if !ok {
				result.Tables[scope] = table
				continue
			}
			token.Merge(dst, table)
		}
	}

	for _, entry := range result.Malformed {
		logger.Warn("%v", entry)
	}
	return result, nil
}

// Scopes returns the non-empty brand and theme scopes present in the load,
// brands first, each in a stable order.
func (r *Result) Scopes() []token.Scope {
	var brands, themes []token.Scope
	for scope := range r.Tables {
		switch {
		case scope.Brand != "":
			brands = append(brands, scope)
		case scope.Theme != "":
			themes = append(themes, scope)
		}
	}
	sortScopes(brands)
	sortScopes(themes)
	return append(brands, themes...)
}

func sortScopes(scopes []token.Scope) {
	for i := 1; i < len(scopes); i++ {
		for j := i; j > 0 && scopes[j].String() < scopes[j-1].String(); j-- {
			scopes[j], scopes[j-1] = scopes[j-1], scopes[j]
		}
	}
}

// ResolutionTable builds the table one resolution run operates on: shared
// option tokens, the theme's colors, and the scope's own tokens, merged with
// the configured precedence. References never cross scopes except through
// this merge.
func (r *Result) ResolutionTable(scope token.Scope, theme string, p token.Precedence) (*token.Table, error) {
	common := token.NewTable(token.Scope{Theme: theme})
	if options, ok := r.Tables[token.Scope{}]; ok {
		token.Merge(common, options)
	}
	if theme != "" {
		if themed, ok := r.Tables[token.Scope{Theme: theme}]; ok {
			token.Merge(common, themed)
		}
	}

	overlay, ok := r.Tables[scope]
	if !ok {
		if scope == (token.Scope{}) || scope.Theme == theme {
			return common, nil
		}
		return nil, fmt.Errorf("no tokens loaded for scope %s", scope)
	}
	merged := token.MergeCommon(common, overlay, p)
	copyAliases(merged, common, overlay)
	return merged, nil
}

// copyAliases re-registers lookup aliases lost by merging, since MergeCommon
// only carries canonical paths.
func copyAliases(dst *token.Table, srcs ...*token.Table) {
	for _, src := range srcs {
		for alias, tok := range src.Aliases() {
			if merged, ok := dst.Get(tok.DotPath()); ok {
				dst.PutAlias(alias, merged)
			}
		}
	}
}
