// Package pipeline wires the token packages into the end-to-end run the CLI
// commands share: load files, resolve every scope, classify, and snapshot.
package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/ivanyeors/solar-design-system/cache"
	"github.com/ivanyeors/solar-design-system/classify"
	"github.com/ivanyeors/solar-design-system/config"
	"github.com/ivanyeors/solar-design-system/fs"
	"github.com/ivanyeors/solar-design-system/load"
	"github.com/ivanyeors/solar-design-system/resolver"
	"github.com/ivanyeors/solar-design-system/token"
)

// ScopeRun is one scope's resolution outcome.
type ScopeRun struct {
	Scope       token.Scope
	Table       *token.Table
	Diagnostics *resolver.Diagnostics
}

// Run is the result of loading and resolving a set of token files.
type Run struct {
	Config *config.Config
	Paths  []string

	// Scopes holds each scope's resolution run: shared option tokens first,
	// then themes, then brands.
	Scopes []ScopeRun

	// Merged combines every loaded table after resolution, for
	// classification and emission. Scope prefixes keep paths distinct.
	Merged *token.Table
}

// InputPaths decides which token files a command operates on: explicit
// arguments win, otherwise the config's file specs are expanded.
func InputPaths(filesystem fs.FileSystem, cfg *config.Config, rootDir string, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	paths, err := cfg.ExpandFiles(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no token files: pass paths as arguments or list them in %s/%s", config.ConfigDir, config.ConfigFileName)
	}
	return paths, nil
}

// Resolve loads the files and runs the pass engine over every scope. The
// shared option scope resolves first so theme and brand tables can reference
// into it.
func Resolve(filesystem fs.FileSystem, cfg *config.Config, paths []string) (*Run, error) {
	result, err := load.Files(filesystem, paths)
	if err != nil {
		return nil, err
	}

	opts := cfg.ResolverOptions()
	prec := cfg.Precedence()
	defaultTheme := ""
	if len(cfg.Themes) > 0 {
		defaultTheme = cfg.Themes[0]
	}

	run := &Run{Config: cfg, Paths: paths, Merged: token.NewTable(token.Scope{})}

	var order []token.Scope
	if _, ok := result.Tables[token.Scope{}]; ok {
		order = append(order, token.Scope{})
	}
	var brands []token.Scope
	for _, scope := range result.Scopes() {
		if scope.Brand != "" {
			brands = append(brands, scope)
			continue
		}
		order = append(order, scope)
	}
	order = append(order, brands...)

	for _, scope := range order {
		theme := scope.Theme
		if theme == "" {
			theme = defaultTheme
		}
		table, err := result.ResolutionTable(scope, theme, prec)
		if err != nil {
			return nil, err
		}
		diags := resolver.ResolveAll(table, opts)
		run.Scopes = append(run.Scopes, ScopeRun{Scope: scope, Table: table, Diagnostics: diags})

		// Resolution mutates tokens in place, so merging the loaded scope
		// table picks up resolved values without duplicating shared tokens.
		token.Merge(run.Merged, result.Tables[scope])
	}
	return run, nil
}

// Records classifies and names the merged tokens.
func (r *Run) Records() []classify.OutputRecord {
	return classify.Records(r.Merged)
}

// Snapshot captures the resolved tokens for change reporting. Scope prefixes
// in the merged paths keep brand and theme tokens distinct.
func (r *Run) Snapshot() cache.Snapshot {
	return cache.TableSnapshot(r.Merged)
}

// Clean reports whether every scope resolved without diagnostics.
func (r *Run) Clean() bool {
	for _, sr := range r.Scopes {
		if !sr.Diagnostics.Clean() {
			return false
		}
	}
	return true
}

// PrintDiagnostics writes a human-readable summary of each scope's
// resolution diagnostics.
func (r *Run) PrintDiagnostics(w io.Writer) {
	for _, sr := range r.Scopes {
		d := sr.Diagnostics
		if d.Clean() {
			continue
		}
		fmt.Fprintf(w, "scope %s:\n", sr.Scope)
		for _, err := range d.Errors() {
			fmt.Fprintf(w, "  %v\n", err)
		}
		for _, res := range d.Residual {
			fmt.Fprintf(w, "  residual placeholders in %s: {%s}\n", res.TokenPath, strings.Join(res.Refs, "}, {"))
		}
	}
}
