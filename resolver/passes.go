package resolver

import (
	"fmt"
	"strings"

	"github.com/ivanyeors/solar-design-system/internal/logger"
	"github.com/ivanyeors/solar-design-system/schema"
	"github.com/ivanyeors/solar-design-system/token"
)

// Options configures a ResolveAll run.
type Options struct {
	// MaxPasses caps the number of full sweeps. Zero means DefaultMaxPasses.
	MaxPasses int

	// Fallbacks overrides the per-type default table. The zero value means
	// DefaultFallbacks.
	Fallbacks Fallbacks
}

// Residual records a token that still carried placeholders when the pass
// budget ran out or progress stalled.
type Residual struct {
	TokenPath string
	Refs      []string
}

// Diagnostics accumulates everything ResolveAll observed. None of it is
// fatal; the run always produces a fully committed table.
type Diagnostics struct {
	// Unresolved lists references whose targets were absent from the table.
	Unresolved []UnresolvedRef

	// Cycles lists detected circular reference chains, one entry per
	// detection.
	Cycles []Cycle

	// PassCounts records how many tokens reached Resolved in each pass.
	PassCounts []int

	// Residual lists tokens committed with placeholders still in their value.
	Residual []Residual
}

// Clean reports whether the run finished without unresolved references,
// cycles, or residual placeholders.
func (d *Diagnostics) Clean() bool {
	return len(d.Unresolved) == 0 && len(d.Cycles) == 0 && len(d.Residual) == 0
}

// Errors renders the unresolved and cycle diagnostics as sentinel-wrapped
// errors, one per entry, so callers can match them with errors.Is.
func (d *Diagnostics) Errors() []error {
	var errs []error
	for _, u := range d.Unresolved {
		errs = append(errs, fmt.Errorf("%w {%s} in %s", schema.ErrUnresolvedReference, u.Ref, u.TokenPath))
	}
	for _, c := range d.Cycles {
		errs = append(errs, fmt.Errorf("%w: %s", schema.ErrCircularReference, strings.Join(c.Stack, " -> ")))
	}
	return errs
}

// ResolveAll runs the fixed-point pass engine over the table. Each pass
// sweeps every pending token in insertion order and re-resolves its
// outstanding placeholders. The engine stops early when a pass resolves
// nothing, and commits whatever remains after the final pass so that every
// token ends in a terminal state. Running it again over the settled table is
// a no-op.
func ResolveAll(table *token.Table, opts Options) *Diagnostics {
	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}
	fallbacks := opts.Fallbacks
	if fallbacks == (Fallbacks{}) {
		fallbacks = DefaultFallbacks()
	}

	r := New(table, fallbacks)
	diags := &Diagnostics{}

	// Literal tokens resolve without a pass. Tokens a previous run already
	// settled re-seed the resolved set, so shared values stay visible to
	// comp.* references in later scope runs.
	for _, tok := range table.Tokens() {
		switch {
		case tok.State == token.Resolved:
			r.MarkResolved(tok.DotPath(), tok.ResolvedValue)
		case tok.State == token.Unvisited && !tok.HasPlaceholder():
			tok.ResolvedValue = tok.RawValue
			tok.State = token.Resolved
			r.MarkResolved(tok.DotPath(), tok.RawValue)
		}
	}

	for pass := 1; pass <= maxPasses && pendingCount(table) > 0; pass++ {
		progress := 0
		for _, tok := range table.Tokens() {
			switch tok.State {
			case token.Resolved, token.FallbackCommitted:
				continue
			}
			if resolveToken(r, tok) {
				progress++
			}
		}
		diags.PassCounts = append(diags.PassCounts, progress)
		if progress == 0 {
			logger.Debug("resolution stalled after pass %d, %d tokens pending", pass, pendingCount(table))
			break
		}
	}

	// Commit leftovers. Their current values, placeholders included, become
	// final, and every outstanding reference is reported.
	for _, tok := range table.Tokens() {
		switch tok.State {
		case token.Resolved, token.FallbackCommitted:
			continue
		}
		if tok.State == token.Unvisited {
			tok.ResolvedValue = tok.RawValue
		}
		refs := token.ExtractRefs(tok.ResolvedValue)
		diags.Residual = append(diags.Residual, Residual{TokenPath: tok.DotPath(), Refs: refs})
		for _, ref := range refs {
			r.recordUnresolved(ref, []string{tok.DotPath()})
		}
		tok.State = token.FallbackCommitted
	}

	diags.Unresolved = r.unresolved
	diags.Cycles = r.cycles
	return diags
}

// resolveToken re-resolves one token's outstanding placeholders, keeping
// partial substitutions between passes. It reports whether the token reached
// Resolved. A cycle detected anywhere under one of the token's references
// substitutes the token's own per-type fallback for that reference; once no
// refs remain pending, a token whose every ref settled that way ends in
// FallbackCommitted, outside the resolved set, so that other tokens
// referencing into the same cycle detect it independently.
func resolveToken(r *Resolver, tok *token.Token) bool {
	value := tok.RawValue
	if tok.State == token.PartiallyResolved {
		value = tok.ResolvedValue
	}

	cyclic := false
	pending := 0
	for _, ref := range token.ExtractRefs(value) {
		res := r.Resolve(ref, []string{tok.DotPath()})
		switch res.Status {
		case StatusCycle:
			value = token.SubstituteRef(value, ref, r.fallbacks.ForType(tok.Type))
			cyclic = true
		case StatusUnresolved:
			pending++
		default:
			value = token.SubstituteRef(value, ref, res.Value)
		}
	}

	tok.ResolvedValue = value
	switch {
	case pending > 0:
		// Cyclic refs already took their fallback; the remaining refs get
		// later passes.
		tok.State = token.PartiallyResolved
	case cyclic:
		tok.State = token.FallbackCommitted
	default:
		tok.State = token.Resolved
		r.MarkResolved(tok.DotPath(), value)
		return true
	}
	return false
}

func pendingCount(table *token.Table) int {
	n := 0
	for _, tok := range table.Tokens() {
		switch tok.State {
		case token.Resolved, token.FallbackCommitted:
		default:
			n++
		}
	}
	return n
}
