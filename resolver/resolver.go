// Package resolver resolves {reference.path} placeholders across a token
// table and drives the fixed-point pass engine that repeats resolution until
// every token settles.
package resolver

import (
	"slices"
	"strings"

	"github.com/ivanyeors/solar-design-system/internal/logger"
	"github.com/ivanyeors/solar-design-system/token"
)

// Status reports how a single reference lookup ended.
type Status int

const (
	// StatusResolved means the reference produced a final value.
	StatusResolved Status = iota

	// StatusFallback means the target was missing and a per-type default was
	// substituted instead.
	StatusFallback

	// StatusUnresolved means the target could not be settled this pass. The
	// placeholder stays in place for a later pass.
	StatusUnresolved

	// StatusCycle means the reference chain re-entered a path already on the
	// call stack. The whole chain unwinds so the owning token can commit its
	// own per-type fallback.
	StatusCycle
)

// Resolution is the outcome of resolving one reference.
type Resolution struct {
	Value  string
	Status Status
}

// UnresolvedRef records a reference whose target was absent from the table.
type UnresolvedRef struct {
	// Ref is the reference path as written, without braces.
	Ref string

	// TokenPath is the dotted path of the token that contained the reference.
	TokenPath string
}

// Cycle records one detected circular reference chain.
type Cycle struct {
	// Ref is the reference that closed the cycle.
	Ref string

	// Stack is the chain of reference paths active when the cycle closed.
	Stack []string
}

// Resolver resolves individual references against a token table. Resolution
// strategy is picked by the reference's leading namespace segment: color.*
// uses flattened hyphen keys, base.<property>.* uses ordinal scale tables,
// comp.* only reads already-resolved tokens, and everything else is a direct
// lookup that may recurse through unresolved targets.
type Resolver struct {
	table     *token.Table
	fallbacks Fallbacks

	// resolved holds final values of Resolved tokens only, keyed by dotted
	// path. FallbackCommitted tokens stay out so that every token referencing
	// into a cycle detects the cycle itself.
	resolved map[string]string

	unresolved []UnresolvedRef
	cycles     []Cycle
}

// New creates a resolver over the given table.
func New(table *token.Table, fallbacks Fallbacks) *Resolver {
	return &Resolver{
		table:     table,
		fallbacks: fallbacks,
		resolved:  make(map[string]string),
	}
}

// MarkResolved records a token's final value for direct and comp.* lookups.
func (r *Resolver) MarkResolved(path, value string) {
	r.resolved[path] = value
}

// Resolve resolves a single reference path. stack is the chain of reference
// paths already being resolved; the owning token's dotted path seeds it.
func (r *Resolver) Resolve(ref string, stack []string) Resolution {
	if slices.Contains(stack, ref) {
		chain := append(slices.Clone(stack), ref)
		r.cycles = append(r.cycles, Cycle{Ref: ref, Stack: chain})
		logger.Warn("circular reference: %s", strings.Join(chain, " -> "))
		return Resolution{Status: StatusCycle}
	}

	switch token.Namespace(ref) {
	case "color":
		return r.resolveColor(ref, stack)
	case "base":
		return r.resolveBase(ref, stack)
	case "comp":
		return r.resolveComp(ref)
	default:
		return r.resolveDirect(ref, stack)
	}
}

// resolveColor flattens the dotted reference into a hyphen key and retries
// once without the leading segment, so {color.cerulean.500-main} finds the
// token stored under color-cerulean-500-main or cerulean-500-main. A miss
// always substitutes the color fallback, and is still recorded as unresolved.
func (r *Resolver) resolveColor(ref string, stack []string) Resolution {
	parts := strings.Split(ref, ".")
	for _, key := range []string{strings.Join(parts, "-"), strings.Join(parts[1:], "-")} {
		if key == "" {
			continue
		}
		if tok, ok := r.table.GetFlat(key); ok {
			return r.resolveTarget(tok, ref, stack)
		}
	}
	r.recordUnresolved(ref, stack)
	return Resolution{Value: r.fallbacks.Color, Status: StatusFallback}
}

// resolveBase handles base.<property>.<ordinal> references. Radius and the
// spacing family (gap, padding, margin, spacing) map their ordinal through a
// percentage table onto a derived 16px-scale token; a missing ordinal or
// missing derived token substitutes the per-property default. Other base
// paths fall through to direct lookup.
func (r *Resolver) resolveBase(ref string, stack []string) Resolution {
	parts := strings.Split(ref, ".")
	if len(parts) < 3 {
		return r.resolveDirect(ref, stack)
	}
	property := parts[1]
	ordinal := parts[len(parts)-1]

	var ordinals map[string]string
	switch property {
	case "radius":
		ordinals = radiusOrdinals
	case "gap", "padding", "margin", "spacing":
		ordinals = spacingOrdinals
	default:
		return r.resolveDirect(ref, stack)
	}

	if pct, ok := ordinals[ordinal]; ok {
		key := derivedScaleKey(pct)
		if tok, ok := r.lookup(key); ok {
			return r.resolveTarget(tok, ref, stack)
		}
	}
	r.recordUnresolved(ref, stack)
	return Resolution{Value: r.fallbacks.forProperty(property), Status: StatusFallback}
}

// resolveComp reads component tokens from already-resolved values only. The
// table is consulted just to translate alias paths onto their canonical
// entry: brand tables store comp tokens under a brand prefix while the
// references are written {comp.*}. It never recurses and never falls back:
// component chains settle over passes.
func (r *Resolver) resolveComp(ref string) Resolution {
	if value, ok := r.resolved[ref]; ok {
		return Resolution{Value: value, Status: StatusResolved}
	}
	if tok, ok := r.lookup(ref); ok {
		if value, ok := r.resolved[tok.DotPath()]; ok {
			return Resolution{Value: value, Status: StatusResolved}
		}
	}
	return Resolution{Status: StatusUnresolved}
}

// resolveDirect looks the reference up by dotted path, then by flat key, and
// recurses into the target's raw value when the target itself is not yet
// resolved. A missing target is left unresolved for a later pass.
func (r *Resolver) resolveDirect(ref string, stack []string) Resolution {
	tok, ok := r.lookup(ref)
	if !ok {
		return Resolution{Status: StatusUnresolved}
	}
	return r.resolveTarget(tok, ref, stack)
}

// resolveTarget produces the value of a found target token, preferring its
// committed resolved value and otherwise resolving its raw value in place
// with ref pushed onto the stack.
func (r *Resolver) resolveTarget(tok *token.Token, ref string, stack []string) Resolution {
	if value, ok := r.resolved[tok.DotPath()]; ok {
		return Resolution{Value: value, Status: StatusResolved}
	}
	if !tok.HasPlaceholder() {
		return Resolution{Value: tok.RawValue, Status: StatusResolved}
	}
	return r.resolveValue(tok.RawValue, append(stack, ref))
}

// resolveValue resolves every placeholder in value. A cycle anywhere unwinds
// the whole chain; an unresolved reference defers the chain to a later pass.
func (r *Resolver) resolveValue(value string, stack []string) Resolution {
	out := value
	status := StatusResolved
	for _, ref := range token.ExtractRefs(value) {
		res := r.Resolve(ref, stack)
		switch res.Status {
		case StatusCycle:
			return Resolution{Status: StatusCycle}
		case StatusUnresolved:
			return Resolution{Status: StatusUnresolved}
		case StatusFallback:
			status = StatusFallback
			out = token.SubstituteRef(out, ref, res.Value)
		default:
			out = token.SubstituteRef(out, ref, res.Value)
		}
	}
	return Resolution{Value: out, Status: status}
}

// lookup finds a token by dotted path first, flat key second.
func (r *Resolver) lookup(ref string) (*token.Token, bool) {
	if tok, ok := r.table.Get(ref); ok {
		return tok, true
	}
	return r.table.GetFlat(ref)
}

func (r *Resolver) recordUnresolved(ref string, stack []string) {
	owner := ""
	if len(stack) > 0 {
		owner = stack[0]
	}
	r.unresolved = append(r.unresolved, UnresolvedRef{Ref: ref, TokenPath: owner})
}
