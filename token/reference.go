package token

import (
	"regexp"
	"strings"
)

// refPattern matches {token.path} placeholders. The character class excludes
// braces, so unbalanced or nested braces never match and are treated as
// literal text rather than a reference. That leniency is deliberate.
var refPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// ExtractRefs returns every placeholder path in value, left to right,
// non-overlapping, without evaluating them. A value with no braces yields nil
// and is treated as already resolved.
func ExtractRefs(value string) []string {
	matches := refPattern.FindAllStringSubmatch(value, -1)
	if len(matches) == 0 {
		return nil
	}
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, m[1])
	}
	return refs
}

// HasRef reports whether value contains at least one placeholder.
func HasRef(value string) bool {
	return refPattern.MatchString(value)
}

// SubstituteRef replaces the first occurrence of the {ref} placeholder in
// value with replacement, supporting mixed literal+reference strings.
func SubstituteRef(value, ref, replacement string) string {
	return strings.Replace(value, "{"+ref+"}", replacement, 1)
}

// Namespace returns the first segment of a reference path, which selects the
// resolution strategy (color, base, comp, ...).
func Namespace(ref string) string {
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		return ref[:i]
	}
	return ref
}
