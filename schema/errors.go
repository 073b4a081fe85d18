package schema

import "errors"

// Sentinel errors for the token pipeline.
var (
	// ErrStructural indicates the input document is not a token mapping at
	// all. Fatal: the run aborts before resolution begins.
	ErrStructural = errors.New("input is not a token mapping")

	// ErrMalformedToken indicates a table entry lacking a usable value and
	// type. Reported and excluded from resolution, never fatal.
	ErrMalformedToken = errors.New("malformed token")

	// ErrCircularReference indicates a reference chain re-entered a path
	// already on the active resolution stack.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrUnresolvedReference indicates a placeholder whose target is absent
	// from the token table after all passes.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrUnknownFormat indicates the source document format could not be
	// detected.
	ErrUnknownFormat = errors.New("unknown token document format")
)
