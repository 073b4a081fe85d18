// Package schema detects the source format of token documents and defines
// the sentinel errors shared across the pipeline.
package schema

import "regexp"

// Format identifies the token document dialect.
type Format int

const (
	// Unknown means no leaf markers were found.
	Unknown Format = iota

	// TokenStudio documents mark leaves with plain "value" and "type" keys.
	TokenStudio

	// DTCG documents mark leaves with "$value" and "$type" keys.
	DTCG
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case TokenStudio:
		return "token-studio"
	case DTCG:
		return "dtcg"
	default:
		return "unknown"
	}
}

// Markers match both quoted JSON keys and bare YAML keys.
var (
	dtcgValuePattern   = regexp.MustCompile(`(?m)("\$value"|^\s*\$value)\s*:`)
	studioValuePattern = regexp.MustCompile(`(?m)("value"|^\s*value)\s*:`)
	studioTypePattern  = regexp.MustCompile(`(?m)("type"|^\s*type)\s*:`)
)

// Detect inspects raw document bytes and reports the token dialect.
// DTCG markers win when both appear, since "$value" never occurs in Token
// Studio exports.
func Detect(data []byte) (Format, error) {
	if dtcgValuePattern.Match(data) {
		return DTCG, nil
	}
	if studioValuePattern.Match(data) && studioTypePattern.Match(data) {
		return TokenStudio, nil
	}
	return Unknown, ErrUnknownFormat
}
