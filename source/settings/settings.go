// All this does is contain in one place the constants controlling the resource
// ceilings of the analyzer, together with the flags which display bits of the
// inner workings of the lexer/parser/analyzer for debugging purposes. In a
// release the SHOW_* flags must all be set to false.

package settings

import "time"

const (
	// The language versions we understand. Version gating of keywords is
	// done in the token package.
	MIN_VERSION = 1
	MAX_VERSION = 4

	// Keywords are matched case-insensitively below this version.
	CASE_SENSITIVE_FROM = 2

	// How many distinct units the discovery pass will follow includes into
	// before giving up on the include graph.
	MAX_INCLUDED_UNITS = 500

	// How many errors we collect before concluding that the analysis is
	// not worth continuing with.
	MAX_ERRORS = 100

	// The wall-clock budget for one analysis request.
	ANALYSIS_TIMEOUT = 30 * time.Second

	// These do what it sounds like.
	SHOW_LEXER    = false
	SHOW_PARSER   = false
	SHOW_ANALYZER = false

	SHOW_TESTS = true // Makes the tests say what they're testing, useful when one of them crashes and we don't know which.
)
