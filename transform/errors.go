// Package transform implements the nine ordered template-transform passes
// (spec.md §4.F): structural coalescing, v-for rewrite, directive
// normalization, v-model expansion, static hoisting, patch-flag
// computation, handler caching, identifier prefixing, and helper
// registration. Grounded on the teacher's eval_core.go/eval_for.go/
// eval_attributes.go — the same sibling-lookahead shape those use to
// *evaluate* v-if/v-for chains is reused here to *rewrite* them into
// If/For nodes instead.
package transform

import "github.com/vizehq/vize/sfc"

// ErrorCode enumerates transform diagnostic codes (spec.md §4.F / §7).
type ErrorCode string

const (
	ErrElseNoAdjacentIf ErrorCode = "V_ELSE_NO_ADJACENT_IF"
	ErrIfSameKey        ErrorCode = "V_IF_SAME_KEY"
	ErrForNoExpression  ErrorCode = "V_FOR_NO_EXPRESSION"
)

// Error is a non-fatal transform diagnostic (spec.md §4.F: "transform
// errors are non-fatal; they append to a diagnostic list").
type Error struct {
	Code ErrorCode
	Span sfc.Span
}

func (e *Error) Error() string { return string(e.Code) }
