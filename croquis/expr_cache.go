package croquis

import (
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ExprCache compiles directive/interpolation expressions with expr-lang/expr
// and caches the result, purely to validate syntax and classify
// static-ness — vize never calls expr.Run: it emits JS, it doesn't
// interpret it. Grounded directly on the teacher's own
// vuego.ExprEvaluator (expr_evaluator.go), which caches *vm.Program by
// source text under a RWMutex; Eval/Run is dropped since nothing here
// ever needs a result value, only "does this compile" and "does this
// reference any free variable."
type ExprCache struct {
	mu       sync.RWMutex
	programs map[string]*vm.Program
}

// NewExprCache returns an empty cache.
func NewExprCache() *ExprCache {
	return &ExprCache{programs: make(map[string]*vm.Program)}
}

// Compile validates expression syntax, caching the compiled program keyed
// by source text the same way the teacher's getProgram does.
func (c *ExprCache) Compile(expression string) (*vm.Program, error) {
	c.mu.RLock()
	if prog, ok := c.programs[expression]; ok {
		c.mu.RUnlock()
		return prog, nil
	}
	c.mu.RUnlock()

	prog, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.programs[expression] = prog
	c.mu.Unlock()
	return prog, nil
}

// IsStatic reports whether expression references no free identifiers at
// all — i.e. it compiles against an empty environment without
// AllowUndefinedVariables ("1 + 2" and "'a' + 'b'" are static; "Math.max ?
// ..." is not, since Math is undefined). The transform package's
// static-hoisting pass does not call it; hoist.go decides static-ness from
// the template AST.
func (c *ExprCache) IsStatic(expression string) bool {
	_, err := expr.Compile(expression, expr.Env(struct{}{}))
	return err == nil
}
