// Package eval compiles and runs array length expressions.
//
// A length expression is an expr-lang expression over previously parsed
// numeric properties, for example "nrows * ncols" or "max(n, 1) - 1".
package eval

import (
	"errors"
	"fmt"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/jolicitron/ir"
)

var ErrExpr = errors.New("length expression error")

// Length is a compiled length expression.  Names lists the free identifiers
// the expression reads, sorted and without duplicates.
type Length struct {
	Source  string
	Names   []string
	program *vm.Program
}

func Compile(src string) (*Length, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrExpr, src, err)
	}
	v := &identVisitor{
		seen:     map[string]bool{},
		excluded: map[string]bool{},
	}
	ast.Walk(&tree.Node, v)
	program, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrExpr, src, err)
	}
	return &Length{Source: src, Names: v.names(), program: program}, nil
}

func (l *Length) String() string {
	return l.Source
}

// Run evaluates l with env binding each of l.Names.
func (l *Length) Run(env map[string]any) (any, error) {
	res, err := expr.Run(l.program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrExpr, l.Source, err)
	}
	return res, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.AllowUndefinedVariables(),
		expr.Function("idiv", idiv, new(func(int, int) int)),
	}
}

// idiv is truncating integer division over safe integers.
func idiv(params ...any) (any, error) {
	a, aok := ToFloat(params[0])
	b, bok := ToFloat(params[1])
	if !aok || !bok {
		return nil, fmt.Errorf("idiv expects numbers, got %T and %T", params[0], params[1])
	}
	if !ir.IsSafeInteger(a) || !ir.IsSafeInteger(b) {
		return nil, fmt.Errorf("idiv expects integers, got %v and %v", params[0], params[1])
	}
	if b == 0 {
		return nil, errors.New("idiv by zero")
	}
	return int(a) / int(b), nil
}

type identVisitor struct {
	seen     map[string]bool
	excluded map[string]bool
}

func (v *identVisitor) Visit(node *ast.Node) {
	switch x := (*node).(type) {
	case *ast.IdentifierNode:
		v.seen[x.Value] = true
	case *ast.CallNode:
		if id, ok := x.Callee.(*ast.IdentifierNode); ok {
			v.excluded[id.Value] = true
		}
	case *ast.VariableDeclaratorNode:
		v.excluded[x.Name] = true
	}
}

func (v *identVisitor) names() []string {
	res := make([]string, 0, len(v.seen))
	for name := range v.seen {
		if v.excluded[name] {
			continue
		}
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}
