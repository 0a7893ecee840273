/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filter

import "fmt"

// Filter is a node in a filter expression tree.
// It's a "closed" interface, meaning only types within this package can implement it.
type Filter interface {
	isFilter()
}

// ComparisonOp is a column comparison operator in the Table service query grammar.
type ComparisonOp string

// Supported comparison operators.
const (
	OpLt ComparisonOp = "lt"
	OpLe ComparisonOp = "le"
	OpGt ComparisonOp = "gt"
	OpGe ComparisonOp = "ge"
	OpEq ComparisonOp = "eq"
	OpNe ComparisonOp = "ne"
)

// BinaryOp combines two filters.
type BinaryOp string

const (
	OpAnd BinaryOp = "and"
	OpOr  BinaryOp = "or"
)

// UnaryOp negates a filter.
type UnaryOp string

const OpNot UnaryOp = "not"

// None is the empty filter. It is the identity element of And and Or:
// combining any filter with None yields that filter unchanged.
type None struct{}

func (None) isFilter() {}

// Column is a leaf predicate comparing a named entity property against a value.
type Column struct {
	Name  string
	Op    ComparisonOp
	Value any
}

func (Column) isFilter() {}

// Binary joins two subtrees with and/or.
type Binary struct {
	Left  Filter
	Op    BinaryOp
	Right Filter
}

func (Binary) isFilter() {}

// Unary wraps a subtree with not.
type Unary struct {
	Op      UnaryOp
	Operand Filter
}

func (Unary) isFilter() {}

// Constructor helpers. Filters are built bottom-up and never mutated.

// NoFilter returns the empty filter.
func NoFilter() Filter { return None{} }

// Where builds a column comparison.
func Where(name string, op ComparisonOp, value any) Filter {
	return Column{Name: name, Op: op, Value: value}
}

// Eq builds an equality comparison on the named property.
func Eq(name string, value any) Filter { return Where(name, OpEq, value) }

// Ne builds an inequality comparison on the named property.
func Ne(name string, value any) Filter { return Where(name, OpNe, value) }

// Gt builds a greater-than comparison on the named property.
func Gt(name string, value any) Filter { return Where(name, OpGt, value) }

// Ge builds a greater-or-equal comparison on the named property.
func Ge(name string, value any) Filter { return Where(name, OpGe, value) }

// Lt builds a less-than comparison on the named property.
func Lt(name string, value any) Filter { return Where(name, OpLt, value) }

// Le builds a less-or-equal comparison on the named property.
func Le(name string, value any) Filter { return Where(name, OpLe, value) }

// And combines two filters conjunctively. None operands are elided.
func And(left, right Filter) Filter {
	return Binary{Left: left, Op: OpAnd, Right: right}
}

// Or combines two filters disjunctively. None operands are elided.
func Or(left, right Filter) Filter {
	return Binary{Left: left, Op: OpOr, Right: right}
}

// Not negates a filter. Not of None is still None.
func Not(f Filter) Filter {
	return Unary{Op: OpNot, Operand: f}
}

// Compile lowers a filter tree to the query string the Table service expects.
// The second return is false when the tree reduces to nothing, in which case
// the caller must omit the filter clause entirely rather than pass "".
func Compile(f Filter) (string, bool) {
	s := compile(f)
	return s, s != ""
}

func compile(f Filter) string {
	switch n := f.(type) {
	case nil, None:
		return ""
	case Column:
		return fmt.Sprintf("%s %s %s", n.Name, n.Op, EncodeLiteral(n.Value))
	case Binary:
		left := compile(n.Left)
		right := compile(n.Right)
		// None is an identity element: an empty side contributes nothing,
		// and its operator must not dangle.
		if left == "" {
			return right
		}
		if right == "" {
			return left
		}
		// Both operands are always parenthesized so precedence stays
		// unambiguous at any nesting depth.
		return fmt.Sprintf("(%s) %s (%s)", left, n.Op, right)
	case Unary:
		operand := compile(n.Operand)
		if operand == "" {
			return ""
		}
		return fmt.Sprintf("%s (%s)", n.Op, operand)
	default:
		return ""
	}
}
