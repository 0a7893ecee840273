/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filter

import (
	"testing"
)

func mustCompile(t *testing.T, f Filter) string {
	t.Helper()
	s, ok := Compile(f)
	if !ok {
		t.Fatalf("expected a filter string, got absence")
	}
	return s
}

func TestCompileEmpty(t *testing.T) {
	if s, ok := Compile(NoFilter()); ok {
		t.Fatalf("expected absence for empty filter, got %q", s)
	}
	if s, ok := Compile(nil); ok {
		t.Fatalf("expected absence for nil filter, got %q", s)
	}
}

func TestCompileColumn(t *testing.T) {
	got := mustCompile(t, Gt("Age", 5))
	if got != "Age gt 5" {
		t.Errorf("got %q, want %q", got, "Age gt 5")
	}
}

func TestCompileAllComparisonOps(t *testing.T) {
	cases := []struct {
		f    Filter
		want string
	}{
		{Lt("A", 1), "A lt 1"},
		{Le("A", 1), "A le 1"},
		{Gt("A", 1), "A gt 1"},
		{Ge("A", 1), "A ge 1"},
		{Eq("A", 1), "A eq 1"},
		{Ne("A", 1), "A ne 1"},
	}
	for _, c := range cases {
		if got := mustCompile(t, c.f); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestCompileAnd(t *testing.T) {
	f := And(Eq("Name", "Bob"), Gt("Age", 5))
	got := mustCompile(t, f)
	want := "(Name eq 'Bob') and (Age gt 5)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCompileNot(t *testing.T) {
	got := mustCompile(t, Not(Eq("Active", true)))
	want := "not (Active eq true)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCompileNested(t *testing.T) {
	// (A or B) and C: both inner groups stay parenthesized.
	f := And(Or(Eq("A", 1), Eq("B", 2)), Eq("C", 3))
	got := mustCompile(t, f)
	want := "((A eq 1) or (B eq 2)) and (C eq 3)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIdentityElision(t *testing.T) {
	col := Gt("Age", 5)
	want := mustCompile(t, col)

	cases := map[string]Filter{
		"AndLeftEmpty":  And(NoFilter(), col),
		"AndRightEmpty": And(col, NoFilter()),
		"OrLeftEmpty":   Or(NoFilter(), col),
		"OrRightEmpty":  Or(col, NoFilter()),
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			if got := mustCompile(t, f); got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestAllEmptyLeavesCompileToAbsence(t *testing.T) {
	cases := map[string]Filter{
		"BinaryBothEmpty": And(NoFilter(), NoFilter()),
		"NotEmpty":        Not(NoFilter()),
		"DeepEmpty":       Or(And(NoFilter(), NoFilter()), Not(NoFilter())),
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			if s, ok := Compile(f); ok {
				t.Errorf("expected absence, got %q", s)
			}
		})
	}
}

func TestNotOfPartiallyEmptyTree(t *testing.T) {
	// The empty side drops before negation applies.
	f := Not(And(NoFilter(), Eq("A", 1)))
	got := mustCompile(t, f)
	want := "not (A eq 1)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
