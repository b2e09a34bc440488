// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package commands

import (
	"fmt"

	"github.com/wdamron/hm/ast"
	. "github.com/wdamron/hm/construct"
)

// Sample is a named expression printed by the hm command.
type Sample struct {
	Name string
	Expr ast.Expr
	// Fails is set for samples which are expected to fail inference.
	Fails bool
}

// Samples returns the built-in sample expressions, in printing order.
func Samples() []Sample {
	return []Sample{
		{Name: "number", Expr: Num(42)},
		{Name: "let-number", Expr: Let("x", Num(42), Var("x"))},
		{Name: "const-apply", Expr: Let("f", Lambda("x", Num(42)), App(Var("f"), Num(42)))},
		{Name: "id-apply", Expr: Let("f", Lambda("x", Var("x")), App(Var("f"), Num(42)))},
		{Name: "const-generalized", Expr: Let("f", Lambda("x", Num(42)), Let("y", App(Var("f"), Num(42)), Var("f")))},
		{Name: "curried-const-apply", Expr: Let("f", Func([]string{"x", "x"}, Num(42)), Apply(Var("f"), Num(42), Num(42)))},
		{Name: "id", Expr: Let("f", Lambda("x", Var("x")), Var("f"))},
		{Name: "id-generalized", Expr: Let("f", Lambda("x", Var("x")), Let("y", App(Var("f"), Num(42)), Var("f")))},
		{Name: "shadowed-param", Expr: Let("f", Func([]string{"x", "x"}, Var("x")), Var("f"))},
		{Name: "k", Expr: Let("f", Func([]string{"x", "y"}, Var("x")), Var("f"))},
		{Name: "recursive-let", Expr: Let("f", Lambda("x", App(Var("f"), Var("x"))), Var("f")), Fails: true},
		{Name: "id-of-id", Expr: Let("f", Lambda("x", Var("x")), Apply(Var("f"), Lambda("y", Var("y")), Num(1)))},
		{Name: "apply-number", Expr: App(Num(1), Num(2)), Fails: true},
		{Name: "self-apply", Expr: Lambda("f", App(Var("f"), Var("f"))), Fails: true},
	}
}

// SelectSamples returns the samples with the given names, in the order given.
// All samples are returned when no names are given.
func SelectSamples(names []string) ([]Sample, error) {
	all := Samples()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Sample, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}
	selected := make([]Sample, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown sample %q", name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}
