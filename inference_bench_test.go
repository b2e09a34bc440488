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

package hm_test

import (
	"testing"

	. "github.com/wdamron/hm"
	. "github.com/wdamron/hm/construct"

	"github.com/wdamron/hm/ast"
)

func BenchmarkLetPolymorphism(b *testing.B) {
	ctx := NewContext()

	expr := Let("id", Lambda("x", Var("x")),
		Let("k", Func([]string{"x", "y"}, Var("x")),
			Let("a", Apply(Var("k"), Num(1), Apply(Var("id"), Var("id"))),
				Apply(Var("k"), Apply(Var("id"), Var("a")), Var("id")))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		s, err := ctx.InferScheme(expr, nil)
		if err != nil || s == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeepApplication(b *testing.B) {
	env := NewTypeEnv().Declare("succ", TArrow(TNumber(), TNumber()))
	ctx := NewContext()

	var expr ast.Expr = Num(0)
	for i := 0; i < 64; i++ {
		expr = App(Var("succ"), expr)
	}

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		t, err := ctx.Infer(expr, env)
		if err != nil || t == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnboundVariable(b *testing.B) {
	ctx := NewContext()
	expr := Let("f", Lambda("x", App(Var("f"), Var("x"))), Var("f"))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := ctx.InferScheme(expr, nil); err == nil {
			b.Fatal("expected error")
		}
	}
}
