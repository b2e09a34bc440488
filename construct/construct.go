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

package construct

import (
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Types

// Create a new type-variable with the given id.
func TVar(id int) *types.Var {
	return types.NewVar(id)
}

// Numeric type: `Number`
func TNumber() *types.Number {
	return types.NumberType
}

// Function type: `a -> b`
func TArrow(arg, ret types.Type) *types.Arrow {
	return &types.Arrow{Arg: arg, Return: ret}
}

// Curried function type: `a -> b -> c`
func TArrowN(args []types.Type, ret types.Type) types.Type {
	t := ret
	for i := len(args) - 1; i >= 0; i-- {
		t = &types.Arrow{Arg: args[i], Return: t}
	}
	return t
}

// Type scheme: `\a, b. a -> b`
func TScheme(t types.Type, generic ...int) *types.Scheme {
	return types.NewScheme(types.NewVarSet(generic...), t)
}

// Expressions:

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Numeric literal: `42`
func Num(value int64) *ast.Number {
	return &ast.Number{Value: value}
}

// Application: `f x`
func App(f, arg ast.Expr) *ast.App {
	return &ast.App{Func: f, Arg: arg}
}

// Curried application: `f x y`, equivalent to `(f x) y`
func Apply(f ast.Expr, args ...ast.Expr) ast.Expr {
	e := f
	for _, arg := range args {
		e = &ast.App{Func: e, Arg: arg}
	}
	return e
}

// Abstraction: `\x. e`
func Lambda(param string, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Param: param, Body: body}
}

// Curried abstraction: `\x. \y. e`
func Func(params []string, body ast.Expr) ast.Expr {
	e := body
	for i := len(params) - 1; i >= 0; i-- {
		e = &ast.Lambda{Param: params[i], Body: e}
	}
	return e
}

// Let-binding: `let a = 42 in e`
func Let(varName string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Value: value, Body: body}
}
