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

package hm

import (
	"errors"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

var (
	// A variable was referenced without a binding in the type-environment.
	ErrUnboundVariable = errors.New("unbound variable")
	// Two types with incompatible shapes were unified.
	ErrTypeMismatch = errors.New("type mismatch")
	// A type-variable was unified with a type containing itself.
	ErrRecursiveType = errors.New("implicitly recursive types are not supported")
)

// UnificationError is returned when two types cannot be unified.
type UnificationError struct {
	// ErrTypeMismatch or ErrRecursiveType
	Err error
	// The innermost pair of types which failed to unify
	A, B types.Type
}

func (e *UnificationError) Error() string {
	if e.Err == ErrRecursiveType {
		return "Implicitly recursive type: " + types.TypeString(e.A) + " occurs in " + types.TypeString(e.B)
	}
	return "Failed to unify " + types.TypeString(e.A) + " with " + types.TypeString(e.B)
}

func (e *UnificationError) Unwrap() error { return e.Err }

// InferenceError is returned when inference fails. The first failure aborts inference.
//
// Use errors.Is with ErrUnboundVariable, ErrTypeMismatch or ErrRecursiveType to distinguish causes.
type InferenceError struct {
	// ErrUnboundVariable or a *UnificationError
	Err error
	// The expression which caused inference to fail
	Expr ast.Expr
}

func (e *InferenceError) Error() string {
	if v, ok := e.Expr.(*ast.Var); ok && e.Err == ErrUnboundVariable {
		return "Variable " + v.Name + " not found"
	}
	return e.Err.Error() + " in " + ast.ExprString(e.Expr)
}

func (e *InferenceError) Unwrap() error { return e.Err }
