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
	"github.com/wdamron/hm/internal/typeutil"
	"github.com/wdamron/hm/types"
)

// InferenceContext is a reusable context for type inference.
//
// An inference context cannot be used concurrently. Type-environments are immutable,
// so a single environment may be shared by contexts on separate threads.
type InferenceContext struct {
	varTracker typeutil.VarTracker
	needsReset bool

	err     error
	invalid ast.Expr
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext { return &InferenceContext{} }

func (ti *InferenceContext) reset() {
	ti.varTracker.Reset()
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// VarCount returns the number of type-variables created during the most recent inference.
func (ti *InferenceContext) VarCount() int { return ti.varTracker.Count() }

// Infer the type of expr within env. A nil env is treated as an empty type-environment.
//
// The returned type is fully substituted but not generalized; type-variables within it which are
// not free in env are unconstrained.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	_, t, _, err := ti.inferRoot(expr, env)
	return t, err
}

// Infer the type scheme of expr within env. A nil env is treated as an empty type-environment.
//
// The inferred type is generalized over every type-variable which is not free in env, so a let-free
// expression may still produce a polymorphic scheme: `\x. x` infers `\t0. t0 -> t0`. Use Infer for the
// ungeneralized type.
func (ti *InferenceContext) InferScheme(expr ast.Expr, env *TypeEnv) (*types.Scheme, error) {
	sub, t, env, err := ti.inferRoot(expr, env)
	if err != nil {
		return nil, err
	}
	return Generalize(env.Apply(sub), t), nil
}

func (ti *InferenceContext) inferRoot(root ast.Expr, env *TypeEnv) (types.Subst, types.Type, *TypeEnv, error) {
	if ti.needsReset {
		ti.reset()
	}
	if env == nil {
		env = NewTypeEnv()
	}
	if root == nil {
		ti.err, ti.needsReset = errors.New("Empty expression"), true
		return types.EmptySubst, nil, env, ti.err
	}
	ti.varTracker.NextId = env.NextVarId()
	sub, t, err := ti.infer(env, root)
	ti.needsReset = true
	if err != nil {
		return types.EmptySubst, nil, env, err
	}
	return sub, t, env, nil
}

// InferTypeScheme infers the most general type scheme of expr within an empty type-environment.
func InferTypeScheme(expr ast.Expr) (*types.Scheme, error) {
	return NewContext().InferScheme(expr, nil)
}
