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

func (ti *InferenceContext) fail(e ast.Expr, err error) error {
	ti.invalid, ti.err = e, &InferenceError{Err: err, Expr: e}
	return ti.err
}

// infer returns a substitution and a type for e within env. The type has the substitution applied.
//
// Substitutions from inferred sub-expressions are applied to the environment before inferring
// subsequent sub-expressions.
func (ti *InferenceContext) infer(env *TypeEnv, e ast.Expr) (types.Subst, types.Type, error) {
	switch e := e.(type) {
	case *ast.Number:
		return types.EmptySubst, types.NumberType, nil

	case *ast.Var:
		s, ok := env.Lookup(e.Name)
		if !ok {
			return types.EmptySubst, nil, ti.fail(e, ErrUnboundVariable)
		}
		return types.EmptySubst, s.Instantiate(ti.varTracker.New), nil

	case *ast.Lambda:
		// Lambda parameters are never generalized:
		argType := ti.varTracker.New()
		sub, retType, err := ti.infer(env.Extend(e.Param, types.Mono(argType)), e.Body)
		if err != nil {
			return types.EmptySubst, nil, err
		}
		return sub, sub.Apply(&types.Arrow{Arg: argType, Return: retType}), nil

	case *ast.App:
		funcSub, funcType, err := ti.infer(env, e.Func)
		if err != nil {
			return types.EmptySubst, nil, err
		}
		argSub, argType, err := ti.infer(env.Apply(funcSub), e.Arg)
		if err != nil {
			return types.EmptySubst, nil, err
		}
		retType := ti.varTracker.New()
		callSub, err := Unify(argSub.Apply(funcType), &types.Arrow{Arg: argType, Return: retType})
		if err != nil {
			return types.EmptySubst, nil, ti.fail(e, err)
		}
		sub := callSub.Compose(argSub.Compose(funcSub))
		return sub, sub.Apply(retType), nil

	case *ast.Let:
		valueSub, valueType, err := ti.infer(env, e.Value)
		if err != nil {
			return types.EmptySubst, nil, err
		}
		env = env.Apply(valueSub)
		scheme := Generalize(env, valueType)
		bodySub, bodyType, err := ti.infer(env.Extend(e.Var, scheme), e.Body)
		if err != nil {
			return types.EmptySubst, nil, err
		}
		sub := bodySub.Compose(valueSub)
		return sub, sub.Apply(bodyType), nil

	case nil:
		ti.invalid, ti.err = nil, errors.New("Empty expression")
		return types.EmptySubst, nil, ti.err
	}

	ti.invalid, ti.err = e, errors.New("Unhandled expression ("+e.ExprName()+")")
	return types.EmptySubst, nil, ti.err
}
