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
	"github.com/wdamron/hm/types"
)

// Unify finds a substitution which makes a and b structurally equal.
//
// The returned substitution binds each type-variable at most once, and no bound type-variable
// occurs within the types of the substitution.
func Unify(a, b types.Type) (types.Subst, error) {
	avar, _ := a.(*types.Var)
	bvar, _ := b.(*types.Var)
	switch {
	case avar != nil && bvar != nil && avar.Id() == bvar.Id():
		return types.EmptySubst, nil
	case avar != nil:
		return bindVar(avar, b)
	case bvar != nil:
		return bindVar(bvar, a)
	}

	switch a := a.(type) {
	case *types.Number:
		if _, ok := b.(*types.Number); ok {
			return types.EmptySubst, nil
		}

	case *types.Arrow:
		b, ok := b.(*types.Arrow)
		if !ok {
			break
		}
		argSub, err := Unify(a.Arg, b.Arg)
		if err != nil {
			return types.EmptySubst, err
		}
		// Bindings from the argument types must be applied before unifying the return types:
		retSub, err := Unify(argSub.Apply(a.Return), argSub.Apply(b.Return))
		if err != nil {
			return types.EmptySubst, err
		}
		return retSub.Compose(argSub), nil
	}

	return types.EmptySubst, &UnificationError{Err: ErrTypeMismatch, A: a, B: b}
}

func bindVar(tv *types.Var, t types.Type) (types.Subst, error) {
	if types.Occurs(tv.Id(), t) {
		return types.EmptySubst, &UnificationError{Err: ErrRecursiveType, A: tv, B: t}
	}
	return types.SingletonSubst(tv.Id(), t), nil
}
