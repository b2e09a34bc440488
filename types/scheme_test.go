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

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func counter(next int) func() *Var {
	return func() *Var {
		tv := NewVar(next)
		next++
		return tv
	}
}

func TestSchemeInstantiate(t *testing.T) {
	// \t0, t1. t0 -> t1 -> t2
	s := NewScheme(NewVarSet(0, 1), &Arrow{Arg: NewVar(0), Return: &Arrow{Arg: NewVar(1), Return: NewVar(2)}})
	fresh := counter(10)

	first := s.Instantiate(fresh)
	second := s.Instantiate(fresh)
	require.Equal(t, "ta -> tb -> t2", TypeString(first))
	require.Equal(t, "tc -> td -> t2", TypeString(second))

	// Uses of the same scheme share only free type-variables:
	require.Equal(t, []int{2}, sharedIds(FreeVars(first), FreeVars(second)))
	require.Equal(t, "t0 -> t1 -> t2", TypeString(s.Type), "scheme must not be mutated")
}

func sharedIds(a, b VarSet) []int {
	var ids []int
	a.Range(func(id int) bool {
		if b.Has(id) {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

func TestMonoInstantiate(t *testing.T) {
	ty := &Arrow{Arg: NewVar(0), Return: NumberType}
	s := Mono(ty)
	require.False(t, s.IsPolymorphic())
	require.Same(t, ty, s.Instantiate(func() *Var {
		t.Fatal("unexpected fresh type-variable")
		return nil
	}))
}

func TestSchemeFreeVars(t *testing.T) {
	s := NewScheme(NewVarSet(0), &Arrow{Arg: NewVar(0), Return: &Arrow{Arg: NewVar(1), Return: NewVar(3)}})
	require.Equal(t, []int{1, 3}, s.FreeVars().Ids())
	require.Equal(t, []int{0, 1, 3}, FreeVars(s.Type).Ids())
}

func TestSchemeApply(t *testing.T) {
	s := NewScheme(NewVarSet(0), &Arrow{Arg: NewVar(0), Return: NewVar(1)})
	sub := SingletonSubst(0, NumberType).Set(1, NumberType)

	applied := s.Apply(sub)
	require.Equal(t, `\t0. t0 -> Number`, SchemeString(applied))
	require.Equal(t, `\t0. t0 -> t1`, SchemeString(s))

	// Substitutions for generic type-variables only:
	require.Same(t, s, s.Apply(SingletonSubst(0, NumberType)))
}

func TestSchemeString(t *testing.T) {
	require.Equal(t, "Number", SchemeString(Mono(NumberType)))
	require.Equal(t, `\t3. t3 -> Number`, SchemeString(NewScheme(NewVarSet(3), &Arrow{Arg: NewVar(3), Return: NumberType})))
	require.Equal(t, `\t2, t1b. t1b -> t2 -> t1b`,
		SchemeString(NewScheme(NewVarSet(27, 2), &Arrow{Arg: NewVar(27), Return: &Arrow{Arg: NewVar(2), Return: NewVar(27)}})))
	require.Equal(t, "<nil>", SchemeString(nil))
}
