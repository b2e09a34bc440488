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

func TestTypeString(t *testing.T) {
	a, b := NewVar(0), NewVar(255)
	cases := []struct {
		t    Type
		want string
	}{
		{NumberType, "Number"},
		{a, "t0"},
		{b, "tff"},
		{&Arrow{Arg: a, Return: NumberType}, "t0 -> Number"},
		{&Arrow{Arg: a, Return: &Arrow{Arg: b, Return: a}}, "t0 -> tff -> t0"},
		{&Arrow{Arg: &Arrow{Arg: a, Return: b}, Return: a}, "(t0 -> tff) -> t0"},
		{nil, "<nil>"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, TypeString(c.t))
	}
	require.Equal(t, "t-1", VarName(-1))
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(NumberType, &Number{}))
	require.True(t, Equal(NewVar(1), NewVar(1)))
	require.False(t, Equal(NewVar(1), NewVar(2)))
	require.True(t, Equal(&Arrow{Arg: NewVar(1), Return: NumberType}, &Arrow{Arg: NewVar(1), Return: NumberType}))
	require.False(t, Equal(&Arrow{Arg: NewVar(1), Return: NumberType}, &Arrow{Arg: NumberType, Return: NewVar(1)}))
	require.False(t, Equal(NumberType, NewVar(0)))
}

func TestFreeVars(t *testing.T) {
	ty := &Arrow{Arg: NewVar(4), Return: &Arrow{Arg: NewVar(1), Return: &Arrow{Arg: NewVar(4), Return: NumberType}}}
	require.Equal(t, []int{1, 4}, FreeVars(ty).Ids())
	require.Equal(t, 0, FreeVars(NumberType).Len())
	require.True(t, Occurs(4, ty))
	require.False(t, Occurs(2, ty))
	require.Equal(t, 4, MaxVarId(ty))
	require.Equal(t, -1, MaxVarId(NumberType))
}

func TestVarSet(t *testing.T) {
	s := NewVarSet(3, 1, 2)
	require.Equal(t, []int{1, 2, 3}, s.Ids())
	require.True(t, s.Has(2))
	require.False(t, s.Has(4))

	require.Equal(t, []int{1, 2, 3, 4}, s.Add(4).Ids())
	require.Equal(t, []int{1, 2, 3}, s.Ids(), "receiver must not be mutated")

	require.Equal(t, []int{1, 2, 3, 7}, s.Union(NewVarSet(2, 7)).Ids())
	require.Equal(t, []int{1, 3}, s.Difference(NewVarSet(2, 9)).Ids())
	require.Equal(t, s, s.Difference(EmptyVarSet))

	var zero VarSet
	require.Equal(t, 0, zero.Len())
	require.False(t, zero.Has(0))
	require.Equal(t, []int{5}, zero.Add(5).Ids())
}
