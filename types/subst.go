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
	"github.com/benbjohnson/immutable"
)

var emptySubstMap = immutable.NewSortedMap(nil)

// EmptySubst contains no bindings.
var EmptySubst = Subst{emptySubstMap}

// Subst contains immutable bindings from type-variable ids to types.
type Subst struct {
	m *immutable.SortedMap
}

// Create a Subst with a single binding.
func SingletonSubst(id int, t Type) Subst {
	return Subst{emptySubstMap.Set(id, t)}
}

func (s Subst) imm() *immutable.SortedMap {
	if s.m == nil {
		return emptySubstMap
	}
	return s.m
}

// Get the number of bindings in the substitution.
func (s Subst) Len() int { return s.imm().Len() }

// Get the type bound to the type-variable id.
func (s Subst) Get(id int) (Type, bool) {
	t, ok := s.imm().Get(id)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set returns a substitution which binds id to t, without mutating the existing substitution.
func (s Subst) Set(id int, t Type) Subst { return Subst{s.imm().Set(id, t)} }

// Iterate over bindings in the substitution, in ascending order of ids.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(id int, t Type) bool) {
	iter := s.imm().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(int), v.(Type)) {
			return
		}
	}
}

// Apply rewrites t, replacing each type-variable bound in s with its binding.
// Type-variables without a binding are left unchanged, and t is not mutated.
func (s Subst) Apply(t Type) Type {
	if s.Len() == 0 {
		return t
	}
	return s.apply(t)
}

func (s Subst) apply(t Type) Type {
	switch t := t.(type) {
	case *Var:
		if bound, ok := s.Get(t.id); ok {
			return bound
		}
		return t
	case *Arrow:
		arg, ret := s.apply(t.Arg), s.apply(t.Return)
		if arg == t.Arg && ret == t.Return {
			return t
		}
		return &Arrow{Arg: arg, Return: ret}
	}
	return t
}

// Substitute rewrites t with the bindings in s. Substitute is equivalent to s.Apply(t).
func Substitute(t Type, s Subst) Type { return s.Apply(t) }

// Compose returns the substitution equivalent to applying prior and then s.
//
// s is applied to every type bound in prior; bindings in s take precedence over bindings in prior.
func (s Subst) Compose(prior Subst) Subst {
	switch {
	case s.Len() == 0:
		return prior
	case prior.Len() == 0:
		return s
	}
	b := immutable.NewSortedMapBuilder(prior.imm())
	prior.Range(func(id int, t Type) bool {
		b.Set(id, s.apply(t))
		return true
	})
	s.Range(func(id int, t Type) bool {
		b.Set(id, t)
		return true
	})
	return Subst{b.Map()}
}

// Without returns a substitution which excludes bindings for the ids in vars.
func (s Subst) Without(vars VarSet) Subst {
	if s.Len() == 0 || vars.Len() == 0 {
		return s
	}
	b := immutable.NewSortedMapBuilder(s.imm())
	vars.Range(func(id int) bool {
		b.Delete(id)
		return true
	})
	return Subst{b.Map()}
}
