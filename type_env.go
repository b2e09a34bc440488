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
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/hm/types"
)

var emptyEnvMap = immutable.NewSortedMap(nil)

// TypeEnv is an immutable type-environment containing mappings from identifiers to type schemes.
//
// Extending an environment never modifies it, so a type-environment may be shared
// across threads and across inference contexts.
type TypeEnv struct {
	m         *immutable.SortedMap
	nextVarId int
}

// Create an empty type-environment.
func NewTypeEnv() *TypeEnv { return &TypeEnv{m: emptyEnvMap} }

func (e *TypeEnv) imm() *immutable.SortedMap {
	if e == nil || e.m == nil {
		return emptyEnvMap
	}
	return e.m
}

// Get the number of identifiers bound in the environment.
func (e *TypeEnv) Len() int { return e.imm().Len() }

// NextVarId returns an id greater than the id of every type-variable declared within the environment.
// Inference within the environment creates type-variables starting from this id.
func (e *TypeEnv) NextVarId() int {
	if e == nil {
		return 0
	}
	return e.nextVarId
}

// Extend returns an environment which binds name to s, shadowing any existing binding for name.
// The existing environment is not modified.
func (e *TypeEnv) Extend(name string, s *types.Scheme) *TypeEnv {
	next := e.NextVarId()
	if id := types.MaxVarId(s.Type); id >= next {
		next = id + 1
	}
	if ids := s.Vars.Ids(); len(ids) > 0 && ids[len(ids)-1] >= next {
		next = ids[len(ids)-1] + 1
	}
	return &TypeEnv{m: e.imm().Set(name, s), nextVarId: next}
}

// Declare a type for an identifier. All type-variables within t will be generalized.
func (e *TypeEnv) Declare(name string, t types.Type) *TypeEnv {
	return e.Extend(name, types.NewScheme(types.FreeVars(t), t))
}

// Declare a type for an identifier. Type-variables will not be generalized.
func (e *TypeEnv) DeclareInvariant(name string, t types.Type) *TypeEnv {
	return e.Extend(name, types.Mono(t))
}

// Lookup the type scheme for an identifier.
func (e *TypeEnv) Lookup(name string) (*types.Scheme, bool) {
	s, ok := e.imm().Get(name)
	if !ok {
		return nil, false
	}
	return s.(*types.Scheme), true
}

// Iterate over bindings in the environment, sorted by identifier.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(name string, s *types.Scheme) bool) {
	iter := e.imm().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(*types.Scheme)) {
			return
		}
	}
}

// FreeVars returns the type-variables which are free in at least one scheme within the environment.
func (e *TypeEnv) FreeVars() types.VarSet {
	b := types.NewVarSetBuilder()
	e.Range(func(_ string, s *types.Scheme) bool {
		s.FreeVars().Range(func(id int) bool {
			b.Add(id)
			return true
		})
		return true
	})
	return b.Build()
}

// Apply returns an environment with sub applied to the free type-variables of every scheme.
func (e *TypeEnv) Apply(sub types.Subst) *TypeEnv {
	if sub.Len() == 0 || e.Len() == 0 {
		return e
	}
	b := immutable.NewSortedMapBuilder(e.imm())
	e.Range(func(name string, s *types.Scheme) bool {
		if applied := s.Apply(sub); applied != s {
			b.Set(name, applied)
		}
		return true
	})
	return &TypeEnv{m: b.Map(), nextVarId: e.NextVarId()}
}
