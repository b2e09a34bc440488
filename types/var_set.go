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

var emptyVarMap = immutable.NewSortedMap(nil)

// EmptyVarSet contains no type-variables.
var EmptyVarSet = VarSet{emptyVarMap}

// VarSet is an immutable set of type-variable ids. Ids are visited in ascending order.
type VarSet struct {
	m *immutable.SortedMap
}

// Create a VarSet containing the given ids.
func NewVarSet(ids ...int) VarSet {
	b := NewVarSetBuilder()
	for _, id := range ids {
		b.Add(id)
	}
	return b.Build()
}

func (s VarSet) imm() *immutable.SortedMap {
	if s.m == nil {
		return emptyVarMap
	}
	return s.m
}

// Get the number of ids in the set.
func (s VarSet) Len() int { return s.imm().Len() }

// Has reports whether id is in the set.
func (s VarSet) Has(id int) bool {
	_, ok := s.imm().Get(id)
	return ok
}

// Add returns a set which contains id, without mutating the existing set.
func (s VarSet) Add(id int) VarSet { return VarSet{s.imm().Set(id, struct{}{})} }

// Iterate over ids in the set, in ascending order.
// If f returns false, iteration will be stopped.
func (s VarSet) Range(f func(id int) bool) {
	iter := s.imm().Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		if !f(k.(int)) {
			return
		}
	}
}

// Ids returns the ids in the set, in ascending order.
func (s VarSet) Ids() []int {
	ids := make([]int, 0, s.Len())
	s.Range(func(id int) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// Union returns a set containing the ids of s and other.
func (s VarSet) Union(other VarSet) VarSet {
	if other.Len() == 0 {
		return s
	}
	b := s.Builder()
	other.Range(func(id int) bool {
		b.Add(id)
		return true
	})
	return b.Build()
}

// Difference returns a set containing the ids of s which are not in other.
func (s VarSet) Difference(other VarSet) VarSet {
	if s.Len() == 0 || other.Len() == 0 {
		return s
	}
	b := s.Builder()
	other.Range(func(id int) bool {
		b.Delete(id)
		return true
	})
	return b.Build()
}

// Convert the set to a builder for modification, without mutating the existing set.
func (s VarSet) Builder() VarSetBuilder {
	return VarSetBuilder{immutable.NewSortedMapBuilder(s.imm())}
}

// VarSetBuilder enables in-place updates of a set before finalization.
type VarSetBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewVarSetBuilder() VarSetBuilder {
	return VarSetBuilder{immutable.NewSortedMapBuilder(emptyVarMap)}
}

// Get the number of ids in the builder.
func (b VarSetBuilder) Len() int { return b.b.Len() }

// Add an id to the builder.
func (b VarSetBuilder) Add(id int) VarSetBuilder {
	b.b.Set(id, struct{}{})
	return b
}

// Delete an id from the builder.
func (b VarSetBuilder) Delete(id int) VarSetBuilder {
	b.b.Delete(id)
	return b
}

// Finalize the builder into an immutable set.
func (b VarSetBuilder) Build() VarSet { return VarSet{b.b.Map()} }
