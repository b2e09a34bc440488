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

// Scheme is a type quantified over a set of generic type-variables: `\a, b. a -> b -> a`
//
// Type-variables within Type which are not in Vars are free, and must agree with the enclosing environment.
type Scheme struct {
	Vars VarSet
	Type Type
}

// Create a monomorphic scheme, with no generic type-variables.
func Mono(t Type) *Scheme { return &Scheme{Vars: EmptyVarSet, Type: t} }

// Create a scheme which quantifies t over vars.
func NewScheme(vars VarSet, t Type) *Scheme { return &Scheme{Vars: vars, Type: t} }

// IsPolymorphic reports whether the scheme quantifies over at least one type-variable.
func (s *Scheme) IsPolymorphic() bool { return s.Vars.Len() > 0 }

// FreeVars returns the type-variables of the scheme's type which are not generic.
func (s *Scheme) FreeVars() VarSet { return FreeVars(s.Type).Difference(s.Vars) }

// Apply rewrites the free type-variables of the scheme. Generic type-variables are not affected.
func (s *Scheme) Apply(sub Subst) *Scheme {
	if sub.Len() == 0 {
		return s
	}
	t := sub.Without(s.Vars).Apply(s.Type)
	if t == s.Type {
		return s
	}
	return &Scheme{Vars: s.Vars, Type: t}
}

// Instantiate replaces each generic type-variable of the scheme with a fresh type-variable created by newVar.
// Fresh type-variables are created in ascending order of the generic ids they replace.
//
// Each use of a polymorphic binding must be instantiated separately, so that distinct uses never unify with each other.
func (s *Scheme) Instantiate(newVar func() *Var) Type {
	if s.Vars.Len() == 0 {
		return s.Type
	}
	sub := EmptySubst
	s.Vars.Range(func(id int) bool {
		sub = sub.Set(id, newVar())
		return true
	})
	return sub.Apply(s.Type)
}
