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

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

func (t *Var) TypeName() string    { return "Var" }
func (t *Number) TypeName() string { return "Number" }
func (t *Arrow) TypeName() string  { return "Arrow" }

// Type-variable: an unresolved type which may be bound during unification.
type Var struct {
	id int
}

// Create a new type-variable with the given id.
//
// Ids must be unique within an inference run; variables with equal ids are the same variable.
func NewVar(id int) *Var { return &Var{id: id} }

// Id returns the unique identifier of the type-variable.
func (tv *Var) Id() int { return tv.id }

// Set the unique identifier of the type-variable.
func (tv *Var) SetId(id int) { tv.id = id }

// Numeric type: `Number`
type Number struct{}

// NumberType is the shared instance of the numeric base type.
var NumberType = &Number{}

// Function type: `a -> b`
type Arrow struct {
	Arg    Type
	Return Type
}

// Equal reports whether a and b are structurally equal. Type-variables are compared by id.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.id == b.id
	case *Number:
		_, ok := b.(*Number)
		return ok
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.Arg, b.Arg) && Equal(a.Return, b.Return)
	}
	return false
}

// FreeVars returns the set of type-variables reachable within t.
func FreeVars(t Type) VarSet {
	b := NewVarSetBuilder()
	addFreeVars(b, t)
	return b.Build()
}

func addFreeVars(b VarSetBuilder, t Type) {
	switch t := t.(type) {
	case *Var:
		b.Add(t.id)
	case *Arrow:
		addFreeVars(b, t.Arg)
		addFreeVars(b, t.Return)
	}
}

// Occurs reports whether the type-variable with the given id appears within t.
func Occurs(id int, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.id == id
	case *Arrow:
		return Occurs(id, t.Arg) || Occurs(id, t.Return)
	}
	return false
}

// MaxVarId returns the largest type-variable id within t, or -1 if t contains no type-variables.
func MaxVarId(t Type) int {
	switch t := t.(type) {
	case *Var:
		return t.id
	case *Arrow:
		a, r := MaxVarId(t.Arg), MaxVarId(t.Return)
		if a > r {
			return a
		}
		return r
	}
	return -1
}
