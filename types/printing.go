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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

type typePrinter struct {
	sb strings.Builder
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) String() string {
	s := p.sb.String()
	p.sb.Reset()
	printerPool.Put(p)
	return s
}

// VarName returns the display name of a type-variable id: `t` followed by the id in hexadecimal.
//
// Display names are for debugging only; compare ids, not names.
func VarName(id int) string {
	if id < 0 {
		return "t-" + strconv.FormatUint(uint64(-id), 16)
	}
	return "t" + strconv.FormatUint(uint64(id), 16)
}

// TypeString returns a string representation of a Type.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	return p.String()
}

// SchemeString returns a string representation of a Scheme.
//
// A monomorphic scheme is printed as its type; otherwise generic type-variables are listed
// in ascending order of ids: `\t0, t1. t0 -> t1 -> t0`
func SchemeString(s *Scheme) string {
	if s == nil {
		return "<nil>"
	}
	p := newTypePrinter()
	if s.Vars.Len() > 0 {
		p.sb.WriteByte('\\')
		i := 0
		s.Vars.Range(func(id int) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(VarName(id))
			i++
			return true
		})
		p.sb.WriteString(". ")
	}
	typeString(p, false, s.Type)
	return p.String()
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Number:
		p.sb.WriteString("Number")

	case *Var:
		p.sb.WriteString(VarName(t.id))

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Arg)
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}

	case nil:
		p.sb.WriteString("<nil>")
	}
}
