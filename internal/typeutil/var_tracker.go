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

package typeutil

import (
	"github.com/wdamron/hm/types"
)

const blockSize = 16

// VarTracker creates fresh type-variables with sequential ids.
//
// Ids are unique for the lifetime of the tracker, until it is reset. A tracker cannot be used concurrently.
type VarTracker struct {
	NextId int
	count  int
	block  []types.Var
}

// Reset the count of created type-variables. NextId is not reset.
func (vt *VarTracker) Reset() { vt.count, vt.block = 0, nil }

// Count returns the number of type-variables created since the last reset.
func (vt *VarTracker) Count() int { return vt.count }

// New creates a type-variable with the next unused id.
func (vt *VarTracker) New() *types.Var {
	if len(vt.block) == 0 {
		vt.block = make([]types.Var, blockSize)
	}
	tv := &vt.block[0]
	vt.block = vt.block[1:]
	tv.SetId(vt.NextId)
	vt.NextId, vt.count = vt.NextId+1, vt.count+1
	return tv
}

// NewList creates count type-variables with consecutive ids.
func (vt *VarTracker) NewList(count int) []*types.Var {
	vars := make([]*types.Var, count)
	for i := range vars {
		vars[i] = vt.New()
	}
	return vars
}
