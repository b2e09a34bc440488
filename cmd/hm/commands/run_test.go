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

package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/types"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSampleNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Samples() {
		require.False(t, seen[s.Name], "duplicate sample %q", s.Name)
		seen[s.Name] = true
	}
}

func TestSelectSamples(t *testing.T) {
	all, err := SelectSamples(nil)
	require.NoError(t, err)
	require.Len(t, all, len(Samples()))

	picked, err := SelectSamples([]string{"k", "id"})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, "k", picked[0].Name)
	assert.Equal(t, "id", picked[1].Name)

	_, err = SelectSamples([]string{"nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestInferSamplesMatchesExpectations(t *testing.T) {
	results, err := InferSamples(context.Background(), Samples(), 4)
	require.NoError(t, err)
	require.Len(t, results, len(Samples()))
	for i, r := range results {
		assert.Equal(t, Samples()[i].Name, r.Sample.Name, "results must keep sample order")
		assert.False(t, r.Unexpected(), "sample %s: %v", r.Sample.Name, r.Err)
	}
}

func TestInferSamplesIsDeterministic(t *testing.T) {
	serial, err := InferSamples(context.Background(), Samples(), 1)
	require.NoError(t, err)
	concurrent, err := InferSamples(context.Background(), Samples(), 8)
	require.NoError(t, err)
	for i := range serial {
		require.Equal(t, serial[i].Err != nil, concurrent[i].Err != nil, serial[i].Sample.Name)
		if serial[i].Err != nil {
			assert.Nil(t, concurrent[i].Scheme)
			continue
		}
		assert.Equal(t, types.SchemeString(serial[i].Scheme), types.SchemeString(concurrent[i].Scheme))
		assert.Equal(t, serial[i].VarCount, concurrent[i].VarCount)
	}
}

func TestInferSamplesErrorCauses(t *testing.T) {
	samples, err := SelectSamples([]string{"recursive-let", "apply-number", "self-apply"})
	require.NoError(t, err)
	results, err := InferSamples(context.Background(), samples, 2)
	require.NoError(t, err)
	assert.True(t, errors.Is(results[0].Err, hm.ErrUnboundVariable))
	assert.True(t, errors.Is(results[1].Err, hm.ErrTypeMismatch))
	assert.True(t, errors.Is(results[2].Err, hm.ErrRecursiveType))
}

func TestInferSamplesRejectsBadParallelism(t *testing.T) {
	_, err := InferSamples(context.Background(), Samples(), 0)
	require.Error(t, err)
}

func TestInferSamplesHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := InferSamples(ctx, Samples(), 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunPrintsSchemes(t *testing.T) {
	stdout, stderr, err := execute(t, "--no-color", "-p", "2", "number", "id", "k", "id-of-id")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, strings.Join([]string{
		`42 : Number`,
		`let f = \x. x in f : \t1. t1 -> t1`,
		`let f = \x. \y. x in f : \t2, t3. t2 -> t3 -> t2`,
		`let f = \x. x in f (\y. y) 1 : Number`,
		``,
	}, "\n"), stdout)
}

func TestRunPrintsErrors(t *testing.T) {
	stdout, _, err := execute(t, "--no-color", "apply-number", "recursive-let")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		`1 2 : error: Failed to unify Number with Number -> t0 in 1 2`,
		`let f = \x. f x in f : error: Variable f not found`,
		``,
	}, "\n"), stdout)
}

func TestRunVerbose(t *testing.T) {
	_, stderr, err := execute(t, "--no-color", "-v", "id")
	require.NoError(t, err)
	assert.Equal(t, "id: 2 type-variables\n", stderr)
}

func TestRunList(t *testing.T) {
	stdout, _, err := execute(t, "--list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(Samples()))
	assert.Equal(t, "number", lines[0])
}

func TestRunUnknownSample(t *testing.T) {
	_, _, err := execute(t, "missing")
	require.Error(t, err)
}
