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
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Result is the outcome of inferring a single sample.
type Result struct {
	Sample   Sample
	Scheme   *types.Scheme
	Err      error
	VarCount int
}

// Unexpected reports whether the outcome differs from the sample's expectation.
func (r Result) Unexpected() bool { return (r.Err != nil) != r.Sample.Fails }

// InferSamples infers each sample, running at most parallel inferences at once.
// Results are returned in sample order. Each worker owns its InferenceContext.
func InferSamples(ctx context.Context, samples []Sample, parallel int) ([]Result, error) {
	if parallel < 1 {
		return nil, fmt.Errorf("parallel must be at least 1, got %d", parallel)
	}
	results := make([]Result, len(samples))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range samples {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ic := hm.NewContext()
			scheme, err := ic.InferScheme(samples[i].Expr, nil)
			results[i] = Result{Sample: samples[i], Scheme: scheme, Err: err, VarCount: ic.VarCount()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type printer struct {
	expr   func(a ...interface{}) string
	scheme func(a ...interface{}) string
	fail   func(a ...interface{}) string
}

func newPrinter(noColor bool) printer {
	expr, scheme, fail := color.New(color.FgCyan), color.New(color.FgGreen), color.New(color.FgRed)
	if noColor {
		expr.DisableColor()
		scheme.DisableColor()
		fail.DisableColor()
	}
	return printer{expr: expr.SprintFunc(), scheme: scheme.SprintFunc(), fail: fail.SprintFunc()}
}

func (p printer) print(w io.Writer, r Result) {
	src := p.expr(ast.ExprString(r.Sample.Expr))
	if r.Err != nil {
		fmt.Fprintf(w, "%s : %s\n", src, p.fail("error: "+r.Err.Error()))
		return
	}
	fmt.Fprintf(w, "%s : %s\n", src, p.scheme(types.SchemeString(r.Scheme)))
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	out := cmd.OutOrStdout()
	if opts.list {
		for _, s := range Samples() {
			fmt.Fprintln(out, s.Name)
		}
		return nil
	}
	samples, err := SelectSamples(args)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := InferSamples(ctx, samples, opts.parallel)
	if err != nil {
		return err
	}
	p := newPrinter(opts.noColor)
	unexpected := 0
	for _, r := range results {
		p.print(out, r)
		if opts.verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d type-variables\n", r.Sample.Name, r.VarCount)
		}
		if r.Unexpected() {
			unexpected++
		}
	}
	if unexpected > 0 {
		return fmt.Errorf("%d sample(s) did not infer as expected", unexpected)
	}
	return nil
}
