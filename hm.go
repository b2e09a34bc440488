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

// hm provides Hindley-Milner type inference for a minimal lambda calculus with let-polymorphism.
//
// Expressions are built from variables, applications, single-parameter lambdas, non-recursive let-bindings,
// and numeric literals. Inference follows Algorithm W: types are inferred bottom-up as substitutions,
// let-bound values are generalized into type schemes, and each use of a let-bound variable is instantiated
// with fresh type-variables.
//
// Type-variables are created from a counter within each inference context, so inferred types are
// deterministic across runs. Unification performs an occurs-check; implicitly recursive types are rejected.
//
// Links:
//
// * Hindley-Milner type system (Wikipedia): https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// * Principal type-schemes for functional programs (Damas, Milner, 1982): https://doi.org/10.1145/582153.582176
package hm
