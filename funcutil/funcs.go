// Copyright the Ossature project contributors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package funcutil provides currying and function-composition helpers shared
// across the framework, together with the generic collection and option
// utilities that usually travel with them.
package funcutil

// First returns the first of two arguments
func First[T any](x T, _ T) T { return x }

// Second returns the second of two arguments
func Second[T any](_ T, y T) T { return y }

// Identity returns its argument unchanged.
func Identity[T any](x T) T { return x }

// Const returns a function that ignores its argument and always returns x.
func Const[S any, T any](x T) func(S) T {
	return func(S) T { return x }
}

// Compose (f,g) returns a function h: x -> g(f(x))
func Compose[T any, S any, R any](f func(T) S, g func(S) R) func(T) R {
	return func(x T) R { return g(f(x)) }
}

// Pipe chains fns left to right: Pipe(f1, f2)(x) is f2(f1(x)). Application
// order follows the argument order, not the right-to-left convention of
// classical composition. With no functions Pipe returns the identity.
// Building the chain has no effect; the fns run only when the result is
// called, and a panic in any of them aborts the rest of the chain.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		for _, f := range fns {
			x = f(x)
		}
		return x
	}
}

// Curry2 is for currying functions. with two arguments
func Curry2[T any, S any, R any](f func(T, S) R, x T) func(S) R {
	return func(s S) R { return f(x, s) }
}

// Curry3 is for currying functions. with three arguments
func Curry3[T any, S any, R any, Q any](f func(T, S, R) Q, x T) func(S, R) Q {
	return func(s S, r R) Q { return f(x, s, r) }
}

// Curry2All turns a two-argument function into a chain of one-argument calls.
func Curry2All[T any, S any, R any](f func(T, S) R) func(T) func(S) R {
	return func(x T) func(S) R {
		return func(s S) R { return f(x, s) }
	}
}

// Curry3All turns a three-argument function into a chain of one-argument calls.
func Curry3All[T any, S any, R any, Q any](f func(T, S, R) Q) func(T) func(S) func(R) Q {
	return func(x T) func(S) func(R) Q {
		return func(s S) func(R) Q {
			return func(r R) Q { return f(x, s, r) }
		}
	}
}

// Partial2R binds the second argument of a two-argument function.
func Partial2R[T any, S any, R any](f func(T, S) R, s S) func(T) R {
	return func(x T) R { return f(x, s) }
}
