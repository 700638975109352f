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

package funcutil

import "reflect"

// Curried is one step of a partial-application chain built by Curry or
// CurryN. Calling it returns either the wrapped function's result, once the
// arguments supplied across the whole chain reach the arity, or another
// Curried awaiting the remainder. Calling it with no arguments returns the
// same Curried: a zero-argument call is an idempotent no-op that consumes no
// arity.
//
// Every partial application closes over its own snapshot of the arguments
// supplied so far, so two chains branching from the same Curried never see
// each other's arguments.
type Curried func(args ...any) any

// Curry wraps fn so it can be applied one or more arguments at a time. The
// arity is read from fn's declared parameter count; use CurryN when that
// count is wrong for the purpose, e.g. for variadic functions or functions
// that already had arguments bound. To curry a method, pass a method value:
// the receiver stays bound through every partial application.
//
// Curry never validates fn. Wrapping a non-function succeeds and fails only
// when the chain completes and the call is attempted.
func Curry(fn any) Curried {
	arity := 0
	if t := reflect.TypeOf(fn); t != nil && t.Kind() == reflect.Func {
		arity = t.NumIn()
	}
	return CurryN(fn, arity)
}

// CurryN is Curry with an explicit arity. The wrapped function runs as soon
// as the accumulated argument count reaches arity, receiving every argument
// supplied along the chain in order. Arguments beyond arity are passed
// through to fn as well; whether fn accepts them is between fn and the call
// mechanism.
func CurryN(fn any, arity int) Curried {
	return curried(fn, arity, nil)
}

func curried(fn any, arity int, bound []any) Curried {
	var self Curried
	self = func(args ...any) any {
		if len(args) == 0 {
			return self
		}
		all := make([]any, 0, len(bound)+len(args))
		all = append(all, bound...)
		all = append(all, args...)
		if len(all) >= arity {
			return apply(fn, all)
		}
		return curried(fn, arity, all)
	}
	return self
}

// apply invokes fn with args through reflection. A nil or non-function fn
// panics here, at invocation time.
func apply(fn any, args []any) any {
	f := reflect.ValueOf(fn)
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(paramType(f.Type(), i))
		} else {
			in[i] = reflect.ValueOf(a)
		}
	}
	out := f.Call(in)
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		res := make([]any, len(out))
		for i, v := range out {
			res[i] = v.Interface()
		}
		return res
	}
}

// paramType resolves the type of the i-th argument slot, unrolling the final
// variadic parameter when there is one.
func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}
