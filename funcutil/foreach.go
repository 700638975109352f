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

// ForEachCurry is sequence iteration in curried form, with arity 2: the
// callback comes first, the sequence second. Supplying only the callback
// returns a Curried awaiting the sequence; supplying both runs the iteration
// immediately. The callback is invoked once per element in sequence order and
// its results are discarded. An empty sequence produces no invocations.
var ForEachCurry = CurryN(forEachAny, 2)

// forEachAny iterates a slice or array value, calling fn on each element.
// Elements of interface-typed sequences are unwrapped so a typed callback can
// receive them.
func forEachAny(fn any, seq any) any {
	f := reflect.ValueOf(fn)
	want := f.Type().In(0)
	s := reflect.ValueOf(seq)
	for i := 0; i < s.Len(); i++ {
		x := s.Index(i)
		if x.Kind() == reflect.Interface && x.Type() != want {
			x = x.Elem()
		}
		f.Call([]reflect.Value{x})
	}
	return nil
}

// ForEach calls f on each element of s, in order.
func ForEach[T any](f func(T), s []T) {
	for _, x := range s {
		f(x)
	}
}

// ForEachWith returns ForEach with the callback already supplied.
func ForEachWith[T any](f func(T)) func([]T) {
	return func(s []T) { ForEach(f, s) }
}
