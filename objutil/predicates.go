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

// Package objutil inspects, copies and flattens arbitrary values: nil and
// emptiness predicates, structural deep copy, and key/value conversion.
package objutil

import "reflect"

// IsNil reports whether v is nil. Unlike a plain comparison it also catches
// typed nils: nil pointers, maps, slices, channels, functions and interfaces
// wrapped in a non-nil interface value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	r := reflect.ValueOf(v)
	switch r.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return r.IsNil()
	}
	return false
}

// IsNilOrEmpty reports whether v is nil or an empty string, slice, array or map.
func IsNilOrEmpty(v any) bool {
	if IsNil(v) {
		return true
	}
	r := reflect.ValueOf(v)
	switch r.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return r.Len() == 0
	}
	return false
}

// Empty reports whether the slice has no elements. A nil slice is empty.
func Empty[T any](s []T) bool { return len(s) == 0 }

// NotEmpty reports whether the slice has at least one element.
func NotEmpty[T any](s []T) bool { return len(s) > 0 }

func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}

// IsFunc reports whether v is a function value.
func IsFunc(v any) bool { return kindOf(v) == reflect.Func }

// IsMap reports whether v is a map.
func IsMap(v any) bool { return kindOf(v) == reflect.Map }

// IsSlice reports whether v is a slice or an array.
func IsSlice(v any) bool {
	k := kindOf(v)
	return k == reflect.Slice || k == reflect.Array
}

// IsStruct reports whether v is a struct or a pointer to one.
func IsStruct(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// TypeName returns the declared name of v's dynamic type, with pointers
// dereferenced, or the type's string form for unnamed types. Nil yields "".
func TypeName(v any) string {
	if v == nil {
		return ""
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
