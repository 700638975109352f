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

package objutil

import (
	"fmt"
	"reflect"
	"sort"
)

// KeyValue is one key/value pair of a flattened object.
type KeyValue struct {
	Key   string
	Value any
}

// ToKeyValues flattens a struct or map into key/value pairs. Exported struct
// fields appear in declaration order; map entries are sorted by key so the
// result is deterministic. Pointers are dereferenced, and nil yields nil.
func ToKeyValues(v any) ([]KeyValue, error) {
	if v == nil {
		return nil, nil
	}
	r := reflect.ValueOf(v)
	for r.Kind() == reflect.Ptr {
		if r.IsNil() {
			return nil, nil
		}
		r = r.Elem()
	}
	switch r.Kind() {
	case reflect.Struct:
		t := r.Type()
		var pairs []KeyValue
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			pairs = append(pairs, KeyValue{Key: f.Name, Value: r.Field(i).Interface()})
		}
		return pairs, nil
	case reflect.Map:
		keys := make([]string, 0, r.Len())
		byKey := make(map[string]any, r.Len())
		iter := r.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			keys = append(keys, k)
			byKey[k] = iter.Value().Interface()
		}
		sort.Strings(keys)
		pairs := make([]KeyValue, len(keys))
		for i, k := range keys {
			pairs[i] = KeyValue{Key: k, Value: byKey[k]}
		}
		return pairs, nil
	default:
		return nil, fmt.Errorf("objutil: cannot list key/values of %T", v)
	}
}

// FromKeyValues rebuilds a map from pairs. When a key repeats, the last
// occurrence wins.
func FromKeyValues(pairs []KeyValue) map[string]any {
	m := make(map[string]any, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Value
	}
	return m
}
