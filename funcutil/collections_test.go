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

import (
	"reflect"
	"strconv"
	"testing"
)

func TestMapAndIter(t *testing.T) {
	a := []int{1, 2, 3}
	b := Map(a, strconv.Itoa)
	if !reflect.DeepEqual(b, []string{"1", "2", "3"}) {
		t.Errorf("Map returned %v", b)
	}
	Iter(a, func(x int) int { return x * x })
	if !reflect.DeepEqual(a, []int{1, 4, 9}) {
		t.Errorf("Iter left %v", a)
	}
}

func TestFilterExistsForall(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }
	a := []int{1, 2, 3, 4}
	if got := Filter(a, even); !reflect.DeepEqual(got, []int{2, 4}) {
		t.Errorf("Filter returned %v", got)
	}
	if !Exists(a, even) {
		t.Errorf("Exists missed an even element in %v", a)
	}
	if Forall(a, even) {
		t.Errorf("Forall held on %v", a)
	}
	if !Forall([]int{2, 4}, even) {
		t.Errorf("Forall failed on all-even slice")
	}
	if Exists(nil, even) {
		t.Errorf("Exists held on empty slice")
	}
}

func TestContains(t *testing.T) {
	a := []string{"x", "y"}
	if !Contains(a, "y") || Contains(a, "z") {
		t.Errorf("Contains misjudged membership in %v", a)
	}
}

func TestFindMap(t *testing.T) {
	a := []int{10, 25, 31}
	found := FindMap(a, strconv.Itoa, func(s string) bool { return len(s) == 2 && s[0] == '2' })
	if found.IsNone() || found.Value() != "25" {
		t.Errorf("FindMap returned %v, want 25", found)
	}
	missing := FindMap(a, strconv.Itoa, func(string) bool { return false })
	if missing.IsSome() {
		t.Errorf("FindMap found %v in a predicate that never holds", missing)
	}
}

func TestMergeAndUnion(t *testing.T) {
	a := map[string]int{"x": 1, "y": 2}
	Merge(a, map[string]int{"y": 3, "z": 4}, func(p int, q int) int { return p + q })
	if !reflect.DeepEqual(a, map[string]int{"x": 1, "y": 5, "z": 4}) {
		t.Errorf("Merge left %v", a)
	}
	s := Union(map[int]bool{1: true, 2: false}, map[int]bool{2: true, 3: true})
	for _, x := range []int{1, 2, 3} {
		if !s[x] {
			t.Errorf("Union lost element %d in %v", x, s)
		}
	}
}

func TestSetToOrderedSlice(t *testing.T) {
	set := map[int]bool{3: true, 1: true, 2: false, 5: true}
	if got := SetToOrderedSlice(set); !reflect.DeepEqual(got, []int{1, 3, 5}) {
		t.Errorf("SetToOrderedSlice returned %v, want [1 3 5]", got)
	}
}

func TestReverse(t *testing.T) {
	a := []int{1, 2, 3, 4}
	Reverse(a)
	if !reflect.DeepEqual(a, []int{4, 3, 2, 1}) {
		t.Errorf("Reverse left %v", a)
	}
	var empty []int
	Reverse(empty)
}
