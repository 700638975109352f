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

package formatutil

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	if got := Sanitize("a\x1b[31mb"); strings.ContainsRune(got, '\x1b') {
		t.Errorf("Sanitize left an escape byte in %q", got)
	}
	if got := Sanitize("plain"); got != "plain" {
		t.Errorf("Sanitize altered a plain string: %q", got)
	}
}

func TestColor_keepsContent(t *testing.T) {
	for name, f := range map[string]func(...any) string{"bold": Bold, "red": Red, "faint": Faint} {
		if got := f("x", 1); !strings.Contains(got, "x1") {
			t.Errorf("%s dropped its arguments: %q", name, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"hello world", 8, "hello..."},
		{"hello", 5, "hello"},
		{"hello", 2, "he"},
		{"héllo wörld", 8, "héllo..."},
		{"x", -1, ""},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.n); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}

func TestIndent(t *testing.T) {
	if got := Indent("a\nb", "  "); got != "  a\n  b" {
		t.Errorf("Indent returned %q", got)
	}
	if got := Indent("", "> "); got != "> " {
		t.Errorf("Indent of empty string returned %q", got)
	}
}
