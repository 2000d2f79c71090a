// # internal/heuristic/modifiers_test.go
package heuristic

import (
	"reflect"
	"testing"
)

func TestExtractModifiers(t *testing.T) {
	vocab := Vocabulary("public", "static", "async")

	cases := []struct {
		line string
		want []string
	}{
		{"public static int x()", []string{"public", "static"}},
		{"static public static f()", []string{"public", "static"}},
		{"async def handler():", []string{"async"}},
		{"no keywords here", nil},
		// Whole tokens only: substrings never count.
		{"staticy publicist", nil},
		{"", nil},
	}
	for _, c := range cases {
		got := extractModifiers(c.line, vocab)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("extractModifiers(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestExtractModifiersEmptyVocabulary(t *testing.T) {
	if got := extractModifiers("public static", nil); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
