// # internal/heuristic/blocks_test.go
package heuristic

import (
	"strings"
	"testing"
)

func TestFindBlockEndExact(t *testing.T) {
	p := braceTestProfile()
	lines := []string{
		"fn f() {",
		`    s = "}"`,
		"    // }",
		"}",
	}
	end, exact := findBlockEnd(p, lines, 0)
	if !exact {
		t.Fatal("expected exact resolution")
	}
	if end != 3 {
		t.Errorf("end = %d, want 3", end)
	}
}

func TestFindBlockEndNestedBraces(t *testing.T) {
	p := braceTestProfile()
	lines := []string{
		"fn f() {",
		"    if x {",
		"    }",
		"}",
		"trailing",
	}
	end, exact := findBlockEnd(p, lines, 0)
	if !exact || end != 3 {
		t.Errorf("end = %d exact = %v, want 3 true", end, exact)
	}
}

func TestFindBlockEndCharBudget(t *testing.T) {
	p := braceTestProfile()
	p.Limits.MaxBlockScanChars = 5

	lines := []string{"fn f() {", "a", "b", "c", "d", "e", "f", "}"}
	end, exact := findBlockEnd(p, lines, 0)
	if exact {
		t.Fatal("budget exhaustion must fall back to the estimate")
	}
	if end != 5 {
		t.Errorf("estimated end = %d, want startLine+5", end)
	}
}

func TestFindBlockEndSearchWindow(t *testing.T) {
	p := braceTestProfile()
	p.Limits.MaxBlockSearchLines = 2

	lines := []string{"fn f() {", "a", "b", "c", "d", "e", "f", "}"}
	end, exact := findBlockEnd(p, lines, 0)
	if exact {
		t.Fatal("window exhaustion must fall back to the estimate")
	}
	if end != 5 {
		t.Errorf("estimated end = %d, want startLine+5", end)
	}
}

func TestFindBlockEndEscapedQuote(t *testing.T) {
	p := braceTestProfile()
	lines := []string{
		"fn f() {",
		`    s = "a \" }"`,
		"}",
	}
	end, exact := findBlockEnd(p, lines, 0)
	if !exact || end != 2 {
		t.Errorf("end = %d exact = %v, want 2 true", end, exact)
	}
}

func TestFindBlockEndMultiLineComment(t *testing.T) {
	p := braceTestProfile()
	lines := []string{
		"fn f() {",
		"    /*",
		"    }",
		"    */",
		"}",
	}
	end, exact := findBlockEnd(p, lines, 0)
	if !exact || end != 4 {
		t.Errorf("end = %d exact = %v, want 4 true", end, exact)
	}
}

func TestIndentBlockEndSkipsBlanksAndComments(t *testing.T) {
	p := indentTestProfile()
	lines := []string{
		"def f():",
		"    a = 1",
		"",
		"    # comment at any indent",
		"    b = 2",
		"c = 3",
	}
	if end := indentBlockEnd(p, lines, 0); end != 4 {
		t.Errorf("end = %d, want 4", end)
	}
}

func TestIndentBlockEndAtEOF(t *testing.T) {
	p := indentTestProfile()
	lines := []string{"def f():", "    a = 1"}
	if end := indentBlockEnd(p, lines, 0); end != 1 {
		t.Errorf("end = %d, want 1", end)
	}
}

func TestKeywordBlockEndCountsTrailingDo(t *testing.T) {
	p := keywordTestProfile()
	lines := []string{
		"def render",
		"  list.each do",
		"    draw",
		"  end",
		"end",
	}
	if end := keywordBlockEnd(p, lines, 0); end != 4 {
		t.Errorf("end = %d, want 4", end)
	}
}

func TestKeywordBlockEndCountsDoWithBlockParams(t *testing.T) {
	p := keywordTestProfile()
	lines := []string{
		"def each",
		"  widgets.each do |w|",
		"    yield w",
		"  end",
		"end",
	}
	if end := keywordBlockEnd(p, lines, 0); end != 4 {
		t.Errorf("end = %d, want 4", end)
	}
}

func TestKeywordBlockEndIgnoresComments(t *testing.T) {
	p := keywordTestProfile()
	lines := []string{
		"def render",
		"  # end",
		"end",
	}
	if end := keywordBlockEnd(p, lines, 0); end != 2 {
		t.Errorf("end = %d, want 2", end)
	}
}

func TestIndentWidth(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{"x", 0},
		{"  x", 2},
		{"\tx", 4},
		{"\t  x", 6},
		{"", 0},
		{"    ", 4},
	}
	for _, c := range cases {
		if got := indentWidth(c.line); got != c.want {
			t.Errorf("indentWidth(%q) = %d, want %d", c.line, got, c.want)
		}
	}
}

func TestResolveExtentClampsToRange(t *testing.T) {
	p := braceTestProfile()
	lines := strings.Split("fn f() {\na\nb\n}", "\n")
	if end := resolveExtent(p, lines, 0, 2); end != 2 {
		t.Errorf("end = %d, want clamp to 2", end)
	}
}
