// # internal/diag/diag_test.go
package diag

import (
	"testing"

	"codeatlas/internal/grammar"
)

func TestCheckAllLanguagesFullyCapable(t *testing.T) {
	caps, err := CheckAll()
	if err != nil {
		t.Fatalf("check all: %v", err)
	}
	if len(caps) != len(grammar.Names()) {
		t.Fatalf("expected %d capability reports, got %d", len(grammar.Names()), len(caps))
	}

	for _, cap := range caps {
		if !cap.Functions {
			t.Errorf("%s: functions not detected", cap.Language)
		}
		if !cap.Types {
			t.Errorf("%s: types not detected", cap.Language)
		}
		if !cap.Imports {
			t.Errorf("%s: imports not detected", cap.Language)
		}
		if !cap.Docstrings {
			t.Errorf("%s: docstrings not detected", cap.Language)
		}
	}

	for i := 1; i < len(caps); i++ {
		if caps[i-1].Language >= caps[i].Language {
			t.Fatalf("reports not sorted: %s before %s", caps[i-1].Language, caps[i].Language)
		}
	}
}

func TestCheckUnknownLanguage(t *testing.T) {
	if _, err := Check("cobol"); err == nil {
		t.Fatal("expected error for unregistered language")
	}
}

func TestSummarize(t *testing.T) {
	code := `import os

class Walker:
    def step(self):
        return os.sep
`
	sum, err := Summarize("walker.py", code)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum.Language != "python" {
		t.Fatalf("expected python, got %s", sum.Language)
	}
	if sum.Declarations != 2 {
		t.Fatalf("expected 2 declarations, got %d", sum.Declarations)
	}
	if sum.MaxDepth != 2 {
		t.Fatalf("expected depth 2, got %d", sum.MaxDepth)
	}
	if sum.Imports != 1 {
		t.Fatalf("expected 1 import, got %d", sum.Imports)
	}
}

func TestSummarizeUnknownPath(t *testing.T) {
	if _, err := Summarize("README.md", "# heading"); err == nil {
		t.Fatal("expected error for unsupported file type")
	}
}
