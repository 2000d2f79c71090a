// # internal/heuristic/engine_test.go
package heuristic

import (
	"errors"
	"reflect"
	"regexp"
	"testing"
)

func braceTestProfile() *Profile {
	return &Profile{
		Name:          "bracelang",
		LineComments:  []string{"//"},
		BlockComments: []CommentPair{{Open: "/*", Close: "*/"}},
		Blocks:        BlockBraces,
		OpenDelim:     '{',
		CloseDelim:    '}',
		Strings:       StringStyle{Quotes: []byte{'"', '\''}, Escape: '\\'},
		Decls: []DeclPattern{
			{Kind: KindClass, Re: regexp.MustCompile(`^\s*class\s+(?P<name>\w+)`)},
			{Kind: KindFunction, Re: regexp.MustCompile(`^\s*(?:(?:public|static)\s+)*fn\s+(?P<name>\w+)`)},
			{Kind: KindConstant, Re: regexp.MustCompile(`^\s*const\s+(?P<name>\w+)`), Terminator: true},
		},
		Modifiers: Vocabulary("public", "static"),
		Imports:   []ImportRule{{Re: regexp.MustCompile(`^\s*use\s+(\w+)`)}},
		Docs:      []DocStyle{DocLeading},
	}
}

func indentTestProfile() *Profile {
	return &Profile{
		Name:         "indentlang",
		LineComments: []string{"#"},
		Blocks:       BlockIndent,
		Strings:      StringStyle{Quotes: []byte{'"', '\''}, Triple: true, Escape: '\\'},
		Decls: []DeclPattern{
			{Kind: KindClass, Re: regexp.MustCompile(`^\s*class\s+(?P<name>\w+)`)},
			{Kind: KindFunction, Re: regexp.MustCompile(`^\s*def\s+(?P<name>\w+)`)},
		},
		Docs: []DocStyle{DocInnerString, DocLeading},
	}
}

func keywordTestProfile() *Profile {
	return &Profile{
		Name:         "kwlang",
		LineComments: []string{"#"},
		Blocks:       BlockKeyword,
		BlockOpeners: []string{"def", "class", "module", "if", "while", "case", "begin"},
		BlockCloser:  "end",
		Strings:      StringStyle{Quotes: []byte{'"', '\''}, Escape: '\\'},
		Decls: []DeclPattern{
			{Kind: KindClass, Re: regexp.MustCompile(`^\s*class\s+(?P<name>\w+)`)},
			{Kind: KindFunction, Re: regexp.MustCompile(`^\s*def\s+(?P<name>\w+)`)},
		},
		Docs: []DocStyle{DocLeading},
	}
}

func findDecl(decls []*Declaration, name string) *Declaration {
	for _, d := range decls {
		if d.Name == name {
			return d
		}
	}
	return nil
}

func TestParseNestedTree(t *testing.T) {
	code := `// Container type.
class Outer {
    fn method() {
        const inner = 1
    }
}`
	res := Parse(code, "outer.bl", braceTestProfile())
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if res.EngineUsed != EngineHeuristic {
		t.Errorf("engine = %q", res.EngineUsed)
	}
	if len(res.Declarations) != 1 {
		t.Fatalf("expected 1 top-level declaration, got %d", len(res.Declarations))
	}

	outer := res.Declarations[0]
	if outer.Kind != KindClass || outer.Name != "Outer" {
		t.Errorf("outer = %s %s", outer.Kind, outer.Name)
	}
	if outer.StartLine != 1 || outer.EndLine != 5 {
		t.Errorf("outer span = %d..%d", outer.StartLine, outer.EndLine)
	}
	if outer.Docstring == nil || *outer.Docstring != "Container type." {
		t.Errorf("outer doc = %v", outer.Docstring)
	}

	method := findDecl(outer.Children, "method")
	if method == nil {
		t.Fatal("method not found")
	}
	if method.StartLine != 2 || method.EndLine != 4 {
		t.Errorf("method span = %d..%d", method.StartLine, method.EndLine)
	}

	inner := findDecl(method.Children, "inner")
	if inner == nil {
		t.Fatal("inner constant not found")
	}
	if inner.StartLine != 3 || inner.EndLine != 3 {
		t.Errorf("inner span = %d..%d", inner.StartLine, inner.EndLine)
	}

	if got := res.CountDeclarations(); got != 3 {
		t.Errorf("CountDeclarations = %d", got)
	}
	if got := res.MaxDepth(); got != 3 {
		t.Errorf("MaxDepth = %d", got)
	}
}

func TestParseDelimitersInStringsAndComments(t *testing.T) {
	code := `fn tricky() {
    s = "not a close }"
    // }
    /* } */
    t = 'x'
}`
	res := Parse(code, "tricky.bl", braceTestProfile())
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	d := findDecl(res.Declarations, "tricky")
	if d == nil {
		t.Fatal("tricky not found")
	}
	if d.EndLine != 5 {
		t.Errorf("end = %d, want 5", d.EndLine)
	}
}

func TestParseUnterminatedBlock(t *testing.T) {
	code := "fn broken() {\n    a = 1"
	res := Parse(code, "broken.bl", braceTestProfile())
	if res.Err != nil {
		t.Fatalf("limit fallback must not be an error: %v", res.Err)
	}
	d := findDecl(res.Declarations, "broken")
	if d == nil {
		t.Fatal("broken not found")
	}
	if d.EndLine != 1 {
		t.Errorf("estimated end = %d, want clamp to last line 1", d.EndLine)
	}
}

func TestParseSemicolonTerminator(t *testing.T) {
	code := `fn proto();
fn real() {
}`
	res := Parse(code, "proto.bl", braceTestProfile())
	proto := findDecl(res.Declarations, "proto")
	if proto == nil {
		t.Fatal("proto not found")
	}
	if proto.StartLine != 0 || proto.EndLine != 0 {
		t.Errorf("proto span = %d..%d", proto.StartLine, proto.EndLine)
	}
	real := findDecl(res.Declarations, "real")
	if real == nil || real.EndLine != 2 {
		t.Errorf("real = %+v", real)
	}
}

func TestParseModifiers(t *testing.T) {
	code := `public static fn handler() {
}`
	res := Parse(code, "mods.bl", braceTestProfile())
	d := findDecl(res.Declarations, "handler")
	if d == nil {
		t.Fatal("handler not found")
	}
	want := []string{"public", "static"}
	if !reflect.DeepEqual(d.Modifiers, want) {
		t.Errorf("modifiers = %v, want %v", d.Modifiers, want)
	}
}

func TestParseImportsDeduplicatedAndSorted(t *testing.T) {
	code := `use zeta
use alpha
use zeta

fn x() {
}`
	res := Parse(code, "imp.bl", braceTestProfile())
	want := []string{"alpha", "zeta"}
	if !reflect.DeepEqual(res.Imports, want) {
		t.Errorf("imports = %v, want %v", res.Imports, want)
	}
}

func TestParseIndentBlocks(t *testing.T) {
	code := `class Parser:
    """Parses source text."""

    def parse(self):
        """"""
        return 1

def helper():
    pass`
	res := Parse(code, "parser.il", indentTestProfile())
	if res.Err != nil {
		t.Fatal(res.Err)
	}

	cls := findDecl(res.Declarations, "Parser")
	if cls == nil {
		t.Fatal("Parser not found")
	}
	if cls.StartLine != 0 || cls.EndLine != 5 {
		t.Errorf("Parser span = %d..%d", cls.StartLine, cls.EndLine)
	}
	if cls.Docstring == nil || *cls.Docstring != "Parses source text." {
		t.Errorf("Parser doc = %v", cls.Docstring)
	}

	parse := findDecl(cls.Children, "parse")
	if parse == nil {
		t.Fatal("parse not found")
	}
	// An empty docstring literal is present, not absent.
	if parse.Docstring == nil {
		t.Fatal("parse doc should be present")
	}
	if *parse.Docstring != "" {
		t.Errorf("parse doc = %q, want empty", *parse.Docstring)
	}

	helper := findDecl(res.Declarations, "helper")
	if helper == nil {
		t.Fatal("helper not found")
	}
	if helper.Docstring != nil {
		t.Errorf("helper doc = %q, want absent", *helper.Docstring)
	}
}

func TestParseSkipsTripleStringBodies(t *testing.T) {
	code := `SQL = """
class NotADecl:
"""
def real():
    pass`
	res := Parse(code, "sql.il", indentTestProfile())
	if findDecl(res.Declarations, "NotADecl") != nil {
		t.Error("declaration matched inside string literal")
	}
	if findDecl(res.Declarations, "real") == nil {
		t.Error("real not found")
	}
}

func TestParseKeywordBlocks(t *testing.T) {
	code := `# Widget model.
class Widget
  def render
    if ready
      draw
    end
  end

  items.each do
    something
  end
end`
	res := Parse(code, "widget.kw", keywordTestProfile())
	if res.Err != nil {
		t.Fatal(res.Err)
	}

	w := findDecl(res.Declarations, "Widget")
	if w == nil {
		t.Fatal("Widget not found")
	}
	if w.StartLine != 1 || w.EndLine != 11 {
		t.Errorf("Widget span = %d..%d", w.StartLine, w.EndLine)
	}
	if w.Docstring == nil || *w.Docstring != "Widget model." {
		t.Errorf("Widget doc = %v", w.Docstring)
	}

	r := findDecl(w.Children, "render")
	if r == nil {
		t.Fatal("render not found")
	}
	if r.StartLine != 2 || r.EndLine != 6 {
		t.Errorf("render span = %d..%d", r.StartLine, r.EndLine)
	}
}

func TestParseDepthLimit(t *testing.T) {
	p := braceTestProfile()
	p.Limits.MaxNestingDepth = 2

	code := `class A {
    class B {
        class C {
        }
    }
}`
	res := Parse(code, "deep.bl", p)
	if res.Err != nil {
		t.Fatalf("depth limit must not be an error: %v", res.Err)
	}
	a := findDecl(res.Declarations, "A")
	if a == nil {
		t.Fatal("A not found")
	}
	b := findDecl(a.Children, "B")
	if b == nil {
		t.Fatal("B not found")
	}
	if len(b.Children) != 0 {
		t.Errorf("C should be dropped beyond the depth limit, got %d children", len(b.Children))
	}
	if got := res.MaxDepth(); got != 2 {
		t.Errorf("MaxDepth = %d", got)
	}
}

func TestParseEmptyInput(t *testing.T) {
	res := Parse("", "empty.bl", braceTestProfile())
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if len(res.Declarations) != 0 || len(res.Imports) != 0 {
		t.Errorf("empty input produced %d decls, %d imports", len(res.Declarations), len(res.Imports))
	}
}

func TestParseNilProfile(t *testing.T) {
	res := Parse("fn x() {}", "x.bl", nil)
	if !errors.Is(res.Err, ErrNoProfile) {
		t.Errorf("err = %v, want ErrNoProfile", res.Err)
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	code := "fn ok() {\n}\n" + string([]byte{0xff, 0xfe})
	res := Parse(code, "bin.bl", braceTestProfile())
	if res.Err != nil {
		t.Fatalf("invalid bytes must be tolerated: %v", res.Err)
	}
	if findDecl(res.Declarations, "ok") == nil {
		t.Error("ok not found")
	}
}

func TestParseCRLF(t *testing.T) {
	code := "fn win() {\r\n    a = 1\r\n}\r\n"
	res := Parse(code, "win.bl", braceTestProfile())
	d := findDecl(res.Declarations, "win")
	if d == nil {
		t.Fatal("win not found")
	}
	if d.EndLine != 2 {
		t.Errorf("end = %d, want 2", d.EndLine)
	}
}

func TestParseDeterministic(t *testing.T) {
	code := `use beta
use alpha

// Doc.
class A {
    fn m() {
    }
}

fn b() {
}`
	first := Parse(code, "same.bl", braceTestProfile())
	second := Parse(code, "same.bl", braceTestProfile())
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated parses of identical input differ")
	}
}

func TestSpanInvariants(t *testing.T) {
	code := `class A {
    fn m() {
        const k = 1
    }
}
fn b() {
}`
	res := Parse(code, "spans.bl", braceTestProfile())

	var check func(decls []*Declaration, lo, hi int)
	check = func(decls []*Declaration, lo, hi int) {
		for _, d := range decls {
			if d.StartLine < lo || d.EndLine > hi {
				t.Errorf("%s span %d..%d escapes %d..%d", d.Name, d.StartLine, d.EndLine, lo, hi)
			}
			if d.EndLine < d.StartLine {
				t.Errorf("%s has inverted span %d..%d", d.Name, d.StartLine, d.EndLine)
			}
			check(d.Children, d.StartLine, d.EndLine)
		}
	}
	check(res.Declarations, 0, 6)
}
