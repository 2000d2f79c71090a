// # internal/grammar/golang.go
package grammar

import (
	"regexp"
	"strings"

	"codeatlas/internal/heuristic"
)

const maxGroupedImportLines = 500

func newGoProfile() *heuristic.Profile {
	p := braceFamily("go")
	p.Strings = heuristic.StringStyle{
		Quotes: []byte{'"', '\'', '`'},
		Raw:    '`',
		Escape: '\\',
	}
	p.DocLineTokens = []string{"//"}

	// Method patterns precede the generic function pattern; struct and
	// interface forms precede the bare type alias.
	p.Decls = []heuristic.DeclPattern{
		{Kind: heuristic.KindMethod, Re: regexp.MustCompile(`^\s*func\s+\([^)]+\)\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindFunction, Re: regexp.MustCompile(`^\s*func\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindInterface, Re: regexp.MustCompile(`^\s*type\s+(?P<name>\w+)(?:\[[^\]]*\])?\s+interface\b`)},
		{Kind: heuristic.KindStruct, Re: regexp.MustCompile(`^\s*type\s+(?P<name>\w+)(?:\[[^\]]*\])?\s+struct\b`)},
		{Kind: heuristic.KindType, Re: regexp.MustCompile(`^\s*type\s+(?P<name>\w+)\s+\S`), Terminator: true},
		{Kind: heuristic.KindConstant, Re: regexp.MustCompile(`^\s*const\s+(?P<name>\w+)`), Terminator: true},
		{Kind: heuristic.KindVariable, Re: regexp.MustCompile(`^\s*var\s+(?P<name>\w+)`), Terminator: true},
	}

	p.Imports = []heuristic.ImportRule{
		{Re: regexp.MustCompile(`^\s*import\s+(?:\w+\s+|\.\s+|_\s+)?"([^"]+)"`)},
		{Re: regexp.MustCompile(`^\s*import\s*\(\s*$`), Extract: goGroupedImport},
	}
	return p
}

var goImportPathRe = regexp.MustCompile(`"([^"]+)"`)

// goGroupedImport consumes an import ( ... ) block, one path per line.
func goGroupedImport(lines []string, i int, _ []string) ([]string, int) {
	var modules []string
	extra := 0
	for li := i + 1; li < len(lines) && extra < maxGroupedImportLines; li++ {
		extra++
		t := strings.TrimSpace(lines[li])
		if strings.HasPrefix(t, ")") {
			break
		}
		if m := goImportPathRe.FindStringSubmatch(t); m != nil {
			modules = append(modules, m[1])
		}
	}
	return modules, extra
}
