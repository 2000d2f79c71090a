// # internal/grammar/python.go
package grammar

import (
	"regexp"
	"strings"

	"codeatlas/internal/heuristic"
)

func newPythonProfile() *heuristic.Profile {
	p := indentFamily("python")

	p.Decls = []heuristic.DeclPattern{
		{Kind: heuristic.KindClass, Re: regexp.MustCompile(`^\s*class\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindFunction, Re: regexp.MustCompile(`^\s*(?:async\s+)?def\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindConstant, Re: regexp.MustCompile(`^(?P<name>[A-Z][A-Z0-9_]*)\s*(?::[^=]+)?=[^=]`), Terminator: true},
	}

	p.Modifiers = heuristic.Vocabulary("async")

	p.Imports = []heuristic.ImportRule{
		{Re: regexp.MustCompile(`^\s*from\s+([.\w]+)\s+import\b`), Extract: pyFromImport},
		{Re: regexp.MustCompile(`^\s*import\s+(.+)`), Extract: pyImport},
	}
	return p
}

// pyImport handles "import a.b, numpy as np". Aliased imports record the
// local alias; plain imports record the outermost package component.
func pyImport(_ []string, _ int, m []string) ([]string, int) {
	var modules []string
	for _, item := range strings.Split(m[1], ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if idx := strings.Index(item, " as "); idx >= 0 {
			alias := strings.TrimSpace(item[idx+4:])
			modules = append(modules, alias)
			continue
		}
		modules = append(modules, firstSegment(item, "."))
	}
	return modules, 0
}

// pyFromImport records the source module of a from-import. Parenthesized
// multi-line import lists are consumed so the builder skips the whole
// statement; the imported names themselves are locals, not dependencies.
func pyFromImport(lines []string, i int, m []string) ([]string, int) {
	module := m[1]
	if strings.HasPrefix(module, ".") {
		trimmed := strings.TrimLeft(module, ".")
		if trimmed == "" {
			module = "."
		} else {
			module = firstSegment(trimmed, ".")
		}
	} else {
		module = firstSegment(module, ".")
	}

	extra := 0
	line := lines[i]
	if strings.Contains(line, "(") && !strings.Contains(line, ")") {
		for li := i + 1; li < len(lines) && extra < maxGroupedImportLines; li++ {
			extra++
			if strings.Contains(lines[li], ")") {
				break
			}
		}
	}
	return []string{module}, extra
}

func firstSegment(s, sep string) string {
	if idx := strings.Index(s, sep); idx >= 0 {
		return s[:idx]
	}
	return s
}
