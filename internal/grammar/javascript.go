// # internal/grammar/javascript.go
package grammar

import (
	"regexp"
	"strings"

	"codeatlas/internal/heuristic"
)

// One profile covers the whole JS family: plain JavaScript, JSX, and the
// TypeScript extensions (interfaces, enums, type aliases) that simply never
// match in .js sources.
func newJavaScriptProfile() *heuristic.Profile {
	p := braceFamily("javascript")
	p.Strings = heuristic.StringStyle{
		Quotes: []byte{'"', '\'', '`'},
		Raw:    '`',
		Escape: '\\',
	}

	controlFlow := []string{"if", "for", "while", "switch", "catch", "return", "do", "else", "try", "new", "function", "typeof", "await"}

	p.Decls = []heuristic.DeclPattern{
		{Kind: heuristic.KindClass, Re: regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:declare\s+)?(?:abstract\s+)?class\s+(?P<name>[\w$]+)`)},
		{Kind: heuristic.KindInterface, Re: regexp.MustCompile(`^\s*(?:export\s+)?(?:declare\s+)?interface\s+(?P<name>[\w$]+)`)},
		{Kind: heuristic.KindEnum, Re: regexp.MustCompile(`^\s*(?:export\s+)?(?:declare\s+)?(?:const\s+)?enum\s+(?P<name>[\w$]+)`)},
		{Kind: heuristic.KindFunction, Re: regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:declare\s+)?(?:async\s+)?function\s*\*?\s*(?P<name>[\w$]+)`)},
		{Kind: heuristic.KindType, Re: regexp.MustCompile(`^\s*(?:export\s+)?type\s+(?P<name>[\w$]+)\s*(?:<[^>]*>)?\s*=`), Terminator: true},
		// Arrow functions assigned to a binding normalize to "function".
		{Kind: heuristic.KindFunction, Re: regexp.MustCompile(`^\s*(?:export\s+)?(?:const|let|var)\s+(?P<name>[\w$]+)\s*(?::[^=]+)?=\s*(?:async\s+)?(?:\([^)]*\)|[\w$]+)\s*(?::[^=>]+)?=>`)},
		{Kind: heuristic.KindConstant, Re: regexp.MustCompile(`^\s*(?:export\s+)?const\s+(?P<name>[A-Z][A-Z0-9_]*)\s*=`), Terminator: true},
		{Kind: heuristic.KindMethod, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|static|async|get|set|readonly|override)\s+)*(?P<name>[\w$]+)\s*\([^)]*\)\s*(?::\s*[\w<>\[\],.\s|&]+)?\s*\{`), Reject: controlFlow},
	}

	p.Modifiers = heuristic.Vocabulary(
		"export", "default", "async", "static", "public", "private", "protected",
		"readonly", "abstract", "declare", "get", "set", "override",
	)

	p.Imports = []heuristic.ImportRule{
		{Re: regexp.MustCompile(`^\s*import\s+.*?\bfrom\s+['"]([^'"]+)['"]`)},
		{Re: regexp.MustCompile(`^\s*import\s+['"]([^'"]+)['"]`)},
		{Re: regexp.MustCompile(`^\s*export\s+.*?\bfrom\s+['"]([^'"]+)['"]`)},
		{Re: regexp.MustCompile(`\brequire\s*\(\s*['"]([^'"]+)['"]\s*\)`)},
		{Re: regexp.MustCompile(`^\s*import\s+(?:[\w$]+\s*,\s*)?\{[^}]*$`), Extract: jsMultiLineImport},
	}
	return p
}

var jsFromRe = regexp.MustCompile(`\bfrom\s+['"]([^'"]+)['"]`)

// jsMultiLineImport consumes an import whose specifier list spans lines,
// ending at the line carrying the from-clause.
func jsMultiLineImport(lines []string, i int, _ []string) ([]string, int) {
	extra := 0
	for li := i + 1; li < len(lines) && extra < maxGroupedImportLines; li++ {
		extra++
		if m := jsFromRe.FindStringSubmatch(lines[li]); m != nil {
			return []string{m[1]}, extra
		}
		if strings.Contains(lines[li], ";") {
			break
		}
	}
	return nil, extra
}
