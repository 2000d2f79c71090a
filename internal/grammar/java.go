// # internal/grammar/java.go
package grammar

import (
	"regexp"

	"codeatlas/internal/heuristic"
)

func newJavaProfile() *heuristic.Profile {
	p := braceFamily("java")

	controlFlow := []string{"if", "for", "while", "switch", "catch", "return", "do", "else", "try", "new", "throw", "synchronized"}

	p.Decls = []heuristic.DeclPattern{
		{Kind: heuristic.KindModule, Re: regexp.MustCompile(`^\s*package\s+(?P<name>[\w.]+)\s*;`), Terminator: true},
		{Kind: heuristic.KindClass, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|static|final|abstract|sealed|strictfp)\s+)*class\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindInterface, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|static|sealed)\s+)*interface\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindEnum, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|static)\s+)*enum\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindType, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|static|final)\s+)*record\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindConstant, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|static|final)\s+)+[\w<>\[\],.\s]+\s+(?P<name>[A-Z][A-Z0-9_]*)\s*=`), Terminator: true},
		// Definitions end with the body brace; abstract and interface
		// methods end at a semicolon.
		{Kind: heuristic.KindMethod, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|static|final|abstract|synchronized|native|default|strictfp)\s+)*[\w<>\[\],.?\s]+?\s+(?P<name>\w+)\s*\([^;{]*\)\s*(?:throws\s+[\w,.\s]+)?\s*[;{]`), Reject: controlFlow,
			RejectLead: []string{"return", "throw", "else", "case", "new", "assert", "yield"}},
	}

	p.Modifiers = heuristic.Vocabulary(
		"public", "private", "protected", "static", "final", "abstract",
		"synchronized", "volatile", "transient", "native", "strictfp",
		"default", "sealed",
	)

	// The trailing .* of wildcard imports is dropped; static imports keep
	// their full member path.
	p.Imports = []heuristic.ImportRule{
		{Re: regexp.MustCompile(`^\s*import\s+(?:static\s+)?([\w.]+?)(?:\.\*)?\s*;`)},
	}
	return p
}
