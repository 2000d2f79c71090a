// # internal/grammar/csharp.go
package grammar

import (
	"regexp"

	"codeatlas/internal/heuristic"
)

func newCSharpProfile() *heuristic.Profile {
	p := braceFamily("csharp")

	// /// doc comments are the norm; plain // runs still count.
	p.DocLineTokens = []string{"///", "//"}

	controlFlow := []string{"if", "for", "foreach", "while", "switch", "catch", "return", "do", "else", "try", "new", "using", "lock", "throw"}

	p.Decls = []heuristic.DeclPattern{
		// File-scoped namespace must outrank the block form.
		{Kind: heuristic.KindModule, Re: regexp.MustCompile(`^\s*namespace\s+(?P<name>[\w.]+)\s*;`), Terminator: true},
		{Kind: heuristic.KindModule, Re: regexp.MustCompile(`^\s*namespace\s+(?P<name>[\w.]+)`)},
		{Kind: heuristic.KindClass, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|internal|static|abstract|sealed|partial)\s+)*class\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindInterface, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|internal|partial)\s+)*interface\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindEnum, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|internal)\s+)*enum\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindStruct, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|internal|readonly|ref|partial)\s+)*struct\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindType, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|internal|sealed)\s+)*record\s+(?:class\s+|struct\s+)?(?P<name>\w+)`)},
		{Kind: heuristic.KindConstant, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|internal)\s+)*const\s+[\w<>\[\],.\s]+\s+(?P<name>\w+)\s*=`), Terminator: true},
		{Kind: heuristic.KindProperty, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|internal|static|virtual|override|abstract|required)\s+)+[\w<>\[\],.?\s]+?\s+(?P<name>\w+)\s*\{\s*get`)},
		{Kind: heuristic.KindMethod, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|internal|static|virtual|override|abstract|sealed|async|extern|partial|new)\s+)*[\w<>\[\],.?\s]+?\s+(?P<name>\w+)\s*(?:<[^>]*>)?\s*\([^;{]*\)`), Reject: controlFlow,
			RejectLead: []string{"return", "throw", "yield", "await", "else", "case", "using", "lock", "new", "var"}},
	}

	p.Modifiers = heuristic.Vocabulary(
		"public", "private", "protected", "internal", "static", "virtual",
		"override", "abstract", "sealed", "async", "partial", "readonly",
		"required", "extern", "unsafe",
	)

	p.Imports = []heuristic.ImportRule{
		{Re: regexp.MustCompile(`^\s*(?:global\s+)?using\s+(?:static\s+)?(?:\w+\s*=\s*)?([\w.]+)\s*;`)},
	}
	return p
}
