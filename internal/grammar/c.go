// # internal/grammar/c.go
package grammar

import (
	"regexp"

	"codeatlas/internal/heuristic"
)

// newCProfile covers C and the structural subset of C++ headers and
// sources. Prototypes and forward declarations end at their semicolon;
// the block scanner handles definitions.
func newCProfile() *heuristic.Profile {
	p := braceFamily("c")

	controlFlow := []string{"if", "for", "while", "switch", "return", "do", "else", "sizeof", "case"}

	p.Decls = []heuristic.DeclPattern{
		{Kind: heuristic.KindMacro, Re: regexp.MustCompile(`^\s*#\s*define\s+(?P<name>\w+)`), Terminator: true},
		// typedef of a named aggregate, e.g. "typedef struct foo foo_t;"
		{Kind: heuristic.KindType, Re: regexp.MustCompile(`^\s*typedef\s+(?:struct|union|enum)\s+\w+\s+(?P<name>\w+)\s*;`), Terminator: true},
		{Kind: heuristic.KindType, Re: regexp.MustCompile(`^\s*typedef\s+[\w\s*]+?(?P<name>\w+)\s*;`), Terminator: true},
		// typedef'd aggregate block: the alias after the closing brace is
		// out of reach, so take the tag when present.
		{Kind: heuristic.KindStruct, Re: regexp.MustCompile(`^\s*(?:typedef\s+)?struct\s+(?P<name>\w+)?\s*\{`)},
		{Kind: heuristic.KindEnum, Re: regexp.MustCompile(`^\s*(?:typedef\s+)?enum\s+(?P<name>\w+)?\s*\{`)},
		{Kind: heuristic.KindType, Re: regexp.MustCompile(`^\s*(?:typedef\s+)?union\s+(?P<name>\w+)?\s*\{`)},
		// Forward declaration.
		{Kind: heuristic.KindStruct, Re: regexp.MustCompile(`^\s*struct\s+(?P<name>\w+)\s*;`), Terminator: true},
		// Matches both definitions (body brace here or on the next line)
		// and prototypes ending at a semicolon.
		{Kind: heuristic.KindFunction, Re: regexp.MustCompile(`^\s*(?:(?:static|inline|extern|const|unsigned|signed)\s+)*[\w*]+[\s*]+(?P<name>\w+)\s*\([^;]*\)\s*[;{]?\s*$`), Reject: controlFlow,
			RejectLead: []string{"return", "else", "case", "sizeof", "switch", "do", "goto"}},
	}

	p.Modifiers = heuristic.Vocabulary("static", "inline", "extern", "const", "volatile", "register")

	p.Imports = []heuristic.ImportRule{
		{Re: regexp.MustCompile(`^\s*#\s*include\s+[<"]([^>"]+)[>"]`)},
	}
	return p
}
