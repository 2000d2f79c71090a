// # internal/grammar/rust.go
package grammar

import (
	"regexp"
	"strings"

	"codeatlas/internal/heuristic"
)

func newRustProfile() *heuristic.Profile {
	p := braceFamily("rust")

	// Lifetimes ('a) would wedge the string scanner in single-quote
	// state, so only double quotes are tracked. Char literals are short
	// enough that a stray brace inside one is not a realistic risk.
	p.Strings = heuristic.StringStyle{Quotes: []byte{'"'}, Escape: '\\'}

	p.DocLineTokens = []string{"///", "//!", "//"}

	vis := `(?:pub(?:\([^)]*\))?\s+)?`

	p.Decls = []heuristic.DeclPattern{
		{Kind: heuristic.KindModule, Re: regexp.MustCompile(`^\s*` + vis + `mod\s+(?P<name>\w+)\s*;`), Terminator: true},
		{Kind: heuristic.KindModule, Re: regexp.MustCompile(`^\s*` + vis + `mod\s+(?P<name>\w+)`)},
		// Unit and tuple structs end at the statement, not a block.
		{Kind: heuristic.KindStruct, Re: regexp.MustCompile(`^\s*` + vis + `struct\s+(?P<name>\w+)(?:<[^{;]*>)?\s*(?:;|\()`), Terminator: true},
		{Kind: heuristic.KindStruct, Re: regexp.MustCompile(`^\s*` + vis + `struct\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindEnum, Re: regexp.MustCompile(`^\s*` + vis + `enum\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindInterface, Re: regexp.MustCompile(`^\s*` + vis + `(?:unsafe\s+)?trait\s+(?P<name>\w+)`)},
		// "impl Trait for Type" attributes the block to the type.
		{Kind: heuristic.KindType, Re: regexp.MustCompile(`^\s*(?:unsafe\s+)?impl(?:<[^>]*>)?\s+(?:[\w:]+(?:<[^>]*>)?\s+for\s+)?(?P<name>\w+)`)},
		{Kind: heuristic.KindType, Re: regexp.MustCompile(`^\s*` + vis + `type\s+(?P<name>\w+)[^=]*=`), Terminator: true},
		{Kind: heuristic.KindConstant, Re: regexp.MustCompile(`^\s*` + vis + `(?:const|static)\s+(?:mut\s+)?(?P<name>\w+)\s*:`), Terminator: true},
		{Kind: heuristic.KindMacro, Re: regexp.MustCompile(`^\s*macro_rules!\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindFunction, Re: regexp.MustCompile(`^\s*` + vis + `(?:(?:async|unsafe|const|extern(?:\s+"[^"]*")?)\s+)*fn\s+(?P<name>\w+)`)},
	}

	p.Modifiers = heuristic.Vocabulary("pub", "async", "unsafe", "const", "static", "extern", "mut")

	p.Imports = []heuristic.ImportRule{
		{
			Re: regexp.MustCompile(`^\s*(?:pub\s+)?use\s+([\w:]+)`),
			Extract: func(lines []string, i int, m []string) ([]string, int) {
				seg, _, _ := strings.Cut(m[1], "::")
				return []string{seg}, 0
			},
		},
		{Re: regexp.MustCompile(`^\s*extern\s+crate\s+(\w+)`)},
	}
	return p
}
