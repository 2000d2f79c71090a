// # internal/grammar/php.go
package grammar

import (
	"regexp"
	"strings"

	"codeatlas/internal/heuristic"
)

func newPHPProfile() *heuristic.Profile {
	p := braceFamily("php")
	p.LineComments = []string{"//", "#"}
	p.DocLineTokens = []string{"//", "#"}

	controlFlow := []string{"if", "for", "foreach", "while", "switch", "catch", "return", "do", "else", "elseif", "try", "new", "echo", "match"}

	p.Decls = []heuristic.DeclPattern{
		{Kind: heuristic.KindModule, Re: regexp.MustCompile(`^\s*namespace\s+(?P<name>[\w\\]+)\s*;`), Terminator: true},
		{Kind: heuristic.KindClass, Re: regexp.MustCompile(`^\s*(?:(?:abstract|final|readonly)\s+)*class\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindInterface, Re: regexp.MustCompile(`^\s*interface\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindEnum, Re: regexp.MustCompile(`^\s*enum\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindType, Re: regexp.MustCompile(`^\s*trait\s+(?P<name>\w+)`)},
		{Kind: heuristic.KindConstant, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|final)\s+)*const\s+(?:[\w|?]+\s+)?(?P<name>\w+)\s*=`), Terminator: true},
		{Kind: heuristic.KindProperty, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|static|readonly)\s+)+(?:[\w|?\\]+\s+)?\$(?P<name>\w+)`), Terminator: true},
		{Kind: heuristic.KindMethod, Re: regexp.MustCompile(`^\s*(?:(?:public|private|protected|static|abstract|final)\s+)+function\s+&?(?P<name>\w+)\s*\(`), Reject: controlFlow},
		{Kind: heuristic.KindFunction, Re: regexp.MustCompile(`^\s*function\s+&?(?P<name>\w+)\s*\(`), Reject: controlFlow},
	}

	p.Modifiers = heuristic.Vocabulary("public", "private", "protected", "static", "abstract", "final", "readonly")

	p.Imports = []heuristic.ImportRule{
		{
			// "use A\B\C as D;" records D, otherwise the last segment.
			Re: regexp.MustCompile(`^\s*use\s+(?:function\s+|const\s+)?([\w\\]+)(?:\s+as\s+(\w+))?\s*;`),
			Extract: func(lines []string, i int, m []string) ([]string, int) {
				if m[2] != "" {
					return []string{m[2]}, 0
				}
				parts := strings.Split(m[1], `\`)
				return []string{parts[len(parts)-1]}, 0
			},
		},
		{Re: regexp.MustCompile(`^\s*(?:require|require_once|include|include_once)\s*\(?\s*['"]([^'"]+)['"]`)},
	}
	return p
}
