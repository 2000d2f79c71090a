// # internal/grammar/ruby.go
package grammar

import (
	"regexp"

	"codeatlas/internal/heuristic"
)

func newRubyProfile() *heuristic.Profile {
	return &heuristic.Profile{
		Name:         "ruby",
		LineComments: []string{"#"},
		BlockComments: []heuristic.CommentPair{
			{Open: "=begin", Close: "=end"},
		},
		Blocks: heuristic.BlockKeyword,
		BlockOpeners: []string{
			"def", "class", "module", "if", "unless", "while",
			"until", "for", "begin", "case",
		},
		BlockCloser: "end",
		Strings:     heuristic.StringStyle{Quotes: []byte{'"', '\''}, Escape: '\\'},
		Decls: []heuristic.DeclPattern{
			{Kind: heuristic.KindModule, Re: regexp.MustCompile(`^\s*module\s+(?P<name>[A-Z]\w*)`)},
			{Kind: heuristic.KindClass, Re: regexp.MustCompile(`^\s*class\s+(?P<name>[A-Z]\w*)`)},
			// Singleton methods come before the plain form so "def
			// self.x" is not named "self".
			{Kind: heuristic.KindMethod, Re: regexp.MustCompile(`^\s*def\s+self\.(?P<name>\w+[?!=]?)`)},
			{Kind: heuristic.KindFunction, Re: regexp.MustCompile(`^\s*def\s+(?P<name>\w+[?!=]?)`)},
			{Kind: heuristic.KindConstant, Re: regexp.MustCompile(`^\s*(?P<name>[A-Z][A-Z0-9_]*)\s*=`), Terminator: true},
		},
		Docs: []heuristic.DocStyle{heuristic.DocLeading},
		Imports: []heuristic.ImportRule{
			{Re: regexp.MustCompile(`^\s*require(?:_relative)?\s+['"]([^'"]+)['"]`)},
		},
		Limits: heuristic.DefaultLimits(),
	}
}
