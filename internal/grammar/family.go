// # internal/grammar/family.go
package grammar

import "codeatlas/internal/heuristic"

// Family defaults: specific profiles are built by taking a family base and
// overriding fields. Composition instead of an inheritance chain keeps every
// profile a plain data value.

func braceFamily(name string) *heuristic.Profile {
	return &heuristic.Profile{
		Name:          name,
		LineComments:  []string{"//"},
		BlockComments: []heuristic.CommentPair{{Open: "/*", Close: "*/"}},
		DocBlocks:     []heuristic.CommentPair{{Open: "/*", Close: "*/"}},
		Blocks:        heuristic.BlockBraces,
		OpenDelim:     '{',
		CloseDelim:    '}',
		Strings: heuristic.StringStyle{
			Quotes: []byte{'"', '\''},
			Escape: '\\',
		},
		Docs:   []heuristic.DocStyle{heuristic.DocLeading},
		Limits: heuristic.DefaultLimits(),
	}
}

func indentFamily(name string) *heuristic.Profile {
	return &heuristic.Profile{
		Name:         name,
		LineComments: []string{"#"},
		Blocks:       heuristic.BlockIndent,
		Strings: heuristic.StringStyle{
			Quotes: []byte{'"', '\''},
			Triple: true,
			Escape: '\\',
		},
		Docs:   []heuristic.DocStyle{heuristic.DocInnerString, heuristic.DocLeading},
		Limits: heuristic.DefaultLimits(),
	}
}
