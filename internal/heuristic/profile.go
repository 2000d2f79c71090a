// # internal/heuristic/profile.go
package heuristic

import "regexp"

// BlockStyle selects how a declaration's extent is resolved.
type BlockStyle int

const (
	// BlockBraces matches an explicit open/close delimiter pair.
	BlockBraces BlockStyle = iota
	// BlockIndent ends a block at the first line whose indentation drops
	// back to the header's level.
	BlockIndent
	// BlockKeyword counts opener keywords against a closing keyword
	// (Ruby-style def/class ... end).
	BlockKeyword
)

// DocStyle selects which documentation conventions a profile probes.
type DocStyle int

const (
	// DocLeading looks above the declaration: a run of doc-marker line
	// comments, or a single block comment.
	DocLeading DocStyle = iota
	// DocInnerString probes the first statement inside the body for a
	// string-literal docstring (Python convention).
	DocInnerString
)

// CommentPair is a block comment open/close token pair.
type CommentPair struct {
	Open  string
	Close string
}

// StringStyle describes a grammar's string and character literals.
type StringStyle struct {
	Quotes []byte // literal delimiters: double quote, single quote, backtick
	Raw    byte   // delimiter with no escape processing; 0 = none
	Triple bool   // Python-style triple-quoted strings
	Escape byte   // escape character inside non-raw literals; 0 disables
}

// DeclPattern matches one declaration kind. Patterns are evaluated in the
// profile's order; the first match wins, so specific kinds (methods, typed
// blocks) must precede generic ones.
type DeclPattern struct {
	Kind string
	Re   *regexp.Regexp

	// Terminator declarations end on their own line and never open a
	// block (type aliases, constants, single-line imports of state).
	Terminator bool

	// Reject lists captured names that disqualify the match, used to keep
	// control-flow keywords out of loose method patterns.
	Reject []string

	// RejectLead lists leading keywords that disqualify the whole line.
	// Needed where the pattern's type position would otherwise swallow a
	// statement keyword ("return compute(x);" is not a method).
	RejectLead []string
}

// ImportRule recognizes an import statement. Extract receives the full line
// array and the index of the matched line; it returns the module names found
// and how many additional lines the statement consumed (grouped imports).
type ImportRule struct {
	Re      *regexp.Regexp
	Extract func(lines []string, i int, m []string) (modules []string, extra int)
}

// Limits bound the scanning work a single parse may perform. Exceeding a
// limit is not an error: the parser emits a best-effort partial result.
type Limits struct {
	MaxNestingDepth      int
	MaxBlockSearchLines  int
	MaxBlockScanChars    int
	MaxBuilderIterations int
	// EstimateLookahead is the fixed lookahead used for the estimated end
	// line when block resolution exhausts its window.
	EstimateLookahead int
}

// DefaultLimits returns the bounds used by every built-in profile.
func DefaultLimits() Limits {
	return Limits{
		MaxNestingDepth:      20,
		MaxBlockSearchLines:  5000,
		MaxBlockScanChars:    500000,
		MaxBuilderIterations: 100000,
		EstimateLookahead:    5,
	}
}

// Profile is the immutable per-language-family configuration consumed by all
// shared algorithms. Construct fully before use and never mutate afterwards,
// since profiles are shared by concurrent parses.
type Profile struct {
	Name string

	LineComments  []string
	DocLineTokens []string // doc-comment markers, most specific first
	BlockComments []CommentPair
	DocBlocks     []CommentPair

	Blocks       BlockStyle
	OpenDelim    byte // BlockBraces only
	CloseDelim   byte
	BlockOpeners []string // BlockKeyword only
	BlockCloser  string

	Strings StringStyle

	Decls []DeclPattern
	// NameGroups are the capture group names tried, in order, when pulling
	// the identifier out of a declaration match.
	NameGroups []string

	Modifiers map[string]bool

	Imports []ImportRule

	Docs []DocStyle

	Limits Limits
}

// Vocabulary builds a modifier set from keywords.
func Vocabulary(words ...string) map[string]bool {
	vocab := make(map[string]bool, len(words))
	for _, w := range words {
		vocab[w] = true
	}
	return vocab
}

// defaultNameGroups are the conventional identifier capture group names.
var defaultNameGroups = []string{"name", "id", "ident"}

func (p *Profile) nameGroups() []string {
	if len(p.NameGroups) > 0 {
		return p.NameGroups
	}
	return defaultNameGroups
}

func (p *Profile) limits() Limits {
	l := p.Limits
	d := DefaultLimits()
	if l.MaxNestingDepth <= 0 {
		l.MaxNestingDepth = d.MaxNestingDepth
	}
	if l.MaxBlockSearchLines <= 0 {
		l.MaxBlockSearchLines = d.MaxBlockSearchLines
	}
	if l.MaxBlockScanChars <= 0 {
		l.MaxBlockScanChars = d.MaxBlockScanChars
	}
	if l.MaxBuilderIterations <= 0 {
		l.MaxBuilderIterations = d.MaxBuilderIterations
	}
	if l.EstimateLookahead <= 0 {
		l.EstimateLookahead = d.EstimateLookahead
	}
	return l
}
