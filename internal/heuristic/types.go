// # internal/heuristic/types.go
package heuristic

// Canonical declaration kinds. The vocabulary is open: profiles may emit
// other tags, but shared tooling normalizes to these where sensible.
const (
	KindFunction  = "function"
	KindMethod    = "method"
	KindClass     = "class"
	KindStruct    = "struct"
	KindInterface = "interface"
	KindEnum      = "enum"
	KindTrait     = "trait"
	KindModule    = "module"
	KindNamespace = "namespace"
	KindType      = "type"
	KindConstant  = "constant"
	KindVariable  = "variable"
	KindProperty  = "property"
	KindMacro     = "macro"
)

// EngineTag identifies which extraction strategy produced a result.
type EngineTag string

const (
	// EngineHeuristic is the pattern-based engine implemented here.
	EngineHeuristic EngineTag = "heuristic"
	// EngineGrammar is reserved for a pluggable AST-based engine that
	// conforms to the same ParseResult contract.
	EngineGrammar EngineTag = "grammar"
)

// Declaration is one node in the extracted declaration tree. Line spans are
// 0-based and inclusive; EndLine >= StartLine always holds.
type Declaration struct {
	Kind      string
	Name      string
	StartLine int
	EndLine   int

	// Docstring is nil when no documentation was found. A non-nil pointer
	// to an empty string means a doc comment was present but empty.
	Docstring *string

	Modifiers []string
	Children  []*Declaration
}

// HasDoc reports whether any documentation was associated, including the
// present-but-empty case.
func (d *Declaration) HasDoc() bool {
	return d.Docstring != nil
}

// ParseResult is the output of one file's parse. Declarations hold the
// top-level tree in source order; Imports is deduplicated and sorted.
type ParseResult struct {
	Declarations []*Declaration
	Imports      []string
	Err          error
	EngineUsed   EngineTag
}

// CountDeclarations returns the total declaration count including nested
// children. Derived by traversal; the parser stores no aggregate state.
func (r *ParseResult) CountDeclarations() int {
	total := 0
	var walk func([]*Declaration)
	walk = func(decls []*Declaration) {
		for _, d := range decls {
			total++
			walk(d.Children)
		}
	}
	walk(r.Declarations)
	return total
}

// MaxDepth returns the deepest nesting level in the tree. Top-level
// declarations are depth 1; an empty result is depth 0.
func (r *ParseResult) MaxDepth() int {
	var walk func([]*Declaration, int) int
	walk = func(decls []*Declaration, depth int) int {
		deepest := depth
		for _, d := range decls {
			if got := walk(d.Children, depth+1); got > deepest {
				deepest = got
			}
		}
		return deepest
	}
	return walk(r.Declarations, 0)
}
