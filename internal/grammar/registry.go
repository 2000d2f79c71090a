// # internal/grammar/registry.go
package grammar

import (
	"path/filepath"
	"sort"
	"strings"

	"codeatlas/internal/heuristic"
)

// The registry is populated once at package init and read-only afterwards;
// profiles are safely shared by all concurrent parses.
var (
	profiles   = make(map[string]*heuristic.Profile)
	extensions = make(map[string]string)
)

func init() {
	register(newGoProfile(), ".go")
	register(newPythonProfile(), ".py", ".pyi")
	register(newJavaScriptProfile(), ".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx")
	register(newJavaProfile(), ".java")
	register(newCSharpProfile(), ".cs")
	register(newCProfile(), ".c", ".h", ".cpp", ".cc", ".cxx", ".hpp", ".hh")
	register(newRustProfile(), ".rs")
	register(newPHPProfile(), ".php")
	register(newRubyProfile(), ".rb", ".rake")
}

func register(p *heuristic.Profile, exts ...string) {
	profiles[p.Name] = p
	for _, e := range exts {
		extensions[e] = p.Name
	}
}

// Lookup returns the profile registered under name.
func Lookup(name string) (*heuristic.Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// DetectPath maps a file path to its grammar profile by extension.
func DetectPath(path string) (*heuristic.Profile, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	name, ok := extensions[ext]
	if !ok {
		return nil, false
	}
	return Lookup(name)
}

// Names returns the registered profile names, sorted.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
