// # internal/heuristic/imports.go
package heuristic

import "sort"

// importSet deduplicates referenced module names. Source order is not
// preserved; the final slice is sorted for stable output.
type importSet map[string]struct{}

func (s importSet) add(names ...string) {
	for _, n := range names {
		if n == "" {
			continue
		}
		s[n] = struct{}{}
	}
}

func (s importSet) sorted() []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// tryImport tests lines[i] against the profile's import recognizers in
// order. On a match the extracted modules are added to the set; extra is the
// number of additional lines consumed by a multi-line import block, so the
// tree builder can skip past the whole statement.
func tryImport(p *Profile, lines []string, i int, set importSet) (matched bool, extra int) {
	line := lines[i]
	for _, rule := range p.Imports {
		m := rule.Re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if rule.Extract != nil {
			modules, consumed := rule.Extract(lines, i, m)
			set.add(modules...)
			return true, consumed
		}
		// Default extraction: every non-empty capture group is a module.
		for _, g := range m[1:] {
			set.add(g)
		}
		return true, 0
	}
	return false, 0
}
