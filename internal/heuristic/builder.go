// # internal/heuristic/builder.go
package heuristic

import (
	"regexp"
	"strings"
)

// builder holds the per-parse scratch state. A builder is created fresh for
// every Parse call and never shared, so concurrent parses need no locking.
type builder struct {
	p       *Profile
	lines   []string
	lim     Limits
	imports importSet
	iters   int
}

func newBuilder(p *Profile, lines []string) *builder {
	return &builder{
		p:       p,
		lines:   lines,
		lim:     p.limits(),
		imports: make(importSet),
	}
}

// scan walks [start, end] appending declarations at the given nesting depth
// to out. Top-level declarations are depth 1; anything deeper than the
// configured maximum is silently not captured.
func (b *builder) scan(start, end, depth int, out *[]*Declaration) {
	if depth > b.lim.MaxNestingDepth {
		return
	}

	i := start
	for i <= end && i < len(b.lines) {
		b.iters++
		if b.iters > b.lim.MaxBuilderIterations {
			return
		}

		trimmed := strings.TrimSpace(b.lines[i])
		if trimmed == "" || isLineComment(b.p, trimmed) {
			i++
			continue
		}

		if pair, ok := matchBlockOpen(b.p, trimmed); ok {
			i = b.skipBlockComment(i, end, trimmed, pair)
			continue
		}

		if ok, extra := tryImport(b.p, b.lines, i, b.imports); ok {
			i += 1 + extra
			continue
		}

		if decl, next, matched := b.matchDecl(i, end, depth); matched {
			if decl != nil {
				*out = append(*out, decl)
			}
			i = next
			continue
		}

		if b.p.Strings.Triple && openTripleString(b.p, trimmed) {
			i = b.skipTripleString(i, end, trimmed)
			continue
		}

		i++
	}
}

// matchDecl tries the profile's patterns in priority order against lines[i].
// A match with no capturable name is treated as a non-match. Failures inside
// a single declaration's processing drop that declaration only; the cursor
// still advances so scanning continues past it.
func (b *builder) matchDecl(i, rangeEnd, depth int) (decl *Declaration, next int, matched bool) {
	next = i + 1
	defer func() {
		if r := recover(); r != nil {
			decl = nil
		}
	}()

	line := b.lines[i]
	for _, dp := range b.p.Decls {
		m := dp.Re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := captureName(dp.Re, m, b.p.nameGroups())
		if name == "" || isRejected(&dp, name) || leadRejected(&dp, line) {
			continue
		}

		mods := extractModifiers(line, b.p.Modifiers)

		// Delimiter-less declarations in brace grammars end at their
		// terminator (abstract methods, prototypes, single-line forms).
		terminator := dp.Terminator
		if !terminator && b.p.Blocks == BlockBraces {
			t := strings.TrimSpace(line)
			if strings.HasSuffix(t, ";") && strings.IndexByte(t, b.p.OpenDelim) < 0 {
				terminator = true
			}
		}

		if terminator {
			d := &Declaration{
				Kind:      dp.Kind,
				Name:      name,
				StartLine: i,
				EndLine:   i,
				Modifiers: mods,
				Docstring: extractDoc(b.p, b.lines, i, i+1, i),
			}
			return d, i + 1, true
		}

		endLine := resolveExtent(b.p, b.lines, i, rangeEnd)
		bodyStart, bodyEnd := b.bodyRange(i, endLine)

		d := &Declaration{
			Kind:      dp.Kind,
			Name:      name,
			StartLine: i,
			EndLine:   endLine,
			Modifiers: mods,
			Docstring: extractDoc(b.p, b.lines, i, bodyStart, bodyEnd),
		}
		if bodyStart <= bodyEnd {
			b.scan(bodyStart, bodyEnd, depth+1, &d.Children)
		}
		return d, endLine + 1, true
	}
	return nil, i + 1, false
}

// bodyRange returns the interior line range of a block. For brace and
// keyword styles the closing line is excluded; indentation blocks have no
// closing line.
func (b *builder) bodyRange(headerLine, endLine int) (int, int) {
	switch b.p.Blocks {
	case BlockIndent:
		return headerLine + 1, endLine
	default:
		return headerLine + 1, endLine - 1
	}
}

// skipBlockComment advances past a block comment opening at line i.
func (b *builder) skipBlockComment(i, end int, trimmed string, pair CommentPair) int {
	rest := trimmed[strings.Index(trimmed, pair.Open)+len(pair.Open):]
	if strings.Contains(rest, pair.Close) {
		return i + 1
	}
	for li := i + 1; li <= end && li < len(b.lines); li++ {
		if strings.Contains(b.lines[li], pair.Close) {
			return li + 1
		}
	}
	return end + 1
}

// openTripleString reports whether a line opens a triple-quoted string that
// does not close on the same line.
func openTripleString(p *Profile, trimmed string) bool {
	for _, q := range p.Strings.Quotes {
		tok := strings.Repeat(string(q), 3)
		if strings.Count(trimmed, tok)%2 == 1 {
			return true
		}
	}
	return false
}

// skipTripleString advances past a multi-line string literal so its contents
// are never pattern-matched as declarations.
func (b *builder) skipTripleString(i, end int, trimmed string) int {
	var tok string
	for _, q := range b.p.Strings.Quotes {
		t := strings.Repeat(string(q), 3)
		if strings.Count(trimmed, t)%2 == 1 {
			tok = t
			break
		}
	}
	if tok == "" {
		return i + 1
	}
	for li := i + 1; li <= end && li < len(b.lines); li++ {
		if strings.Contains(b.lines[li], tok) {
			return li + 1
		}
	}
	return end + 1
}

func captureName(re *regexp.Regexp, m []string, groups []string) string {
	names := re.SubexpNames()
	for _, want := range groups {
		for idx, n := range names {
			if n == want && idx < len(m) && m[idx] != "" {
				return strings.TrimSpace(m[idx])
			}
		}
	}
	return ""
}

func isRejected(dp *DeclPattern, name string) bool {
	for _, r := range dp.Reject {
		if name == r {
			return true
		}
	}
	return false
}

func leadRejected(dp *DeclPattern, line string) bool {
	if len(dp.RejectLead) == 0 {
		return false
	}
	lead := firstWord(strings.TrimSpace(line))
	for _, r := range dp.RejectLead {
		if lead == r {
			return true
		}
	}
	return false
}
