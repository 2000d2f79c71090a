// # internal/heuristic/doc.go
package heuristic

import "strings"

// extractDoc finds documentation for a declaration whose header is at
// declLine with a resolved body of [bodyStart, bodyEnd]. Conventions are
// tried in the profile's Docs order; the first hit wins. nil means no
// documentation was found.
func extractDoc(p *Profile, lines []string, declLine, bodyStart, bodyEnd int) *string {
	for _, style := range p.Docs {
		var doc *string
		switch style {
		case DocInnerString:
			doc = innerStringDoc(p, lines, bodyStart, bodyEnd)
		default:
			doc = leadingDoc(p, lines, declLine)
		}
		if doc != nil {
			return doc
		}
	}
	return nil
}

// leadingDoc collects the doc comment directly above declLine: first a
// contiguous run of doc-marker line comments, then a single block comment
// whose close token ends on the adjacent line.
func leadingDoc(p *Profile, lines []string, declLine int) *string {
	if declLine == 0 {
		return nil
	}

	if doc := leadingMarkerRun(p, lines, declLine); doc != nil {
		return doc
	}
	return leadingBlockDoc(p, lines, declLine)
}

func leadingMarkerRun(p *Profile, lines []string, declLine int) *string {
	markers := p.DocLineTokens
	if len(markers) == 0 {
		markers = p.LineComments
	}

	// The run must be adjacent to the declaration and uniform in marker.
	marker := ""
	start := declLine
	for li := declLine - 1; li >= 0; li-- {
		trimmed := strings.TrimSpace(lines[li])
		tok := longestMarker(markers, trimmed)
		if tok == "" {
			break
		}
		if marker == "" {
			marker = tok
		} else if tok != marker {
			break
		}
		start = li
	}
	if start == declLine {
		return nil
	}

	parts := make([]string, 0, declLine-start)
	for li := start; li < declLine; li++ {
		trimmed := strings.TrimSpace(lines[li])
		parts = append(parts, strings.TrimSpace(strings.TrimPrefix(trimmed, marker)))
	}
	return normalizeDoc(strings.Join(parts, "\n"))
}

// longestMarker returns the longest marker prefixing s, so "///" wins over
// "//" when a profile lists both.
func longestMarker(markers []string, s string) string {
	best := ""
	for _, m := range markers {
		if strings.HasPrefix(s, m) && len(m) > len(best) {
			best = m
		}
	}
	return best
}

func leadingBlockDoc(p *Profile, lines []string, declLine int) *string {
	pairs := p.DocBlocks
	if len(pairs) == 0 {
		pairs = p.BlockComments
	}

	above := strings.TrimSpace(lines[declLine-1])
	for _, pair := range pairs {
		if !strings.HasSuffix(above, pair.Close) {
			continue
		}

		// Walk up to the line carrying the open token.
		lim := p.limits()
		lowest := declLine - 1 - lim.MaxBlockSearchLines
		if lowest < 0 {
			lowest = 0
		}
		for li := declLine - 1; li >= lowest; li-- {
			trimmed := strings.TrimSpace(lines[li])
			if !strings.Contains(trimmed, pair.Open) {
				continue
			}

			body := make([]string, 0, declLine-li)
			for bi := li; bi < declLine; bi++ {
				t := strings.TrimSpace(lines[bi])
				if bi == li {
					if idx := strings.Index(t, pair.Open); idx >= 0 {
						t = t[idx+len(pair.Open):]
					}
				}
				if bi == declLine-1 {
					t = strings.TrimSuffix(strings.TrimSpace(t), pair.Close)
				}
				body = append(body, stripCommentLeader(t))
			}
			return normalizeDoc(strings.Join(body, "\n"))
		}
		return nil
	}
	return nil
}

// innerStringDoc probes the first statement of a block body for a
// string-literal docstring. The literal must close within the body;
// unterminated strings are not treated as documentation.
func innerStringDoc(p *Profile, lines []string, bodyStart, bodyEnd int) *string {
	if bodyStart > bodyEnd || bodyStart >= len(lines) {
		return nil
	}

	first := -1
	for li := bodyStart; li <= bodyEnd && li < len(lines); li++ {
		trimmed := strings.TrimSpace(lines[li])
		if trimmed == "" || isLineComment(p, trimmed) {
			continue
		}
		first = li
		break
	}
	if first < 0 {
		return nil
	}

	trimmed := strings.TrimSpace(lines[first])

	if p.Strings.Triple {
		for _, q := range p.Strings.Quotes {
			tok := strings.Repeat(string(q), 3)
			if !strings.HasPrefix(trimmed, tok) {
				continue
			}
			rest := trimmed[len(tok):]
			if idx := strings.Index(rest, tok); idx >= 0 {
				// Single-line triple-quoted doc. An empty body is a real
				// (empty) docstring, not an absent one.
				content := rest[:idx]
				return &content
			}
			parts := []string{rest}
			for li := first + 1; li <= bodyEnd && li < len(lines); li++ {
				if idx := strings.Index(lines[li], tok); idx >= 0 {
					parts = append(parts, strings.TrimSpace(lines[li][:idx]))
					joined := strings.TrimSpace(strings.Join(parts, "\n"))
					return &joined
				}
				parts = append(parts, strings.TrimSpace(lines[li]))
			}
			return nil // never closed inside the body
		}
	}

	for _, q := range p.Strings.Quotes {
		tok := string(q)
		if !strings.HasPrefix(trimmed, tok) {
			continue
		}
		rest := trimmed[len(tok):]
		if idx := strings.Index(rest, tok); idx >= 0 {
			content := rest[:idx]
			return &content
		}
	}
	return nil
}

// stripCommentLeader removes the interior decoration of block doc comments:
// leading asterisks and bullet leaders.
func stripCommentLeader(s string) string {
	t := strings.TrimSpace(s)
	for len(t) > 0 && (t[0] == '*' || t[0] == '!') {
		t = strings.TrimSpace(t[1:])
	}
	return t
}

// normalizeDoc trims outer whitespace and reports empty text as absent.
func normalizeDoc(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
