// # internal/heuristic/blocks.go
package heuristic

import "strings"

// scanState tracks what region of source the character scanner is inside.
type scanState struct {
	inBlockComment bool
	blockClose     string // close token of the active block comment

	inString   bool
	quote      byte
	rawString  bool
	tripleStr  bool
	tripleTok  string
}

// findBlockEnd locates the line containing the delimiter that closes the
// block opened at or after startLine. exact is false when the search window
// or character budget was exhausted and the returned line is the bounded
// estimate instead of a real match.
func findBlockEnd(p *Profile, lines []string, startLine int) (end int, exact bool) {
	lim := p.limits()
	depth := 0
	opened := false
	charBudget := lim.MaxBlockScanChars

	var st scanState

	lastLine := startLine + lim.MaxBlockSearchLines
	if lastLine > len(lines)-1 {
		lastLine = len(lines) - 1
	}

	for li := startLine; li <= lastLine; li++ {
		line := lines[li]
		inLineComment := false

		// Single-quoted and double-quoted literals do not survive a line
		// break; raw and triple-quoted ones do.
		if st.inString && !st.rawString && !st.tripleStr {
			st.inString = false
		}

		for ci := 0; ci < len(line); ci++ {
			charBudget--
			if charBudget <= 0 {
				return estimateEnd(p, lines, startLine), false
			}

			if inLineComment {
				break
			}

			if st.inBlockComment {
				if strings.HasPrefix(line[ci:], st.blockClose) {
					ci += len(st.blockClose) - 1
					st.inBlockComment = false
				}
				continue
			}

			if st.inString {
				c := line[ci]
				if !st.rawString && st.tripleStr {
					if strings.HasPrefix(line[ci:], st.tripleTok) {
						ci += len(st.tripleTok) - 1
						st.inString = false
						st.tripleStr = false
						continue
					}
					if p.Strings.Escape != 0 && c == p.Strings.Escape {
						ci++
					}
					continue
				}
				if !st.rawString && p.Strings.Escape != 0 && c == p.Strings.Escape {
					ci++
					continue
				}
				if c == st.quote {
					st.inString = false
					st.rawString = false
				}
				continue
			}

			// Comments open before anything else is considered.
			if tok := matchLineComment(p, line[ci:]); tok != "" {
				inLineComment = true
				continue
			}
			if pair, ok := matchBlockOpen(p, line[ci:]); ok {
				// Single-line block comments close within this loop.
				st.inBlockComment = true
				st.blockClose = pair.Close
				ci += len(pair.Open) - 1
				continue
			}

			c := line[ci]
			if isQuote(p, c) {
				st.inString = true
				st.quote = c
				st.rawString = c == p.Strings.Raw
				if p.Strings.Triple && !st.rawString {
					tok := strings.Repeat(string(c), 3)
					if strings.HasPrefix(line[ci:], tok) {
						st.tripleStr = true
						st.tripleTok = tok
						ci += 2
					}
				}
				continue
			}

			switch c {
			case p.OpenDelim:
				depth++
				opened = true
			case p.CloseDelim:
				depth--
				if opened && depth <= 0 {
					return li, true
				}
			}
		}
	}

	return estimateEnd(p, lines, startLine), false
}

// estimateEnd is the bounded fallback used when exact resolution fails.
func estimateEnd(p *Profile, lines []string, startLine int) int {
	end := startLine + p.limits().EstimateLookahead
	if end > len(lines)-1 {
		end = len(lines) - 1
	}
	return end
}

// indentBlockEnd resolves the extent of an indentation-delimited block whose
// header is at startLine: the block runs until the line before the first
// non-blank, non-comment line indented at or below the header.
func indentBlockEnd(p *Profile, lines []string, startLine int) int {
	lim := p.limits()
	header := indentWidth(lines[startLine])

	end := startLine
	lastLine := startLine + lim.MaxBlockSearchLines
	if lastLine > len(lines)-1 {
		lastLine = len(lines) - 1
	}

	for li := startLine + 1; li <= lastLine; li++ {
		trimmed := strings.TrimSpace(lines[li])
		if trimmed == "" || isLineComment(p, trimmed) {
			continue
		}
		if indentWidth(lines[li]) <= header {
			return end
		}
		end = li
	}
	return end
}

// keywordBlockEnd resolves Ruby-style blocks by counting opener keywords
// against the closing keyword. Openers only count when they lead a line,
// or when a trailing "do" opens an iterator block.
func keywordBlockEnd(p *Profile, lines []string, startLine int) int {
	lim := p.limits()
	depth := 1

	lastLine := startLine + lim.MaxBlockSearchLines
	if lastLine > len(lines)-1 {
		lastLine = len(lines) - 1
	}

	for li := startLine + 1; li <= lastLine; li++ {
		trimmed := strings.TrimSpace(lines[li])
		if trimmed == "" || isLineComment(p, trimmed) {
			continue
		}

		first := firstWord(trimmed)
		for _, opener := range p.BlockOpeners {
			if first == opener {
				depth++
				break
			}
		}
		if first != p.BlockCloser && trailingDo(stripLineComment(p, trimmed)) {
			depth++
		}
		if first == p.BlockCloser {
			depth--
			if depth <= 0 {
				return li
			}
		}
	}
	return estimateEnd(p, lines, startLine)
}

// trailingDo reports whether a line ends with an iterator block opener,
// with or without block parameters ("x.each do" / "x.each do |w|").
func trailingDo(s string) bool {
	if strings.HasSuffix(s, " do") {
		return true
	}
	if strings.HasSuffix(s, "|") && strings.Contains(s, " do |") {
		return true
	}
	return false
}

// resolveExtent dispatches to the block style of the profile and clamps the
// result into [startLine, maxLine].
func resolveExtent(p *Profile, lines []string, startLine, maxLine int) int {
	var end int
	switch p.Blocks {
	case BlockIndent:
		end = indentBlockEnd(p, lines, startLine)
	case BlockKeyword:
		end = keywordBlockEnd(p, lines, startLine)
	default:
		end, _ = findBlockEnd(p, lines, startLine)
	}
	if end > maxLine {
		end = maxLine
	}
	if end < startLine {
		end = startLine
	}
	return end
}

// indentWidth measures leading whitespace with tabs expanded to four columns.
func indentWidth(line string) int {
	width := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width
		}
	}
	return width
}

func isQuote(p *Profile, c byte) bool {
	for _, q := range p.Strings.Quotes {
		if c == q {
			return true
		}
	}
	return false
}

func matchLineComment(p *Profile, s string) string {
	for _, tok := range p.LineComments {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func matchBlockOpen(p *Profile, s string) (CommentPair, bool) {
	for _, pair := range p.BlockComments {
		if strings.HasPrefix(s, pair.Open) {
			return pair, true
		}
	}
	return CommentPair{}, false
}

// isLineComment reports whether an already-trimmed line is a line comment.
func isLineComment(p *Profile, trimmed string) bool {
	return matchLineComment(p, trimmed) != ""
}

// stripLineComment removes a trailing line comment, quote-unaware. Used only
// by keyword block scanning where precision is not needed.
func stripLineComment(p *Profile, s string) string {
	for _, tok := range p.LineComments {
		if idx := strings.Index(s, tok); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimRight(s, " \t")
}

func firstWord(s string) string {
	end := 0
	for end < len(s) {
		c := s[end]
		if c == ' ' || c == '\t' || c == ';' || c == '(' {
			break
		}
		end++
	}
	return s[:end]
}
