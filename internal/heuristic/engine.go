// # internal/heuristic/engine.go
package heuristic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoProfile is returned inside ParseResult.Err when Parse is called
// without a grammar profile.
var ErrNoProfile = errors.New("no grammar profile supplied")

// Parse extracts the declaration tree and import set from content using the
// given grammar profile. It performs no I/O; path is used only for
// diagnostics. Any input that is text yields a ParseResult; internal
// failures are converted into the result's Err field, never raised.
func Parse(content, path string, p *Profile) (result ParseResult) {
	result.EngineUsed = EngineHeuristic

	defer func() {
		if r := recover(); r != nil {
			result = ParseResult{
				Err:        fmt.Errorf("heuristic parse of %s failed: %v", path, r),
				EngineUsed: EngineHeuristic,
			}
		}
	}()

	if p == nil {
		result.Err = ErrNoProfile
		return result
	}
	if content == "" {
		return result
	}

	// Byte sequences that are not valid UTF-8 are still scanned; invalid
	// bytes are replaced so pattern matching stays well defined.
	content = strings.ToValidUTF8(content, "�")

	lines := splitLines(content)
	b := newBuilder(p, lines)
	b.scan(0, len(lines)-1, 1, &result.Declarations)

	result.Imports = b.imports.sorted()
	clampSpans(result.Declarations, len(lines)-1)
	return result
}

// splitLines splits on \n and tolerates \r\n input.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// clampSpans enforces EndLine >= StartLine and keeps spans inside the file.
func clampSpans(decls []*Declaration, lastLine int) {
	for _, d := range decls {
		if d.EndLine > lastLine {
			d.EndLine = lastLine
		}
		if d.EndLine < d.StartLine {
			d.EndLine = d.StartLine
		}
		clampSpans(d.Children, d.EndLine)
	}
}
