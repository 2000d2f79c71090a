// # internal/heuristic/modifiers.go
package heuristic

import "sort"

// extractModifiers returns the vocabulary words present as whole tokens on
// the declaration line, sorted and deduplicated. The line is tokenized once
// so cost scales with line length plus vocabulary size.
func extractModifiers(line string, vocab map[string]bool) []string {
	if len(vocab) == 0 {
		return nil
	}

	found := make(map[string]bool)
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := line[start:end]
		if vocab[word] {
			found[word] = true
		}
		start = -1
	}

	for i := 0; i < len(line); i++ {
		if isWordByte(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(line))

	if len(found) == 0 {
		return nil
	}
	mods := make([]string, 0, len(found))
	for w := range found {
		mods = append(mods, w)
	}
	sort.Strings(mods)
	return mods
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
