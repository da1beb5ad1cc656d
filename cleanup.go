package html2md

import "strings"

// cleanupMarkdown is the post-process normalizer: it left-trims every
// physical line, collapses runs of three or more blank lines down to
// two, and preserves fenced and tab-indented code regions verbatim.
// Trailing blanks are deliberately kept: hard breaks ("  \n") and the
// spacing emitted after emphasis markers depend on them.
//
// The pass is idempotent: applying it twice equals applying it once.
func cleanupMarkdown(md string) string {
	if md == "" {
		return ""
	}

	lines := strings.Split(md, "\n")
	// A trailing newline produces a final empty element; dropping it
	// keeps the pass idempotent since every kept line is re-terminated.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var b strings.Builder
	b.Grow(len(md))

	blanks := 0
	inFence := false

	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			b.WriteString(trimmed)
			b.WriteByte('\n')
			blanks = 0
			continue
		}
		if inFence || strings.HasPrefix(line, "\t") {
			// Code content: verbatim, including leading whitespace.
			b.WriteString(line)
			b.WriteByte('\n')
			blanks = 0
			continue
		}
		if strings.TrimSpace(trimmed) == "" {
			if blanks < 2 {
				b.WriteByte('\n')
				blanks++
			}
			continue
		}
		b.WriteString(trimmed)
		b.WriteByte('\n')
		blanks = 0
	}

	return b.String()
}
