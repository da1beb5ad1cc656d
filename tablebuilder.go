package html2md

import "strings"

// tableBuilder accumulates the column-alignment separator line while the
// header cells of a table are scanned. The line is flushed into the
// output when the header row closes and cleared for the next table.
type tableBuilder struct {
	line strings.Builder
}

// addColumn appends one column segment derived from the cell's align
// attribute: ":---" left, "---:" right, ":---:" center, "---" default.
func (t *tableBuilder) addColumn(align string) {
	t.line.WriteString("| ")
	if align == "left" || align == "center" {
		t.line.WriteByte(':')
	}
	t.line.WriteString("---")
	if align == "right" || align == "center" {
		t.line.WriteByte(':')
	}
	t.line.WriteByte(' ')
}

func (t *tableBuilder) empty() bool { return t.line.Len() == 0 }

// flush returns the pending separator line terminated with a closing
// pipe and newline, and clears the builder.
func (t *tableBuilder) flush() string {
	s := t.line.String() + "|\n"
	t.line.Reset()
	return s
}
