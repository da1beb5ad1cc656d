package html2md

import (
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
)

// elementHandler is the pair of behaviors an element contributes to the
// conversion: one fired when its opening tag is fully scanned, one when
// its closing tag is. Handlers are side-effecting transforms over the
// shared conversion state and must tolerate malformed context: a
// closing behavior with unmet preconditions is a no-op, never a failure.
type elementHandler struct {
	open  func(s *convState)
	close func(s *convState)
}

func nop(*convState) {}

// handlers maps recognized elements to their behaviors. Names resolve
// through x/net's atom table at dispatch time; anything that doesn't
// resolve, or resolves to an atom absent here, falls back to a shared
// no-op so novel or unsupported elements never abort a conversion.
var handlers = map[atom.Atom]elementHandler{
	atom.H1: heading(1),
	atom.H2: heading(2),
	atom.H3: heading(3),
	atom.H4: heading(4),
	atom.H5: heading(5),
	atom.H6: heading(6),

	atom.P: {open: openParagraph, close: closeParagraph},
	atom.A: {open: openAnchor, close: closeAnchor},

	atom.B:      {open: openBold, close: closeBold},
	atom.Strong: {open: openBold, close: closeBold},
	atom.I:      {open: openItalic, close: closeItalic},
	atom.Em:     {open: openItalic, close: closeItalic},
	atom.Cite:   {open: openItalic, close: closeItalic},
	atom.Dfn:    {open: openItalic, close: closeItalic},
	atom.U:      {open: openUnderline, close: closeUnderline},
	atom.Del:    {open: openStrikethrough, close: closeStrikethrough},
	atom.S:      {open: openStrikethrough, close: closeStrikethrough},

	atom.Br:  {open: openBreak, close: nop},
	atom.Hr:  {open: openRule, close: nop},
	atom.Div: {open: openDiv, close: nop},

	atom.Ul: {open: openUnorderedList, close: closeUnorderedList},
	atom.Ol: {open: openOrderedList, close: closeOrderedList},
	atom.Li: {open: openListItem, close: closeListItem},

	atom.Pre:  {open: openPre, close: closePre},
	atom.Code: {open: openCode, close: closeCode},

	atom.Img: {open: openImage, close: closeImage},

	atom.Table:      {open: openTable, close: closeTable},
	atom.Tr:         {open: openTableRow, close: closeTableRow},
	atom.Th:         {open: openTableHeader, close: nop},
	atom.Td:         {open: openTableData, close: nop},
	atom.Blockquote: {open: openBlockquote, close: closeBlockquote},

	atom.Span:   {open: nop, close: closeSpan},
	atom.Option: {open: nop, close: closeOption},
	atom.Title:  {open: nop, close: closeTitle},

	// Recognized so their tags nest cleanly but contribute nothing.
	atom.Head: {open: nop, close: nop},
	atom.Meta: {open: nop, close: nop},
	atom.Link: {open: nop, close: nop},
}

// lookupHandler resolves an element name to its handler pair.
func lookupHandler(name string) elementHandler {
	if h, ok := handlers[atom.Lookup([]byte(name))]; ok {
		return h
	}
	return elementHandler{open: nop, close: nop}
}

// Headings

func heading(level int) elementHandler {
	marker := "\n" + strings.Repeat("#", level) + " "
	return elementHandler{
		open: func(s *convState) {
			s.out.writeString(marker)
		},
		close: func(s *convState) {
			// A lone space after the marker means the heading was empty.
			if s.out.last != ' ' {
				s.out.writeByte('\n')
			}
		},
	}
}

// Paragraphs

func openParagraph(s *convState) {
	if s.inList && s.prevTag == "p" {
		s.out.writeString("\n\t") // continuation paragraph inside a list item
	} else if !s.inList && s.blockquote == 0 {
		s.out.writeByte('\n')
	}
	if s.blockquote > 0 {
		s.out.writeString("> \n")
		s.out.writeString(s.quotePrefix())
	}
}

func closeParagraph(s *convState) {
	if s.out.len() > 0 {
		s.out.writeByte('\n')
	}
}

// Anchors and images

func openAnchor(s *convState) {
	if s.prevTag == "img" {
		s.out.writeByte('\n')
	}
	s.title = s.attr("title")
	s.href = s.attr("href")
	s.out.trimRightBlanks()
	s.out.blank()
	s.out.writeByte('[')
}

func closeAnchor(s *convState) {
	if s.out.last == ' ' {
		s.out.shorten(1)
	}
	if s.out.last == '[' {
		// Empty anchor text: retract the opening bracket entirely.
		s.out.shorten(1)
		return
	}
	s.out.writeString("](")
	s.out.writeString(s.href)
	if s.title != "" {
		s.out.writeString(` "`)
		s.out.writeString(s.title)
		s.out.writeByte('"')
	}
	s.out.writeString(") ")
	if s.prevTag == "img" {
		s.out.writeByte('\n')
	}
}

func openImage(s *convState) {
	if s.prevTag != "a" && s.out.last != '\n' {
		s.out.writeByte('\n')
	}
	s.out.writeString("![")
	s.out.writeString(s.attr("alt"))
	s.out.writeString("](")
	s.out.writeString(s.attr("src"))
	s.out.writeByte(')')
}

func closeImage(s *convState) {
	if s.prevTag == "a" {
		s.out.writeByte('\n')
	}
}

// Inline emphasis

func openBold(s *convState) {
	if s.out.last != ' ' {
		s.out.blank()
	}
	s.out.writeString("**")
}

func closeBold(s *convState) {
	if s.out.last == ' ' {
		s.out.shorten(1)
	}
	s.out.writeString("** ")
}

func openItalic(s *convState) {
	if s.out.last != ' ' {
		s.out.blank()
	}
	s.out.writeByte('*')
}

func closeItalic(s *convState) {
	if s.out.last == ' ' {
		s.out.shorten(1)
	}
	s.out.writeString("* ")
}

// Markdown has no native underline, so <u> survives as literal markup.
func openUnderline(s *convState) {
	if s.out.last == ' ' && s.out.last2 == ' ' {
		s.out.shorten(1)
	}
	s.out.writeString("<u>")
}

func closeUnderline(s *convState) {
	if s.out.last == ' ' {
		s.out.shorten(1)
	}
	s.out.writeString("</u>")
}

func openStrikethrough(s *convState) {
	if s.out.last != ' ' {
		s.out.blank()
	}
	s.out.writeByte('~')
}

func closeStrikethrough(s *convState) {
	if s.out.last == ' ' {
		s.out.shorten(1)
	}
	s.out.writeString("~ ")
}

// Breaks, rules, containers

func openBreak(s *convState) {
	if s.inTable {
		if s.out.last == ' ' {
			s.out.shorten(1)
		}
		s.out.writeString("<br>") // a newline would end the table row
	} else if s.out.len() > 0 {
		s.out.writeString("  \n")
	}
	s.out.writeString(s.quotePrefix())
}

func openRule(s *convState) {
	s.out.writeString("\n---\n")
}

func openDiv(s *convState) {
	if s.out.last != '\n' {
		s.out.writeByte('\n')
	}
	if s.out.last2 != '\n' {
		s.out.writeByte('\n')
	}
}

// Lists

func openUnorderedList(s *convState) {
	if s.inList || s.inTable {
		return
	}
	s.inList = true
	s.out.writeByte('\n')
}

func closeUnorderedList(s *convState) {
	if s.inTable {
		return
	}
	s.inList = false
	// Trailing list punctuation two bytes back means this close belongs
	// to a nested bare list; the enclosing one is still open.
	switch s.out.last2 {
	case '*', '-', '+', '.', ')':
		if s.prevTag != "p" {
			s.inList = true
		}
	}
	if s.out.last2 == '\n' && s.out.last == '\n' {
		s.out.shorten(1)
	} else if s.out.last != '\n' {
		s.out.writeByte('\n')
	}
	s.out.writeByte('\n')
}

func openOrderedList(s *convState) {
	if s.inTable {
		return
	}
	s.inList = true
	s.inOrderedList = true
	s.listIndex = 0
	s.out.replaceTrailingSpaceWithNewline()
	s.out.writeByte('\n')
}

func closeOrderedList(s *convState) {
	if s.inTable {
		return
	}
	s.inList = false
	s.inOrderedList = false
	s.out.writeByte('\n')
}

func openListItem(s *convState) {
	if s.inTable {
		return
	}
	if !s.inOrderedList {
		s.out.writeString("- ")
		return
	}
	s.listIndex++
	s.out.writeString(strconv.Itoa(s.listIndex) + ". ")
}

func closeListItem(s *convState) {
	if s.inTable {
		return
	}
	if s.out.last != '\n' {
		s.out.writeByte('\n')
	}
}

// Code

func openPre(s *convState) {
	s.inPre = true
	if s.out.last != '\n' {
		s.out.writeByte('\n')
	}
	if s.out.last2 != '\n' {
		s.out.writeByte('\n')
	}
	if s.blockquote > 0 {
		s.out.writeString(s.quotePrefix())
		s.out.shorten(1)
	}
	if s.inList && s.prevTag != "p" {
		s.out.shorten(2)
	}
	if s.inList || s.blockquote > 0 {
		s.out.writeString("\t\t") // indented block: fences don't nest here
	} else {
		s.out.writeString("```")
	}
}

func closePre(s *convState) {
	s.inPre = false
	if s.inList || s.blockquote > 0 {
		return
	}
	if s.out.last != '\n' {
		s.out.writeByte('\n')
	}
	s.out.writeString("```\n")
}

func openCode(s *convState) {
	s.inCode = true
	if !s.inPre {
		s.out.writeByte('`')
		return
	}
	if s.out.last == ' ' {
		s.out.shorten(1)
	}
	if s.inList || s.blockquote > 0 {
		return
	}
	if class := s.attr("class"); strings.HasPrefix(class, "language-") {
		s.out.writeString(strings.TrimPrefix(class, "language-"))
	}
	s.out.writeByte('\n')
}

func closeCode(s *convState) {
	s.inCode = false
	if s.inPre {
		return
	}
	if s.out.last == ' ' {
		s.out.shorten(1)
	}
	s.out.writeString("` ")
}

// Tables

func openTable(s *convState) {
	s.inTable = true
	s.out.writeByte('\n')
}

func closeTable(s *convState) {
	s.inTable = false
	s.out.writeByte('\n')
}

func openTableRow(s *convState) {
	s.out.writeByte('\n')
}

func closeTableRow(s *convState) {
	if s.out.last == '|' {
		// Kept for compatibility: the original emits a newline here
		// instead of a second pipe and flags it as a known bug.
		s.out.writeByte('\n')
	} else {
		s.out.writeByte('|')
	}
	if !s.table.empty() {
		if s.out.last != '\n' {
			s.out.writeByte('\n')
		}
		s.out.writeString(s.table.flush())
	}
}

func openTableHeader(s *convState) {
	s.table.addColumn(s.attr("align"))
	s.out.writeString("| ")
}

func openTableData(s *convState) {
	if s.out.last2 != '|' {
		s.out.writeString("| ")
	}
}

// Blockquotes

func openBlockquote(s *convState) {
	s.blockquote++
	if s.blockquote == 1 {
		s.out.writeByte('\n')
	}
}

func closeBlockquote(s *convState) {
	s.blockquote--
}

// Odds and ends

func closeSpan(s *convState) {
	if s.out.last != ' ' && s.tagText > 0 {
		s.out.blank()
	}
}

func closeOption(s *convState) {
	if s.out.len() > 0 {
		s.out.writeString("  \n")
	}
}

// closeTitle rewrites the just-emitted line into a setext level-1
// heading by underlining it with '=' characters.
func closeTitle(s *convState) {
	n := s.out.lineLen()
	s.out.writeByte('\n')
	s.out.writeString(strings.Repeat("=", n))
	s.out.writeString("\n\n")
}
