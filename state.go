package html2md

import "strings"

// stackEntry is one open element on the nesting stack. hidden marks
// elements whose attributes requested invisibility (aria-hidden, inline
// display:none and friends); their descendants are suppressed like
// script or style content.
type stackEntry struct {
	name   string
	hidden bool
}

// ignoredNames are elements whose descendant content never appears in
// the output. meta is deliberately absent so an omitted closing tag
// doesn't swallow the rest of the document.
var ignoredNames = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"nav":      true,
	"template": true,
}

// convState is the shared mutable context of one conversion. Every
// handler receives it by pointer; nothing else reads or writes it.
type convState struct {
	out   *emitter
	table *tableBuilder

	stack []stackEntry

	inPre         bool
	inCode        bool
	inTable       bool
	inList        bool
	inOrderedList bool
	listIndex     int
	blockquote    int // depth, may be driven negative by stray closing tags

	tag     tagContext // the tag whose close triggered the current dispatch
	href    string     // captured by the anchor opening handler
	title   string     // captured by the anchor opening handler
	prevTag string     // name of the previously finalized tag
	tagText int        // bytes of text emitted since the last finalized tag
}

func newConvState() convState {
	return convState{out: &emitter{}, table: &tableBuilder{}}
}

func (s *convState) push(name string, hidden bool) {
	s.stack = append(s.stack, stackEntry{name: name, hidden: hidden})
}

// popMatching pops the top entry when it matches name. A closing tag
// that doesn't match the top of stack is tolerated and leaves the stack
// alone.
func (s *convState) popMatching(name string) {
	if n := len(s.stack); n > 0 && s.stack[n-1].name == name {
		s.stack = s.stack[:n-1]
	}
}

// suppressed reports whether emission is currently disabled by an
// ignored or hidden ancestor. A pre or title element anywhere on the
// stack re-enables emission: preformatted content and document titles
// always surface.
func (s *convState) suppressed() bool {
	ignored := false
	for _, entry := range s.stack {
		if entry.name == "pre" || entry.name == "title" {
			return false
		}
		if entry.hidden || ignoredNames[entry.name] {
			ignored = true
		}
	}
	return ignored
}

// attr returns a captured attribute of the current tag.
func (s *convState) attr(name string) string {
	return s.tag.attrs[name]
}

// quotePrefix returns the "> " run for the current blockquote depth.
func (s *convState) quotePrefix() string {
	if s.blockquote <= 0 {
		return ""
	}
	return strings.Repeat("> ", s.blockquote)
}

// hiddenByAttributes applies the visibility heuristic to a tag's
// attributes: aria-hidden, inline styles that make the element
// invisible, or GitHub's collapsed-details class.
func hiddenByAttributes(attrs map[string]string) bool {
	if len(attrs) == 0 {
		return false
	}
	if v, ok := attrs["aria-hidden"]; ok && v != "false" {
		return true
	}
	if style, ok := attrs["style"]; ok {
		style = strings.ReplaceAll(style, " ", "")
		if strings.Contains(style, "display:none") ||
			strings.Contains(style, "visibility:hidden") ||
			strings.Contains(style, "opacity:0") {
			return true
		}
	}
	if strings.Contains(attrs["class"], "Details-content--hidden-not-important") {
		return true
	}
	return false
}
