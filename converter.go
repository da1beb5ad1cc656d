package html2md

import "strings"

// Converter performs one HTML to Markdown conversion. It owns its
// conversion state exclusively for the duration of the call and caches
// the result: ToMarkdown converts on first use, later calls and
// IsWellFormed read the cached outcome.
//
// A Converter is not safe for concurrent use; independent Converters
// share nothing and may run on separate goroutines.
type Converter struct {
	html string
	st   convState

	inTag bool
	tag   tagContext

	converted  bool
	markdown   string
	wellFormed bool
}

// Convert is the stateless wrapper: HTML in, Markdown out. Use a
// Converter when the well-formedness of the input matters.
func Convert(html string) string {
	return NewConverter(html).ToMarkdown()
}

// NewConverter prepares a conversion of the given HTML.
func NewConverter(html string) *Converter {
	return &Converter{html: html, st: newConvState(), wellFormed: true}
}

// ToMarkdown converts the HTML and returns the cleaned-up Markdown.
// Conversion cannot fail: malformed input degrades to best-effort
// output rather than an error.
func (c *Converter) ToMarkdown() string {
	if !c.converted {
		c.run()
		c.converted = true
	}
	return c.markdown
}

// IsWellFormed reports whether every opened tag was closed by the end
// of the input. It converts first if ToMarkdown has not run yet.
func (c *Converter) IsWellFormed() bool {
	c.ToMarkdown()
	return c.wellFormed
}

// run scans the prepared input once, left to right, dispatching element
// handlers as tags complete, then applies the cleanup pass.
func (c *Converter) run() {
	in := prepareHTML(c.html)

	for i := 0; i < len(in); i++ {
		b := in[i]
		if c.inTag {
			if c.tag.feed(b) {
				c.finalizeTag()
				c.inTag = false
			}
			continue
		}
		if b != '<' {
			c.st.textByte(b)
			continue
		}
		if strings.HasPrefix(in[i:], "<!--") {
			// Comments may contain '>', so skip to the full terminator.
			if end := strings.Index(in[i:], "-->"); end >= 0 {
				i += end + 2
			} else {
				i = len(in)
			}
			continue
		}
		if i+1 < len(in) && in[i+1] == '!' {
			// <!DOCTYPE ...> and friends
			if end := strings.IndexByte(in[i:], '>'); end >= 0 {
				i += end
			} else {
				i = len(in)
			}
			continue
		}
		c.tag.reset()
		c.inTag = true
	}

	c.wellFormed = len(c.st.stack) == 0
	c.markdown = cleanupMarkdown(c.st.out.string())
}

// finalizeTag runs when the scanner reaches the '>' of a tag: it
// updates the open-element stack, resolves the handler pair, and fires
// the appropriate behavior unless an ignored ancestor suppresses it.
// Void and self-closed elements fire open and close back to back and
// never enter the stack.
func (c *Converter) finalizeTag() {
	s := &c.st
	name := c.tag.tagName()
	if name == "" {
		return // "<>" or "</>": nothing to do
	}
	s.tag = c.tag
	h := lookupHandler(name)

	if c.tag.closing {
		if !s.suppressed() {
			h.close(s)
		}
		s.popMatching(name)
	} else {
		void := voidElements[name] || c.tag.selfClosing
		if !void {
			s.push(name, hiddenByAttributes(c.tag.attrs))
		}
		if !s.suppressed() {
			h.open(s)
			if void {
				h.close(s)
			}
		}
	}

	s.prevTag = name
	s.tagText = 0
}
