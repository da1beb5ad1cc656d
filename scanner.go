package html2md

import (
	"regexp"
	"strings"
)

// Line ending normalization, as in PrepareHTML of the original.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// entityReplacer rewrites the handful of entities the converter cares
// about before scanning. &lt; and &gt; stay encoded on purpose: decoding
// them would inject tag markup into the text. strings.Replacer performs
// a single pass without rescanning, so "&amp;nbsp;" correctly yields the
// literal "&nbsp;".
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&quot;", `"`,
	"&apos;", "'",
	"&#39;", "'",
	"&amp;", "&",
)

// prepareHTML normalizes line endings and decodes common entities.
func prepareHTML(html string) string {
	html = crlfOrCR.ReplaceAllString(html, "\n")
	return entityReplacer.Replace(html)
}

// tagContext is the transient per-occurrence record of the tag being
// scanned: its name, open/close/self-closing markers, and the attributes
// captured so far. It is reset each time the scanner enters a new tag.
type tagContext struct {
	name        []byte
	closing     bool
	selfClosing bool
	attrs       map[string]string

	// in-flight attribute scanning
	nameDone bool
	attrName []byte
	attrVal  []byte
	inValue  bool
	quote    byte // 0 while unquoted
}

func (t *tagContext) reset() {
	t.name = t.name[:0]
	t.closing = false
	t.selfClosing = false
	t.attrs = nil
	t.nameDone = false
	t.attrName = t.attrName[:0]
	t.attrVal = t.attrVal[:0]
	t.inValue = false
	t.quote = 0
}

// feed consumes one byte of tag markup and reports whether the tag is
// complete (its closing '>' was seen).
func (t *tagContext) feed(b byte) bool {
	if t.inValue {
		return t.feedValue(b)
	}
	switch b {
	case '>':
		t.finishName()
		t.storeAttr()
		return true
	case '/':
		if !t.nameDone && len(t.name) == 0 {
			t.closing = true
		} else {
			t.selfClosing = true
		}
	case '=':
		if t.nameDone && len(t.attrName) > 0 {
			t.inValue = true
			t.quote = 0
			t.attrVal = t.attrVal[:0]
		}
	case ' ', '\t', '\n':
		t.finishName()
		t.storeAttr() // valueless attribute, if one was pending
	default:
		if t.nameDone {
			t.attrName = append(t.attrName, lowerByte(b))
		} else {
			t.name = append(t.name, lowerByte(b))
		}
	}
	return false
}

// feedValue consumes one byte of an attribute value. Quoted values end
// at the matching quote; unquoted values end at whitespace or '>'.
func (t *tagContext) feedValue(b byte) bool {
	if t.quote != 0 {
		if b == t.quote {
			t.storeAttr()
		} else {
			t.attrVal = append(t.attrVal, b)
		}
		return false
	}
	switch {
	case len(t.attrVal) == 0 && (b == '"' || b == '\''):
		t.quote = b
	case b == ' ' || b == '\t' || b == '\n':
		t.storeAttr()
	case b == '>':
		t.storeAttr()
		return true
	default:
		t.attrVal = append(t.attrVal, b)
	}
	return false
}

func (t *tagContext) finishName() {
	if !t.nameDone && len(t.name) > 0 {
		t.nameDone = true
	}
}

// storeAttr records the pending attribute, if any, and resets the
// attribute scratch state.
func (t *tagContext) storeAttr() {
	if len(t.attrName) > 0 {
		if t.attrs == nil {
			t.attrs = make(map[string]string, 4)
		}
		t.attrs[string(t.attrName)] = string(t.attrVal)
	}
	t.attrName = t.attrName[:0]
	t.attrVal = t.attrVal[:0]
	t.inValue = false
	t.quote = 0
}

func (t *tagContext) tagName() string { return string(t.name) }

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// voidElements have no distinct closing tag; their opening and closing
// behaviors fire back to back and they never enter the nesting stack.
var voidElements = map[string]bool{
	"br":   true,
	"hr":   true,
	"img":  true,
	"meta": true,
	"link": true,
}

// textByte emits one byte of content found outside tag markup. Inside
// pre or code the byte passes through verbatim; otherwise runs of
// whitespace collapse to a single space, newlines included, except that
// newlines inside a blockquote restart the "> " prefix.
func (s *convState) textByte(b byte) {
	if s.suppressed() {
		return
	}
	if s.inPre || s.inCode {
		s.out.writeByte(b)
		s.tagText++
		return
	}
	switch b {
	case '\n':
		if s.blockquote > 0 {
			s.out.writeByte('\n')
			s.out.writeString(s.quotePrefix())
			return
		}
		s.collapseSpace()
	case ' ', '\t':
		s.collapseSpace()
	default:
		s.out.writeByte(b)
		s.tagText++
	}
}

// collapseSpace appends a single space unless the output is empty or
// already ends with a space or newline.
func (s *convState) collapseSpace() {
	switch s.out.last {
	case 0, ' ', '\n':
		return
	}
	s.out.writeByte(' ')
	s.tagText++
}
