package html2md

// Notes:
// - Parses emitted Markdown with goldmark (GFM) and asserts the block
//   structure a downstream renderer would see, instead of matching
//   strings: headings, lists, fenced code with its language, and tables
//   must survive a real Markdown parser.

import (
	"bytes"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

const structureFixture = `<h1>Title</h1>` +
	`<p>Some <b>bold</b> and <i>italic</i> text with a ` +
	`<a href="https://example.com">link</a>.</p>` +
	`<ul><li>first</li><li>second</li></ul>` +
	`<pre><code class="language-python">x = 1</code></pre>` +
	`<blockquote><p>quoted</p></blockquote>` +
	`<table><tr><th align="center">H</th></tr><tr><td>d</td></tr></table>`

func TestEmittedMarkdownStructure(t *testing.T) {
	src := []byte(Convert(structureFixture))

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(src))

	var (
		headingLevels []int
		lists         int
		blockquotes   int
		tables        int
		codeLang      string
	)

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			headingLevels = append(headingLevels, node.Level)
		case *ast.List:
			lists++
		case *ast.Blockquote:
			blockquotes++
		case *ast.FencedCodeBlock:
			codeLang = string(node.Language(src))
		case *east.Table:
			tables++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking parsed markdown: %v", err)
	}

	if len(headingLevels) == 0 || headingLevels[0] != 1 {
		t.Errorf("heading levels = %v, want a leading level 1", headingLevels)
	}
	if lists == 0 {
		t.Error("no list survived parsing")
	}
	if blockquotes == 0 {
		t.Error("no blockquote survived parsing")
	}
	if tables == 0 {
		t.Error("no table survived parsing")
	}
	if codeLang != "python" {
		t.Errorf("fenced code language = %q, want %q", codeLang, "python")
	}
}

func TestEmittedMarkdownRenders(t *testing.T) {
	src := []byte(Convert(structureFixture))

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		t.Fatalf("rendering emitted markdown: %v", err)
	}
	for _, want := range []string{"<h1", "<ul", "<table", "<blockquote"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}
