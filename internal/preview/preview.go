// Package preview renders converted Markdown back into a standalone
// HTML document so the result of a conversion can be eyeballed in a
// browser. It is a CLI convenience on top of goldmark and makes no
// fidelity claim about the original HTML.
package preview

import (
	"bytes"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrRender indicates preview rendering failed.
var ErrRender = errors.New("preview rendering failed")

// htmlTemplate wraps goldmark's fragment output in a complete HTML5
// document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Markdown preview</title>
</head>
<body>
%s
</body>
</html>`

// Renderer converts Markdown to a standalone HTML preview document.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer with GFM extensions and syntax highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes instead of inline styles
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &Renderer{md: md}
}

// Render converts Markdown content to a standalone HTML5 document.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return fmt.Sprintf(htmlTemplate, buf.String()), nil
}
