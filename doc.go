// Package html2md converts HTML markup into Markdown text.
//
// # Quick Start
//
// Use the stateless wrapper for one-shot conversions:
//
//	md := html2md.Convert("<h1>Hello</h1><p>World</p>")
//	fmt.Print(md)
//
// Use a Converter when you also want to know whether the input was
// well formed:
//
//	conv := html2md.NewConverter(html)
//	md := conv.ToMarkdown()
//	if !conv.IsWellFormed() {
//	    log.Println("input contained unclosed tags")
//	}
//
// # Conversion Pipeline
//
// The conversion is a single left-to-right scan of the input:
//
//  1. Input preparation (line ending normalization, common entities)
//  2. Tag scanning (text content vs. tag markup and attributes)
//  3. Per-element handler dispatch over shared conversion state
//  4. Whitespace cleanup (line trimming, blank line collapsing)
//
// No DOM tree is built; formatting decisions use the open-element stack,
// a handful of context flags, and a two-character lookback on the output
// buffer. Malformed input never aborts a conversion: unknown elements are
// ignored, mismatched closing tags are tolerated, and the only signal
// surfaced to the caller is the IsWellFormed boolean.
//
// # Supported Elements
//
// Headings, paragraphs, ordered and unordered lists, pipe tables, links,
// images, bold/italic/strikethrough, inline and fenced code (with a
// language tag from a "language-xxx" class), blockquotes, horizontal
// rules, and hard breaks. Underline and strikethrough are emitted as
// literal <u> and ~ markup since Markdown has no native underline.
// Content under script, style, noscript, nav, and template elements is
// suppressed, as is content hidden via aria-hidden or inline styles;
// pre and title content always surfaces.
//
// Do not convert HTML that nests an ordered list inside another list:
// the resulting formatting is undefined.
//
// # Concurrency
//
// A Converter owns its state for the duration of one conversion and is
// not safe for concurrent use. Distinct Converter instances share
// nothing and may run in parallel.
package html2md
