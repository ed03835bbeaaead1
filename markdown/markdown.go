// Package markdown converts post bodies from Markdown to HTML.
//
// Bodies are authored by the site owner, so raw HTML inside them is passed
// through untouched. Strikethrough (~~text~~) and pipe tables are enabled on
// top of CommonMark.
package markdown

import (
	"bytes"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Table,
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// Render converts src to HTML.
func Render(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, src); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// RenderMarkdown writes the HTML representation of src to w.
func RenderMarkdown(w io.Writer, src []byte) error {
	return md.Convert(src, w)
}

