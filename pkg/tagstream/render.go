// pkg/tagstream/render.go
package tagstream

import (
	"strings"

	"golang.org/x/net/html"
)

// Render re-serializes a token sequence into markup text. Text payloads are
// entity-escaped on the way out, so Render(TokenizeString(s)) is stable for
// well-formed input.
func Render(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		renderToken(&b, t)
	}
	return b.String()
}

func renderToken(b *strings.Builder, t Token) {
	switch t.Kind {
	case Open:
		b.WriteByte('<')
		b.WriteString(t.Name)
		for _, a := range t.Attrs {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(a.Val))
			b.WriteByte('"')
		}
		if t.SelfClosing && !voidElements[t.Name] {
			b.WriteByte('/')
		}
		b.WriteByte('>')
	case Close:
		b.WriteString("</")
		b.WriteString(t.Name)
		b.WriteByte('>')
	case Text:
		b.WriteString(html.EscapeString(t.Data))
	case Comment:
		b.WriteString("<!--")
		b.WriteString(t.Data)
		b.WriteString("-->")
	case Doctype:
		b.WriteString("<!DOCTYPE ")
		b.WriteString(t.Data)
		b.WriteByte('>')
	}
}

// TextContent concatenates the text tokens of a sequence, in order,
// ignoring all markup. Entities stay decoded.
func TextContent(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		if t.Kind == Text {
			b.WriteString(t.Data)
		}
	}
	return b.String()
}
