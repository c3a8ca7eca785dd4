// pkg/scalp/extract.go
package scalp

import (
	"strings"

	"github.com/law-makers/scalp/pkg/selector"
	"github.com/law-makers/scalp/pkg/tagstream"
)

// extractOne applies f to the first sub-range matching sel. It fails when
// the query matches nothing or when f rejects the first match.
func extractOne[T any](sel selector.Selectable, f func([]tagstream.Token) (T, bool)) Scraper[T] {
	return New(func(r tagstream.Range) (T, bool) {
		ms := selector.MatchesStripped(sel, r)
		if len(ms) == 0 {
			var zero T
			return zero, false
		}
		return f(ms[0])
	})
}

// extractAll applies f to every sub-range matching sel, keeping successful
// results in document order. Unlike Chroots, a query matching nothing fails
// the whole scraper; only per-match rejections by f are skipped.
func extractAll[T any](sel selector.Selectable, f func([]tagstream.Token) (T, bool)) Scraper[[]T] {
	return New(func(r tagstream.Range) ([]T, bool) {
		ms := selector.MatchesStripped(sel, r)
		if len(ms) == 0 {
			return nil, false
		}
		out := make([]T, 0, len(ms))
		for _, m := range ms {
			if v, ok := f(m); ok {
				out = append(out, v)
			}
		}
		return out, true
	})
}

// Text extracts the concatenated text content of the first match of sel.
func Text(sel selector.Selectable) Scraper[string] {
	return extractOne(sel, textOf)
}

// Texts extracts the text content of every match of sel. It fails when sel
// matches nothing.
func Texts(sel selector.Selectable) Scraper[[]string] {
	return extractAll(sel, textOf)
}

// HTML extracts the re-serialized markup of the first match of sel,
// including its boundary tags.
func HTML(sel selector.Selectable) Scraper[string] {
	return extractOne(sel, htmlOf)
}

// HTMLs extracts the markup of every match of sel.
func HTMLs(sel selector.Selectable) Scraper[[]string] {
	return extractAll(sel, htmlOf)
}

// InnerHTML extracts the markup of the first match of sel with its
// boundary tags stripped. A match of fewer than two tokens (a bare text
// node or a self-contained element) has no interior and yields "".
func InnerHTML(sel selector.Selectable) Scraper[string] {
	return extractOne(sel, innerHTMLOf)
}

// InnerHTMLs extracts the interior markup of every match of sel.
func InnerHTMLs(sel selector.Selectable) Scraper[[]string] {
	return extractAll(sel, innerHTMLOf)
}

// Attr extracts the named attribute from the opening element heading the
// first match of sel. It fails when sel matches nothing, when the first
// match is not headed by an opening element, or when the attribute is
// absent.
func Attr(name string, sel selector.Selectable) Scraper[string] {
	name = strings.ToLower(name)
	return extractOne(sel, func(toks []tagstream.Token) (string, bool) {
		return attrOf(toks, name)
	})
}

// Attrs extracts the named attribute from every match of sel. Matches not
// headed by an opening element, or lacking the attribute, are skipped
// rather than failing the scraper; but a query matching nothing still
// fails, even though the skipping can legally produce an empty result.
func Attrs(name string, sel selector.Selectable) Scraper[[]string] {
	name = strings.ToLower(name)
	return extractAll(sel, func(toks []tagstream.Token) (string, bool) {
		return attrOf(toks, name)
	})
}

func textOf(toks []tagstream.Token) (string, bool) {
	return tagstream.TextContent(toks), true
}

func htmlOf(toks []tagstream.Token) (string, bool) {
	return tagstream.Render(toks), true
}

func innerHTMLOf(toks []tagstream.Token) (string, bool) {
	if len(toks) < 2 {
		return "", true
	}
	return tagstream.Render(toks[1 : len(toks)-1]), true
}

func attrOf(toks []tagstream.Token, name string) (string, bool) {
	if len(toks) == 0 {
		return "", false
	}
	return toks[0].Attr(name)
}
