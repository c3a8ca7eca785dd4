// pkg/scalp/goquery.go
package scalp

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// FromSelection builds a Document from the nodes of a goquery selection,
// so scrapers can run inside an existing goquery pipeline. Each node is
// re-serialized (outer markup included) and re-tokenized.
func FromSelection(sel *goquery.Selection) (*Document, error) {
	var b strings.Builder
	for _, n := range sel.Nodes {
		if err := html.Render(&b, n); err != nil {
			return nil, fmt.Errorf("failed to serialize selection: %w", err)
		}
	}
	return NewDocument(b.String()), nil
}

// FromGoqueryDocument builds a Document from a parsed goquery document.
func FromGoqueryDocument(doc *goquery.Document) (*Document, error) {
	return FromSelection(doc.Selection)
}
