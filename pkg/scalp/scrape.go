// pkg/scalp/scrape.go
package scalp

import (
	"fmt"
	"io"

	"github.com/law-makers/scalp/pkg/tagstream"
	"github.com/rs/zerolog/log"
)

// Document is a tokenized, canonicalized, position-indexed piece of markup,
// ready to be scraped any number of times. Documents are read-only after
// construction and safe to share across goroutines.
type Document struct {
	root tagstream.Range
}

// NewDocument tokenizes markup held in memory, repairs unbalanced tags and
// builds the position index.
func NewDocument(markup string) *Document {
	toks := tagstream.Canonicalize(tagstream.TokenizeString(markup))
	log.Debug().
		Int("tokens", len(toks)).
		Msg("Document tokenized")
	return &Document{root: tagstream.Index(toks)}
}

// FromReader builds a Document from a markup stream. The only error source
// is the reader itself; malformed markup is repaired, not rejected.
func FromReader(r io.Reader) (*Document, error) {
	toks, err := tagstream.Tokenize(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read markup: %w", err)
	}
	return &Document{root: tagstream.Index(tagstream.Canonicalize(toks))}, nil
}

// Root exposes the document's full indexed range, for callers driving
// Scraper.Run directly.
func (d *Document) Root() tagstream.Range {
	return d.root
}

// Scrape evaluates a scraper against the whole document. The result is
// all-or-nothing: any required query that matched nothing, or any failed
// extraction anywhere in the composition, makes the whole scrape report
// failure with no partial value.
func Scrape[T any](d *Document, s Scraper[T]) (T, bool) {
	return s.run(d.root)
}

// ScrapeHTML is a one-shot NewDocument + Scrape for callers that do not
// reuse the document.
func ScrapeHTML[T any](markup string, s Scraper[T]) (T, bool) {
	return Scrape(NewDocument(markup), s)
}
