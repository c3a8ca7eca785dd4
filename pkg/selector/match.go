// pkg/selector/match.go
package selector

import (
	"github.com/law-makers/scalp/pkg/tagstream"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Matches runs a query against an indexed range and returns the matching
// sub-ranges in document order, indices preserved. Matched sub-ranges do
// not overlap: after a match the scan resumes past it, so occurrences of
// the query inside an already-matched element are not reported. They stay
// reachable through Nest or by re-running the query inside the sub-range.
func Matches(sel Selectable, r tagstream.Range) []tagstream.Range {
	s := sel.Selector()
	if len(s.levels) == 0 {
		return nil
	}
	return matchLevels(s.levels, r, nil)
}

// MatchesStripped is Matches with the positional index removed from each
// result, for consumers that only render or read the matched tokens.
func MatchesStripped(sel Selectable, r tagstream.Range) [][]tagstream.Token {
	ms := Matches(sel, r)
	out := make([][]tagstream.Token, len(ms))
	for i, m := range ms {
		out[i] = m.Tokens()
	}
	return out
}

// matchLevels scans one range for elements matching levels[0], recursing
// into match interiors for the remaining levels. parent anchors the
// synthetic ancestor chain; it is nil at the top of a scope so that
// predicates cannot observe anything outside the range they run in.
func matchLevels(levels []func(*html.Node) bool, r tagstream.Range, parent *html.Node) []tagstream.Range {
	var out []tagstream.Range
	cur := parent
	for i := 0; i < len(r); i++ {
		t := r[i]
		switch t.Kind {
		case tagstream.Open:
			n := &html.Node{
				Type:     html.ElementNode,
				Data:     t.Name,
				DataAtom: atom.Lookup([]byte(t.Name)),
				Attr:     t.Attrs,
				Parent:   cur,
			}
			end := i + t.Offset
			if levels[0](n) {
				sub := r[i : end+1]
				if len(levels) == 1 {
					out = append(out, sub)
				} else if len(sub) > 2 {
					out = append(out, matchLevels(levels[1:], sub[1:len(sub)-1], n)...)
				}
				i = end
				continue
			}
			if t.Offset > 0 {
				cur = n
			}
		case tagstream.Close:
			if cur != parent {
				cur = cur.Parent
			}
		}
	}
	return out
}
