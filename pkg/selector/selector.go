// pkg/selector/selector.go

// Package selector turns declarative queries into token sub-ranges.
//
// A query is anything implementing Selectable. The package ships two
// families: structured selectors built from Tag/Any with chained
// predicates and Nest for descendant narrowing, and CSS selector strings
// compiled with cascadia (see Css). Both are matched against the flat
// indexed token range produced by tagstream, never against a node tree.
package selector

import (
	"strings"

	"golang.org/x/net/html"
)

// Selectable is the capability accepted everywhere a query is needed:
// any value convertible into the matching engine's representation.
type Selectable interface {
	Selector() Selector
}

// Selector is the matching engine's internal query representation: a chain
// of per-element predicates, each level scoped to matches of the previous
// one. Predicates see a synthetic element node whose Parent chain holds the
// enclosing elements of the current scope.
type Selector struct {
	levels []func(*html.Node) bool
}

// Selector implements Selectable, so a Selector is itself Selectable.
func (s Selector) Selector() Selector { return s }

// TagSelector matches opening elements by name and optional predicates.
// The zero value matches nothing; construct with Tag or Any.
type TagSelector struct {
	name  string // empty matches any element
	preds []func(*html.Node) bool
	inner *Selector
}

// Tag selects opening elements with the given (lower-case) name.
func Tag(name string) TagSelector {
	return TagSelector{name: strings.ToLower(name)}
}

// Any selects every opening element regardless of name.
func Any() TagSelector {
	return TagSelector{}
}

// WithAttr narrows the selector to elements whose attribute name has
// exactly the given value.
func (t TagSelector) WithAttr(name, value string) TagSelector {
	name = strings.ToLower(name)
	t.preds = append(t.preds, func(n *html.Node) bool {
		v, ok := attrOf(n, name)
		return ok && v == value
	})
	return t
}

// WithAttrPresent narrows the selector to elements carrying the attribute,
// whatever its value.
func (t TagSelector) WithAttrPresent(name string) TagSelector {
	name = strings.ToLower(name)
	t.preds = append(t.preds, func(n *html.Node) bool {
		_, ok := attrOf(n, name)
		return ok
	})
	return t
}

// WithClass narrows the selector to elements whose class attribute contains
// the given class among its space-separated values.
func (t TagSelector) WithClass(class string) TagSelector {
	t.preds = append(t.preds, func(n *html.Node) bool {
		v, ok := attrOf(n, "class")
		if !ok {
			return false
		}
		for _, c := range strings.Fields(v) {
			if c == class {
				return true
			}
		}
		return false
	})
	return t
}

// Where narrows the selector with an arbitrary predicate over the synthetic
// element node. The node's Parent chain holds the enclosing elements of the
// current scope; sibling links are not populated.
func (t TagSelector) Where(pred func(*html.Node) bool) TagSelector {
	t.preds = append(t.preds, pred)
	return t
}

// Nest narrows matching to occurrences of inner anywhere inside elements
// matched by t, like the descendant relation in CSS. Nesting composes:
// Tag("table").Nest(Tag("tr").Nest(Tag("td"))) selects cells inside rows
// inside tables.
func (t TagSelector) Nest(inner Selectable) TagSelector {
	s := inner.Selector()
	t.inner = &s
	return t
}

// Selector converts the structured form into the engine representation.
func (t TagSelector) Selector() Selector {
	self := t
	level := func(n *html.Node) bool {
		if self.name != "" && n.Data != self.name {
			return false
		}
		for _, p := range self.preds {
			if !p(n) {
				return false
			}
		}
		return true
	}
	levels := []func(*html.Node) bool{level}
	if t.inner != nil {
		levels = append(levels, t.inner.levels...)
	}
	return Selector{levels: levels}
}

func attrOf(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
