// pkg/selector/css.go
package selector

import (
	"github.com/andybalholm/cascadia"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

// Css compiles a CSS selector string into a Selectable.
//
// The compiled selector is evaluated per opening element against a
// synthetic node whose Parent chain mirrors the enclosing elements of the
// current scope, so type, class, id and attribute selectors as well as the
// descendant and child combinators all work. Sibling combinators and
// positional pseudo-classes (:nth-child and friends) never match, because
// sibling links are not materialized.
//
// An invalid expression yields a selector that matches nothing; the
// compile error is logged at debug level.
func Css(expr string) Selectable {
	group, err := cascadia.ParseGroup(expr)
	if err != nil {
		log.Debug().
			Str("selector", expr).
			Err(err).
			Msg("Invalid CSS selector, matching nothing")
		return Selector{levels: []func(*html.Node) bool{
			func(*html.Node) bool { return false },
		}}
	}
	return Selector{levels: []func(*html.Node) bool{
		func(n *html.Node) bool { return group.Match(n) },
	}}
}
