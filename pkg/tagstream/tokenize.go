// pkg/tagstream/tokenize.go
package tagstream

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

// voidElements are HTML elements that never take a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// impliedEnd maps an element name to the open element names it implicitly
// closes when it opens, per the HTML parsing recovery rules for optional
// end tags (<li>a<li>b means two sibling list items).
var impliedEnd = map[string][]string{
	"li":     {"li"},
	"dd":     {"dd", "dt"},
	"dt":     {"dd", "dt"},
	"td":     {"td", "th"},
	"th":     {"td", "th"},
	"tr":     {"tr"},
	"option": {"option"},
	"p":      {"p"},
}

// Tokenize reads raw markup and returns its flat token sequence.
// The sequence is returned as written: unbalanced tags are preserved and
// must be repaired with Canonicalize before indexing.
func Tokenize(r io.Reader) ([]Token, error) {
	z := html.NewTokenizer(r)
	var toks []Token
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("failed to tokenize markup: %w", err)
			}
			return toks, nil
		case html.StartTagToken:
			t := z.Token()
			toks = append(toks, Token{Kind: Open, Name: t.Data, Attrs: t.Attr})
		case html.SelfClosingTagToken:
			t := z.Token()
			toks = append(toks, Token{Kind: Open, Name: t.Data, Attrs: t.Attr, SelfClosing: true})
		case html.EndTagToken:
			toks = append(toks, Token{Kind: Close, Name: z.Token().Data})
		case html.TextToken:
			toks = append(toks, Token{Kind: Text, Data: z.Token().Data})
		case html.CommentToken:
			toks = append(toks, Token{Kind: Comment, Data: z.Token().Data})
		case html.DoctypeToken:
			toks = append(toks, Token{Kind: Doctype, Data: z.Token().Data})
		}
	}
}

// TokenizeString tokenizes markup held in memory.
func TokenizeString(markup string) []Token {
	// strings.Reader never fails, so neither can Tokenize.
	toks, _ := Tokenize(strings.NewReader(markup))
	return toks
}

// Canonicalize repairs a token sequence into well-formed markup using the
// standard recovery rules:
//
//   - a closing tag matching an open element deeper in the stack closes
//     every element above it first (synthetic closes are inserted)
//   - a closing tag matching nothing on the stack is dropped
//   - elements with optional end tags (li, td, p, ...) are closed when a
//     sibling opens
//   - elements still open at the end of input are closed
//   - void elements and self-closed tags become self-contained Open tokens
//
// The result is a sequence in which every non-self-contained Open token has
// exactly one matching Close token, which is what Index requires.
func Canonicalize(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	var stack []string // names of currently open elements
	var inserted, dropped int

	closeTop := func() {
		out = append(out, Token{Kind: Close, Name: stack[len(stack)-1]})
		stack = stack[:len(stack)-1]
	}

	for _, t := range toks {
		switch t.Kind {
		case Open:
			if t.SelfClosing || voidElements[t.Name] {
				t.SelfClosing = true
				out = append(out, t)
				continue
			}
			if closes := impliedEnd[t.Name]; len(closes) > 0 && len(stack) > 0 {
				top := stack[len(stack)-1]
				for _, name := range closes {
					if top == name {
						closeTop()
						inserted++
						break
					}
				}
			}
			out = append(out, t)
			stack = append(stack, t.Name)
		case Close:
			depth := -1
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i] == t.Name {
					depth = i
					break
				}
			}
			if depth < 0 {
				dropped++
				continue
			}
			for len(stack) > depth+1 {
				closeTop()
				inserted++
			}
			closeTop()
		default:
			out = append(out, t)
		}
	}
	for len(stack) > 0 {
		closeTop()
		inserted++
	}

	if inserted > 0 || dropped > 0 {
		log.Debug().
			Int("inserted_closes", inserted).
			Int("dropped_closes", dropped).
			Msg("Repaired unbalanced markup")
	}
	return out
}
