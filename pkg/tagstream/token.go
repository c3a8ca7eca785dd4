// pkg/tagstream/token.go
package tagstream

import "golang.org/x/net/html"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	// Open is an opening element tag, e.g. <div class="x">.
	// Self-contained elements (void elements like <br> and explicitly
	// self-closed tags like <img/>) are Open tokens with SelfClosing set.
	Open Kind = iota
	// Close is a closing element tag, e.g. </div>.
	Close
	// Text is a run of character data between tags, entity-decoded.
	Text
	// Comment is an HTML comment; Data holds the comment body.
	Comment
	// Doctype is a <!DOCTYPE ...> declaration.
	Doctype
)

// String returns a short name for the kind, used in logs and test failures.
func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Close:
		return "close"
	case Text:
		return "text"
	case Comment:
		return "comment"
	case Doctype:
		return "doctype"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of parsed markup. Tokens are immutable once
// produced by Tokenize; nothing in this package mutates them afterwards.
//
// Attrs is a slice rather than a map so that attribute order survives a
// render round trip. Tag and attribute names are lower-cased by the
// tokenizer.
type Token struct {
	Kind        Kind
	Name        string           // element name for Open/Close, empty otherwise
	Attrs       []html.Attribute // opening-tag attributes in source order
	Data        string           // payload for Text/Comment/Doctype
	SelfClosing bool             // Open token with no separate Close counterpart
}

// Attr looks up an attribute by name on an opening token.
// The second result reports whether the attribute is present.
func (t Token) Attr(name string) (string, bool) {
	if t.Kind != Open {
		return "", false
	}
	for _, a := range t.Attrs {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// IndexedToken pairs a Token with the distance to its structural match.
//
// For an Open token that is not self-contained, Offset is the number of
// tokens to skip forward to land exactly on the matching Close token.
// For every other token Offset is 0. Offsets are only meaningful over a
// canonicalized sequence (see Canonicalize).
type IndexedToken struct {
	Token
	Offset int
}

// Range is a contiguous, read-only sequence of indexed tokens. Because
// offsets are relative distances, any sub-slice delimited at an opening
// token and its matching close is itself a valid Range.
type Range []IndexedToken

// Tokens strips the positional index, returning the plain token sequence.
func (r Range) Tokens() []Token {
	toks := make([]Token, len(r))
	for i, it := range r {
		toks[i] = it.Token
	}
	return toks
}
