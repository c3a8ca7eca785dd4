// pkg/tagstream/index.go
package tagstream

// Index annotates a canonicalized token sequence with the distance from
// each opening token to its matching close. The offsets let any consumer
// slice out the sub-range rooted at an opening token in O(1), without
// building a tree.
//
// Index assumes its input came from Canonicalize; on an unbalanced
// sequence the unmatched tokens simply keep offset 0.
func Index(toks []Token) Range {
	r := make(Range, len(toks))
	var stack []int // positions of pending Open tokens
	for i, t := range toks {
		r[i] = IndexedToken{Token: t}
		switch {
		case t.Kind == Open && !t.SelfClosing:
			stack = append(stack, i)
		case t.Kind == Close && len(stack) > 0:
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			r[j].Offset = i - j
		}
	}
	return r
}
