// pkg/scalp/scope.go
package scalp

import (
	"github.com/law-makers/scalp/pkg/selector"
	"github.com/law-makers/scalp/pkg/tagstream"
)

// Chroot narrows evaluation to the first sub-range matching sel and runs
// inner there as if the sub-range were the entire input. It fails when the
// query matches nothing; otherwise the result is inner's result. Matches
// after the first are ignored.
func Chroot[T any](sel selector.Selectable, inner Scraper[T]) Scraper[T] {
	return New(func(r tagstream.Range) (T, bool) {
		ms := selector.Matches(sel, r)
		if len(ms) == 0 {
			var zero T
			return zero, false
		}
		return inner.run(ms[0])
	})
}

// Chroots runs inner against every sub-range matching sel, in document
// order, and collects the successful results. Sub-ranges where inner fails
// are skipped. Chroots never fails: zero matches, or inner failing
// everywhere, yield an empty slice.
func Chroots[T any](sel selector.Selectable, inner Scraper[T]) Scraper[[]T] {
	return New(func(r tagstream.Range) ([]T, bool) {
		var out []T
		for _, m := range selector.Matches(sel, r) {
			if v, ok := inner.run(m); ok {
				out = append(out, v)
			}
		}
		return out, true
	})
}
