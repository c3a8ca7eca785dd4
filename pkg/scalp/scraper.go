// pkg/scalp/scraper.go

// Package scalp provides declarative, composable scrapers over parsed
// markup. A Scraper is a pure specification of an extraction: it is given
// an indexed token range and either produces a value or reports failure.
//
// Scrapers do not consume input. Every combinator presents the same full
// range to each of its operands; the only way to narrow what a scraper can
// see is an explicit scoping operator (Chroot, Chroots). Failure is the
// single error channel — there are no scraping errors, only absence.
package scalp

import (
	"github.com/law-makers/scalp/pkg/selector"
	"github.com/law-makers/scalp/pkg/tagstream"
)

// Scraper is a reusable extraction over a token range, producing a T on
// success. A Scraper holds no state and is safe for concurrent use; the
// result depends only on the range it is run against.
type Scraper[T any] struct {
	run func(r tagstream.Range) (T, bool)
}

// New wraps a raw evaluation function as a Scraper. The function must be
// pure: no mutation of the range, no ambient state.
func New[T any](run func(r tagstream.Range) (T, bool)) Scraper[T] {
	return Scraper[T]{run: run}
}

// Run evaluates the scraper against a range. Most callers go through
// Scrape instead; Run exists for custom combinators and tests.
func (s Scraper[T]) Run(r tagstream.Range) (T, bool) {
	return s.run(r)
}

// Succeed ignores its input and produces v. Identity for sequencing.
func Succeed[T any](v T) Scraper[T] {
	return New(func(tagstream.Range) (T, bool) {
		return v, true
	})
}

// Fail ignores its input and fails. Identity for OrElse.
func Fail[T any]() Scraper[T] {
	return New(func(tagstream.Range) (T, bool) {
		var zero T
		return zero, false
	})
}

// Map applies f to the result of s, propagating failure unchanged.
func Map[A, B any](s Scraper[A], f func(A) B) Scraper[B] {
	return New(func(r tagstream.Range) (B, bool) {
		a, ok := s.run(r)
		if !ok {
			var zero B
			return zero, false
		}
		return f(a), true
	})
}

// Map2 runs two scrapers against the same range and combines their results
// with f. It fails if either operand fails; b is not evaluated after a
// failure of a.
func Map2[A, B, C any](a Scraper[A], b Scraper[B], f func(A, B) C) Scraper[C] {
	return New(func(r tagstream.Range) (C, bool) {
		var zero C
		av, ok := a.run(r)
		if !ok {
			return zero, false
		}
		bv, ok := b.run(r)
		if !ok {
			return zero, false
		}
		return f(av, bv), true
	})
}

// AndThen sequences dependently: on success of s, f builds the next
// scraper from the produced value, and that scraper runs against the same
// original range. On failure f is never called.
func AndThen[A, B any](s Scraper[A], f func(A) Scraper[B]) Scraper[B] {
	return New(func(r tagstream.Range) (B, bool) {
		a, ok := s.run(r)
		if !ok {
			var zero B
			return zero, false
		}
		return f(a).run(r)
	})
}

// OrElse falls back to alt when s fails. The fallback is never evaluated
// after a success of s, so alt may be defined only for inputs s rejects.
func (s Scraper[T]) OrElse(alt Scraper[T]) Scraper[T] {
	return New(func(r tagstream.Range) (T, bool) {
		if v, ok := s.run(r); ok {
			return v, true
		}
		return alt.run(r)
	})
}

// Matches succeeds exactly when the query matches at least one sub-range.
// It produces no value beyond the success itself.
func Matches(sel selector.Selectable) Scraper[struct{}] {
	return New(func(r tagstream.Range) (struct{}, bool) {
		return struct{}{}, len(selector.Matches(sel, r)) > 0
	})
}
