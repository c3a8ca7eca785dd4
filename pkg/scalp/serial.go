// pkg/scalp/serial.go
package scalp

import (
	"github.com/law-makers/scalp/pkg/tagstream"
)

// serialZipper is a cursor over the top-level chunks of a range. Each
// chunk is either one element sub-range (opening token through its
// matching close) or one bare text/comment token. The cursor sits in the
// gaps between chunks: pos is the number of chunks behind it.
type serialZipper struct {
	chunks []tagstream.Range
	pos    int
}

func newSerialZipper(r tagstream.Range) serialZipper {
	var chunks []tagstream.Range
	for i := 0; i < len(r); i++ {
		end := i + r[i].Offset
		chunks = append(chunks, r[i:end+1])
		i = end
	}
	return serialZipper{chunks: chunks}
}

// SerialScraper walks a sequence of sibling chunks in order, threading the
// cursor through each step. It complements Scraper for documents whose
// structure is positional rather than attributive: "the table after the
// third heading" and similar shapes that selectors alone cannot express.
type SerialScraper[T any] struct {
	run func(z serialZipper) (serialZipper, T, bool)
}

// InSerial runs a serial scraper over the top-level chunks of the current
// range, cursor starting before the first chunk. The final cursor position
// is discarded; only the produced value survives.
func InSerial[T any](s SerialScraper[T]) Scraper[T] {
	return New(func(r tagstream.Range) (T, bool) {
		_, v, ok := s.run(newSerialZipper(r))
		return v, ok
	})
}

// StepNext advances the cursor over the next chunk and runs s against it.
// It fails at the end of the sequence or when s fails, leaving the cursor
// untouched on failure.
func StepNext[T any](s Scraper[T]) SerialScraper[T] {
	return SerialScraper[T]{run: func(z serialZipper) (serialZipper, T, bool) {
		var zero T
		if z.pos >= len(z.chunks) {
			return z, zero, false
		}
		v, ok := s.run(z.chunks[z.pos])
		if !ok {
			return z, zero, false
		}
		z.pos++
		return z, v, true
	}}
}

// StepBack moves the cursor back over the previous chunk and runs s
// against it.
func StepBack[T any](s Scraper[T]) SerialScraper[T] {
	return SerialScraper[T]{run: func(z serialZipper) (serialZipper, T, bool) {
		var zero T
		if z.pos <= 0 {
			return z, zero, false
		}
		v, ok := s.run(z.chunks[z.pos-1])
		if !ok {
			return z, zero, false
		}
		z.pos--
		return z, v, true
	}}
}

// SeekNext advances the cursor chunk by chunk until s succeeds, consuming
// the chunk it succeeded on. It fails when s succeeds on none of the
// remaining chunks.
func SeekNext[T any](s Scraper[T]) SerialScraper[T] {
	return SerialScraper[T]{run: func(z serialZipper) (serialZipper, T, bool) {
		for i := z.pos; i < len(z.chunks); i++ {
			if v, ok := s.run(z.chunks[i]); ok {
				z.pos = i + 1
				return z, v, true
			}
		}
		var zero T
		return z, zero, false
	}}
}

// SeekBack moves the cursor backwards until s succeeds on the chunk just
// behind it.
func SeekBack[T any](s Scraper[T]) SerialScraper[T] {
	return SerialScraper[T]{run: func(z serialZipper) (serialZipper, T, bool) {
		for i := z.pos; i > 0; i-- {
			if v, ok := s.run(z.chunks[i-1]); ok {
				z.pos = i - 1
				return z, v, true
			}
		}
		var zero T
		return z, zero, false
	}}
}

// SucceedSerial produces v without moving the cursor.
func SucceedSerial[T any](v T) SerialScraper[T] {
	return SerialScraper[T]{run: func(z serialZipper) (serialZipper, T, bool) {
		return z, v, true
	}}
}

// FailSerial fails without moving the cursor.
func FailSerial[T any]() SerialScraper[T] {
	return SerialScraper[T]{run: func(z serialZipper) (serialZipper, T, bool) {
		var zero T
		return z, zero, false
	}}
}

// MapSerial applies f to the result of s, cursor movement unchanged.
func MapSerial[A, B any](s SerialScraper[A], f func(A) B) SerialScraper[B] {
	return SerialScraper[B]{run: func(z serialZipper) (serialZipper, B, bool) {
		z2, a, ok := s.run(z)
		if !ok {
			var zero B
			return z, zero, false
		}
		return z2, f(a), true
	}}
}

// AndThenSerial sequences dependently, threading the cursor: the scraper
// built by f resumes where s left off.
func AndThenSerial[A, B any](s SerialScraper[A], f func(A) SerialScraper[B]) SerialScraper[B] {
	return SerialScraper[B]{run: func(z serialZipper) (serialZipper, B, bool) {
		z2, a, ok := s.run(z)
		if !ok {
			var zero B
			return z, zero, false
		}
		return f(a).run(z2)
	}}
}

// OrElse falls back to alt when s fails, re-running from the cursor
// position s started at.
func (s SerialScraper[T]) OrElse(alt SerialScraper[T]) SerialScraper[T] {
	return SerialScraper[T]{run: func(z serialZipper) (serialZipper, T, bool) {
		if z2, v, ok := s.run(z); ok {
			return z2, v, true
		}
		return alt.run(z)
	}}
}
