// pkg/scalp/serial_test.go
package scalp

import (
	"testing"

	"github.com/law-makers/scalp/pkg/selector"
	"github.com/law-makers/scalp/pkg/tagstream"
)

const serialMarkup = `<h1>Title</h1><p>one</p><p>two</p><h2>Other</h2><p>three</p>`

// chunkText reads the raw text of whatever chunk the cursor is on.
func chunkText() Scraper[string] {
	return New(func(r tagstream.Range) (string, bool) {
		return tagstream.TextContent(r.Tokens()), true
	})
}

func TestInSerial_StepNext(t *testing.T) {
	s := InSerial(AndThenSerial(StepNext(Text(selector.Tag("h1"))), func(title string) SerialScraper[string] {
		return MapSerial(StepNext(Text(selector.Tag("p"))), func(body string) string {
			return title + "/" + body
		})
	}))
	got, ok := ScrapeHTML(serialMarkup, s)
	if !ok {
		t.Fatal("expected success")
	}
	if got != "Title/one" {
		t.Errorf("expected 'Title/one', got '%s'", got)
	}
}

func TestStepNext_FailsWhenChunkRejects(t *testing.T) {
	// The first chunk is the <h1>, not a <p>.
	s := InSerial(StepNext(Text(selector.Tag("p"))))
	if _, ok := ScrapeHTML(serialMarkup, s); ok {
		t.Error("expected failure on non-matching first chunk")
	}
}

func TestSeekNext_SkipsToFirstSuccess(t *testing.T) {
	// Seek past the heading and paragraphs to the <h2>, then read the
	// paragraph that follows it.
	s := InSerial(AndThenSerial(SeekNext(Text(selector.Tag("h2"))), func(head string) SerialScraper[string] {
		return MapSerial(StepNext(Text(selector.Tag("p"))), func(body string) string {
			return head + "/" + body
		})
	}))
	got, ok := ScrapeHTML(serialMarkup, s)
	if !ok {
		t.Fatal("expected success")
	}
	if got != "Other/three" {
		t.Errorf("expected 'Other/three', got '%s'", got)
	}
}

func TestSeekNext_FailsWhenNothingMatches(t *testing.T) {
	s := InSerial(SeekNext(Text(selector.Tag("table"))))
	if _, ok := ScrapeHTML(serialMarkup, s); ok {
		t.Error("expected failure when no chunk matches")
	}
}

func TestStepBack_RevisitsPreviousChunks(t *testing.T) {
	// Walk forward past the h2, then step backwards over it to the
	// paragraph before it.
	s := InSerial(AndThenSerial(SeekNext(Text(selector.Tag("h2"))), func(string) SerialScraper[string] {
		return AndThenSerial(StepBack(Text(selector.Tag("h2"))), func(string) SerialScraper[string] {
			return StepBack(Text(selector.Tag("p")))
		})
	}))
	got, ok := ScrapeHTML(serialMarkup, s)
	if !ok {
		t.Fatal("expected success")
	}
	if got != "two" {
		t.Errorf("expected 'two', got '%s'", got)
	}
}

func TestSeekBack_ScansToNearestMatchBehind(t *testing.T) {
	// Walk to the end of the sequence, then seek backwards to the h1.
	toEnd := AndThenSerial(SeekNext(Text(selector.Tag("h2"))), func(string) SerialScraper[string] {
		return StepNext(Text(selector.Tag("p")))
	})
	s := InSerial(AndThenSerial(toEnd, func(string) SerialScraper[string] {
		return SeekBack(Text(selector.Tag("h1")))
	}))
	got, ok := ScrapeHTML(serialMarkup, s)
	if !ok {
		t.Fatal("expected success")
	}
	if got != "Title" {
		t.Errorf("expected 'Title', got '%s'", got)
	}
}

func TestSerialOrElse_ResetsCursor(t *testing.T) {
	// The failing branch consumes the heading before failing; the fallback
	// must start from the original cursor position again.
	failing := AndThenSerial(StepNext(Text(selector.Tag("h1"))), func(string) SerialScraper[string] {
		return StepNext(Text(selector.Tag("table")))
	})
	fallback := StepNext(Text(selector.Tag("h1")))
	got, ok := ScrapeHTML(serialMarkup, InSerial(failing.OrElse(fallback)))
	if !ok {
		t.Fatal("expected fallback to succeed")
	}
	if got != "Title" {
		t.Errorf("expected 'Title', got '%s'", got)
	}
}

func TestSerialIdentities(t *testing.T) {
	if got, ok := ScrapeHTML(serialMarkup, InSerial(SucceedSerial(7))); !ok || got != 7 {
		t.Errorf("expected 7, got %d (ok=%v)", got, ok)
	}
	if _, ok := ScrapeHTML(serialMarkup, InSerial(FailSerial[int]())); ok {
		t.Error("expected FailSerial to fail")
	}
	if got, ok := ScrapeHTML(serialMarkup, InSerial(FailSerial[int]().OrElse(SucceedSerial(3)))); !ok || got != 3 {
		t.Errorf("expected 3, got %d (ok=%v)", got, ok)
	}
}

func TestInSerial_BareTextChunks(t *testing.T) {
	// Bare text between elements forms its own chunk.
	s := InSerial(AndThenSerial(StepNext(Text(selector.Tag("b"))), func(k string) SerialScraper[string] {
		return MapSerial(StepNext(chunkText()), func(v string) string {
			return k + v
		})
	}))
	got, ok := ScrapeHTML(`<b>k:</b> v`, s)
	if !ok {
		t.Fatal("expected success")
	}
	if got != "k: v" {
		t.Errorf("expected 'k: v', got '%s'", got)
	}
}
