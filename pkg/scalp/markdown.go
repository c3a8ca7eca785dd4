// pkg/scalp/markdown.go
package scalp

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/law-makers/scalp/pkg/selector"
	"github.com/law-makers/scalp/pkg/tagstream"
)

// Markdown extracts the first match of sel rendered as GitHub-flavored
// markdown. It fails when sel matches nothing or when the matched markup
// cannot be converted.
func Markdown(sel selector.Selectable) Scraper[string] {
	return extractOne(sel, markdownOf)
}

// Markdowns renders every match of sel to markdown, skipping matches that
// fail to convert. A query matching nothing fails.
func Markdowns(sel selector.Selectable) Scraper[[]string] {
	return extractAll(sel, markdownOf)
}

func markdownOf(toks []tagstream.Token) (string, bool) {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	out, err := converter.ConvertString(tagstream.Render(toks))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(out), true
}
