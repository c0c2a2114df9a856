package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlToText flattens an HTML body into newline-separated plain text.
// Non-HTML input passes through unchanged apart from whitespace cleanup.
func htmlToText(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return condenseWhitespace(body)
	}
	doc.Find("script, style").Remove()
	var b strings.Builder
	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	})
	out := b.String()
	if strings.TrimSpace(out) == "" {
		out = doc.Text()
	}
	return condenseWhitespace(out)
}

func condenseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
