package news

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// stripHTML reduces an article field that may carry markup to its
// plain text. Providers occasionally embed tags in descriptions; the
// SPA renders these fields as text, so markup is dropped here.
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(strings.Join(strings.Fields(doc.Text()), " "))
}
