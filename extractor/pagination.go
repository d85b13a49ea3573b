package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// nextPageLabels are the anchor texts recognized as next-page links when
// no explicit rel="next" relation is present.
var nextPageLabels = []string{"Siguiente", "Next", "»", ">"}

// NextPageURL returns the URL of the next page of a paginated source, or
// "" when none is found. An explicit rel="next" link wins; anchors with
// known next-page labels are the fallback. Callers must bound the total
// pages fetched, since a broken source can link back to itself.
func NextPageURL(doc *Document) string {
	if href, ok := doc.Find(`link[rel="next"]`).Attr("href"); ok && href != "" {
		return href
	}

	var next string
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		text := strings.TrimSpace(a.Text())
		for _, label := range nextPageLabels {
			if strings.Contains(text, label) {
				next, _ = a.Attr("href")
				return next == ""
			}
		}
		return true
	})
	return next
}
