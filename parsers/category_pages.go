package parsers

import (
	"log"
	"strings"
	"time"

	"menuwatch/extractor"
	"menuwatch/fetcher"
	"menuwatch/models"
)

// camperoMenuPaths are the category views of the reference source's
// menu. The landing URL alone does not cover all products, so each
// category page is fetched and the heuristic runs over the combined
// content.
var camperoMenuPaths = []string{
	"/menu/pollo-tradicional",
	"/menu/para-compartir",
	"/menu/hamburguesas-y-sandwiches",
	"/menu/postres",
	"/menu/campero-y-mas",
}

// interPathDelay is the polite pause between category-page fetches.
const interPathDelay = time.Second

// CategoryPages fetches a fixed list of menu category paths relative to
// the configured URL and concatenates them into one document.
type CategoryPages struct {
	paths []string
}

// NewCategoryPages builds the strategy over the reference source's
// category paths.
func NewCategoryPages() *CategoryPages {
	return &CategoryPages{paths: camperoMenuPaths}
}

func (p *CategoryPages) Fetch(f fetcher.Fetcher, url string, opts fetcher.Options) (string, error) {
	base := strings.TrimSuffix(url, "/")

	var combined strings.Builder
	for _, path := range p.paths {
		target := base + path
		log.Printf("   Fetching category page: %s", path)

		html, err := f.Fetch(target, opts)
		if err != nil {
			log.Printf("   Failed to fetch %s: %v", target, err)
			continue
		}
		combined.WriteString(html)
		combined.WriteString("\n<!-- page-break -->\n")
		time.Sleep(interPathDelay)
	}
	return combined.String(), nil
}

func (p *CategoryPages) Extract(content string, ex *extractor.Extractor) ([]models.Product, error) {
	doc, err := extractor.ParseDocument(content)
	if err != nil {
		return nil, err
	}
	return ex.ExtractProducts(doc), nil
}

// NextPage always reports done: the strategy already covers every
// category view in one fetch.
func (p *CategoryPages) NextPage(string) string {
	return ""
}
