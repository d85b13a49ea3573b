// Package parsers holds one extraction strategy per monitored source
// kind. Kinds are a closed enum resolved once at configuration load;
// an unknown kind is a startup error, never a silent miss at run time.
package parsers

import (
	"fmt"

	"menuwatch/extractor"
	"menuwatch/fetcher"
	"menuwatch/models"
)

// Kind identifies a parser implementation.
type Kind string

const (
	// KindHeuristicHTML fetches one rendered page and runs the generic
	// heuristic extraction over it.
	KindHeuristicHTML Kind = "heuristic_html"
	// KindCategoryPages fetches a fixed set of menu category pages and
	// runs the heuristic extraction over their concatenation.
	KindCategoryPages Kind = "category_pages"
	// KindMenuAPI POSTs to a JSON menu API and classifies the returned
	// product names.
	KindMenuAPI Kind = "menu_api"
)

// Parser is one per-source extraction strategy.
type Parser interface {
	// Fetch retrieves the raw content for one page of the source.
	Fetch(f fetcher.Fetcher, url string, opts fetcher.Options) (string, error)
	// Extract pulls classified products out of fetched content. A nil
	// error with no products is a valid empty page.
	Extract(content string, ex *extractor.Extractor) ([]models.Product, error)
	// NextPage returns the URL of the source's next page, or "" when
	// pagination is done or not applicable.
	NextPage(content string) string
}

// ForKind resolves a parser kind to its implementation.
func ForKind(kind Kind) (Parser, error) {
	switch kind {
	case KindHeuristicHTML:
		return &HeuristicHTML{}, nil
	case KindCategoryPages:
		return NewCategoryPages(), nil
	case KindMenuAPI:
		return NewMenuAPI(), nil
	default:
		return nil, fmt.Errorf("unknown parser kind %q", kind)
	}
}
