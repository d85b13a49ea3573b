package parsers

import (
	"menuwatch/extractor"
	"menuwatch/fetcher"
	"menuwatch/models"
)

// HeuristicHTML is the generic single-page strategy: fetch the page as
// configured and run the heuristic price/context extraction over it.
type HeuristicHTML struct{}

func (p *HeuristicHTML) Fetch(f fetcher.Fetcher, url string, opts fetcher.Options) (string, error) {
	return f.Fetch(url, opts)
}

func (p *HeuristicHTML) Extract(content string, ex *extractor.Extractor) ([]models.Product, error) {
	doc, err := extractor.ParseDocument(content)
	if err != nil {
		return nil, err
	}
	return ex.ExtractProducts(doc), nil
}

func (p *HeuristicHTML) NextPage(content string) string {
	doc, err := extractor.ParseDocument(content)
	if err != nil {
		return ""
	}
	return extractor.NextPageURL(doc)
}
