package extractor

import (
	"strings"

	"menuwatch/models"
)

// maxWalkDepth bounds the ancestor walk from a price token's containing
// node. Wide enough to reach the real product label, narrow enough to
// avoid absorbing unrelated page text such as full-page navigation.
const maxWalkDepth = 6

// maxNameLen bounds extracted product names; longer names are truncated
// with an ellipsis marker.
const maxNameLen = 80

// Extractor is the heuristic product-extraction engine: it locates
// price tokens, walks ancestor context to recover product names, and
// classifies them into the configured taxonomy.
type Extractor struct {
	classifier *Classifier
}

// New builds an extractor over an ordered category taxonomy.
func New(categories []models.Category) *Extractor {
	return &Extractor{classifier: NewClassifier(categories)}
}

// Classify maps a free-text product name to its category. It backs the
// API-based parsers, which get product names without markup context.
func (e *Extractor) Classify(text string) (models.Category, bool) {
	return e.classifier.Classify(text)
}

// ExtractProducts runs one heuristic pass over a parsed document and
// returns the classified products, deduplicated by (category, price).
// Tokens whose ancestors never classify are dropped silently; that is
// the expected outcome for decorative or unrelated prices.
func (e *Extractor) ExtractProducts(doc *Document) []models.Product {
	var products []models.Product
	seen := make(map[models.ProductKey]bool)

	for _, token := range doc.PriceTokens() {
		price, ok := CleanPrice(token.Raw)
		if !ok {
			continue
		}

		product, ok := e.classifyInContext(token, price)
		if !ok {
			continue
		}
		if seen[product.Key()] {
			continue
		}
		seen[product.Key()] = true
		products = append(products, product)
	}
	return products
}

// classifyInContext ascends the containment hierarchy from the token's
// immediate containing node, classifying the aggregated text of each
// ancestor until one yields a category.
func (e *Extractor) classifyInContext(token PriceToken, price float64) (models.Product, bool) {
	for _, node := range token.Container().Ancestors(maxWalkDepth) {
		text := node.Text()
		cat, ok := e.classifier.Classify(text)
		if !ok {
			continue
		}
		return models.Product{
			Name:         productName(text),
			Price:        price,
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
		}, true
	}
	return models.Product{}, false
}

// productName derives the product name from a classified ancestor's
// text: everything before the first currency symbol, trimmed and
// truncated.
func productName(text string) string {
	name, _, _ := strings.Cut(text, "$")
	name = strings.TrimSpace(name)
	if len(name) > maxNameLen {
		name = name[:maxNameLen] + "..."
	}
	return name
}

// Dedupe collapses repeated (category, price) pairs, keeping the first
// occurrence. Applied per page and again globally across the pages of a
// paginated source; deduping an already-deduped sequence is a no-op.
func Dedupe(products []models.Product) []models.Product {
	var unique []models.Product
	seen := make(map[models.ProductKey]bool)
	for _, p := range products {
		if seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		unique = append(unique, p)
	}
	return unique
}

// DetectPromotions reports which of the configured promotional keywords
// appear in the document's visible text. Keywords match independently;
// the order of the result carries no meaning.
func DetectPromotions(doc *Document, keywords []string) []string {
	text := strings.ToLower(doc.Text())

	var found []string
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			found = append(found, kw)
		}
	}
	return found
}
