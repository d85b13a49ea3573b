package extractor

import (
	"strings"

	"menuwatch/models"
)

// Classifier maps free-text product names to one category id using
// per-category inclusion and exclusion keyword sets. Matching is
// case-insensitive substring containment in fixed declaration order;
// the first non-excluded category with a keyword hit wins.
type Classifier struct {
	categories []models.Category
}

// NewClassifier builds a classifier over an ordered category taxonomy.
func NewClassifier(categories []models.Category) *Classifier {
	return &Classifier{categories: categories}
}

// Classify returns the first category whose keywords match the text and
// whose exclusions do not. Exclusions take precedence within each
// category check. Returns false when nothing matches.
func (c *Classifier) Classify(text string) (models.Category, bool) {
	lower := strings.ToLower(text)

	for _, cat := range c.categories {
		if containsAny(lower, cat.Exclusions) {
			continue
		}
		if containsAny(lower, cat.Keywords) {
			return cat, true
		}
	}
	return models.Category{}, false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
