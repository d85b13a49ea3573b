package models

import (
	"fmt"
	"time"
)

// Category is one taxonomy bucket used to group comparable products
// across sources. Categories are matched in declaration order; exclusion
// keywords veto a category before its inclusion keywords are consulted.
type Category struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Keywords   []string `json:"keywords"`
	Exclusions []string `json:"exclusions"`
}

// Product is one extracted menu item. Identity for deduplication is the
// (CategoryID, Price) pair, not the name: two differently-worded listings
// at the same price in the same category collapse to one entry.
type Product struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
}

// ProductKey is the dedup identity of a Product.
type ProductKey struct {
	CategoryID string
	Price      float64
}

// Key returns the dedup identity of the product.
func (p Product) Key() ProductKey {
	return ProductKey{CategoryID: p.CategoryID, Price: p.Price}
}

// ReferenceEntry is the baseline price for one category.
type ReferenceEntry struct {
	CategoryID string  `json:"category_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
}

// ReferenceTable maps category ids to baseline prices. Source names the
// competitor whose live extraction may override these prices for a run.
type ReferenceTable struct {
	Source  string
	Entries map[string]ReferenceEntry
}

// Clone returns a deep copy of the table. The monitor mutates a per-run
// copy so live reference overrides never leak across runs.
func (t ReferenceTable) Clone() ReferenceTable {
	entries := make(map[string]ReferenceEntry, len(t.Entries))
	for id, e := range t.Entries {
		entries[id] = e
	}
	return ReferenceTable{Source: t.Source, Entries: entries}
}

// ComparisonAlert is emitted when a competitor lists a category cheaper
// than the reference price.
type ComparisonAlert struct {
	Competitor      string  `json:"competitor"`
	Product         Product `json:"product"`
	CategoryName    string  `json:"category_name"`
	CompetitorPrice float64 `json:"competitor_price"`
	ReferencePrice  float64 `json:"reference_price"`
	Diff            float64 `json:"diff"`
	PercentDiff     float64 `json:"percent_diff"`
}

// Message renders the alert as a Telegram HTML message.
func (a ComparisonAlert) Message() string {
	return fmt.Sprintf(
		"📉 <b>¡%s es más barato!</b>\n"+
			"Categoría: %s\n"+
			"Producto: %s\n"+
			"Precio: $%.2f (referencia: $%.2f)\n"+
			"Ahorro: $%.2f (%.0f%%)",
		a.Competitor, a.CategoryName, a.Product.Name,
		a.CompetitorPrice, a.ReferencePrice, a.Diff, a.PercentDiff,
	)
}

// PricePoint is one entry in a competitor's bounded price time series.
type PricePoint struct {
	CategoryID string    `json:"category_id"`
	Price      float64   `json:"price"`
	CheckedAt  time.Time `json:"checked_at"`
}

// MaxPricePoints bounds the per-competitor time series kept in history.
const MaxPricePoints = 100

// CompetitorRecord is the persisted per-source state. The current
// snapshot is overwritten on each successful run; only the price time
// series accumulates, bounded to the most recent MaxPricePoints.
type CompetitorRecord struct {
	LastChecked  time.Time    `json:"last_checked"`
	ProductCount int          `json:"product_count"`
	Products     []Product    `json:"current_products"`
	Promotions   []string     `json:"active_promotions"`
	PriceHistory []PricePoint `json:"price_history"`
}

// History is the full persisted state of the monitor.
type History struct {
	Competitors map[string]*CompetitorRecord `json:"competitors"`
	LastUpdated time.Time                    `json:"last_updated"`
}

// NewHistory returns an empty history structure.
func NewHistory() *History {
	return &History{Competitors: make(map[string]*CompetitorRecord)}
}

// Update merges one competitor's run results into the history.
func (h *History) Update(name string, products []Product, promotions []string, now time.Time) {
	if h.Competitors == nil {
		h.Competitors = make(map[string]*CompetitorRecord)
	}
	rec, ok := h.Competitors[name]
	if !ok {
		rec = &CompetitorRecord{}
		h.Competitors[name] = rec
	}

	rec.LastChecked = now
	rec.ProductCount = len(products)
	rec.Products = products
	rec.Promotions = promotions

	for _, p := range products {
		rec.PriceHistory = append(rec.PriceHistory, PricePoint{
			CategoryID: p.CategoryID,
			Price:      p.Price,
			CheckedAt:  now,
		})
	}
	if len(rec.PriceHistory) > MaxPricePoints {
		rec.PriceHistory = rec.PriceHistory[len(rec.PriceHistory)-MaxPricePoints:]
	}
}
