package monitor

import "menuwatch/models"

// Compare diffs extracted products against the reference price table and
// returns one alert per product listed cheaper than the reference. The
// reference source is never compared against itself; that suppression is
// an identity check, not price logic. Categories missing from the table
// and uninitialized (non-positive) reference prices never alert.
func Compare(competitor string, products []models.Product, refs models.ReferenceTable) []models.ComparisonAlert {
	if competitor == refs.Source {
		return nil
	}

	var alerts []models.ComparisonAlert
	for _, p := range products {
		ref, ok := refs.Entries[p.CategoryID]
		if !ok {
			continue
		}

		diff := ref.Price - p.Price
		if diff <= 0 {
			continue
		}

		alerts = append(alerts, models.ComparisonAlert{
			Competitor:      competitor,
			Product:         p,
			CategoryName:    p.CategoryName,
			CompetitorPrice: p.Price,
			ReferencePrice:  ref.Price,
			Diff:            diff,
			PercentDiff:     diff / ref.Price * 100,
		})
	}
	return alerts
}
