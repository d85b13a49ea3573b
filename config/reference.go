package config

import "menuwatch/models"

// ReferenceSource names the competitor whose live extraction overrides
// the baseline reference prices for a run.
const ReferenceSource = "Pollo Campero"

// ReferencePrices returns the baseline price table. Entries at 0.0 are
// uninitialized and never trigger comparison alerts until a live
// reference extraction fills them in. The monitor works on a per-run
// clone; this baseline is never mutated.
func ReferencePrices() models.ReferenceTable {
	return models.ReferenceTable{
		Source: ReferenceSource,
		Entries: map[string]models.ReferenceEntry{
			"hamburguesas": {
				CategoryID: "hamburguesas",
				Name:       "Sandwich Campero",
				Price:      0.0,
			},
			"pollo_individual": {
				CategoryID: "pollo_individual",
				Name:       "Menú Campero (2 piezas)",
				Price:      6.90,
			},
			"pollo_familiar": {
				CategoryID: "pollo_familiar",
				Name:       "Combo 12 Piezas",
				Price:      25.95,
			},
			"alitas": {
				CategoryID: "alitas",
				Name:       "Menú Alitas",
				Price:      9.40,
			},
			"postres": {
				CategoryID: "postres",
				Name:       "Postre Campero",
				Price:      0.0,
			},
		},
	}
}
