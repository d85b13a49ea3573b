package config

import "menuwatch/models"

// PromotionKeywords are scanned against each source's full page text,
// case-insensitive.
var PromotionKeywords = []string{"off", "promo", "descuento", "oferta", "2x1", "gratis", "especial"}

// Categories is the product taxonomy, in classification order. Order
// matters: the first category whose keywords match a product name (and
// whose exclusions do not) wins. Keep keyword/exclusion sets free of
// contradictions when editing; the classifier does not cross-check them.
var Categories = []models.Category{
	{
		ID:         "hamburguesas",
		Name:       "Hamburguesas / Sandwiches",
		Keywords:   []string{"kruncher", "sandwich", "hamburguesa", "burger", "bacon"},
		Exclusions: []string{"pizza", "postre", "brownie", "pastel", "pie", "helado"},
	},
	{
		ID:       "pollo_individual",
		Name:     "Menú Pollo Individual",
		Keywords: []string{"combo", "box", "menú", "menu", "personal", "individual", "2 piezas", "3 piezas"},
		Exclusions: []string{
			"familiar", "compartir", "pack", "banquete", "pizza", "kruncher",
			"sandwich", "postre", "brownie", "pastel", "pie", "helado",
		},
	},
	{
		ID:         "pollo_familiar",
		Name:       "Pollo Familiar / Compartir",
		Keywords:   []string{"familiar", "compartir", "pack", "banquete", "bucket", "full", "8 piezas", "12 piezas"},
		Exclusions: []string{"pizza", "postre", "brownie", "pastel", "pie", "helado"},
	},
	{
		ID:         "alitas",
		Name:       "Alitas",
		Keywords:   []string{"alita", "wing", "alitas", "wings"},
		Exclusions: []string{"pizza", "postre", "brownie", "pastel", "pie", "helado"},
	},
	{
		ID:         "postres",
		Name:       "Postres",
		Keywords:   []string{"postre", "brownie", "pastel", "pie", "tres leches", "flan", "helado", "sundae"},
		Exclusions: []string{"combo", "menu", "pollo"},
	},
}
