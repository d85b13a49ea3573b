package extractor

import (
	"strings"
	"testing"

	"menuwatch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProducts(t *testing.T) {
	// Prices sit deep inside each card so the shared page scaffolding is
	// beyond the ancestor walk; only the card's own label can classify.
	const page = `
		<html><body>
			<div class="card">Combo Familiar 12 piezas
				<div><div><div><div><b>$19.99</b></div></div></div></div>
			</div>
			<div class="card">Hamburguesa Doble
				<div><div><div><div><b>$5.25</b></div></div></div></div>
			</div>
			<div class="card">Bebida grande
				<div><div><div><div><b>$2.50</b></div></div></div></div>
			</div>
		</body></html>`

	doc, err := ParseDocument(page)
	require.NoError(t, err)

	products := New(testCategories()).ExtractProducts(doc)
	require.Len(t, products, 2, "unclassifiable prices are dropped")

	assert.Equal(t, "Combo Familiar 12 piezas", products[0].Name)
	assert.Equal(t, "pollo_familiar", products[0].CategoryID)
	assert.InDelta(t, 19.99, products[0].Price, 0.0001)

	assert.Equal(t, "Hamburguesa Doble", products[1].Name)
	assert.Equal(t, "hamburguesas", products[1].CategoryID)
}

func TestExtractProducts_SiblingLabel(t *testing.T) {
	doc, err := ParseDocument(`<div><span>Combo Familiar 12 piezas</span><b>$19.99</b></div>`)
	require.NoError(t, err)

	products := New(testCategories()).ExtractProducts(doc)
	require.Len(t, products, 1)
	assert.Contains(t, products[0].Name, "Combo Familiar 12 piezas")
	assert.InDelta(t, 19.99, products[0].Price, 0.0001)
	assert.Equal(t, "pollo_familiar", products[0].CategoryID)
}

func TestExtractProducts_AncestorDepthBound(t *testing.T) {
	// The labeled element sits exactly six levels above the price text.
	const withinBound = `
		<div>Combo Familiar 12 piezas
			<div><div><div><div>
				<div>$19.99</div>
			</div></div></div></div>
		</div>`

	// One more wrapper pushes the label to the seventh level.
	const pastBound = `
		<div>Combo Familiar 12 piezas
			<div><div><div><div><div>
				<div>$19.99</div>
			</div></div></div></div></div>
		</div>`

	ex := New(testCategories())

	doc, err := ParseDocument(withinBound)
	require.NoError(t, err)
	products := ex.ExtractProducts(doc)
	require.Len(t, products, 1)
	assert.Equal(t, "pollo_familiar", products[0].CategoryID)

	doc, err = ParseDocument(pastBound)
	require.NoError(t, err)
	assert.Empty(t, ex.ExtractProducts(doc), "label beyond the walk depth must not classify")
}

func TestExtractProducts_InnermostAncestorWins(t *testing.T) {
	// Both cards share an outer container that already mentions a
	// category; each price still classifies against its own card first.
	const page = `
		<div>Pollo Familiar especial
			<div class="card">Hamburguesa Sencilla <span>$4.50</span></div>
			<div class="card">Bucket 8 piezas <span>$21.00</span></div>
		</div>`

	doc, err := ParseDocument(page)
	require.NoError(t, err)

	products := New(testCategories()).ExtractProducts(doc)
	require.Len(t, products, 2)
	assert.Equal(t, "hamburguesas", products[0].CategoryID)
	assert.Equal(t, "pollo_familiar", products[1].CategoryID)
}

func TestExtractProducts_NameTruncation(t *testing.T) {
	longName := strings.Repeat("Hamburguesa Clásica ", 6)
	doc, err := ParseDocument(`<div>` + longName + `<span>$5.99</span></div>`)
	require.NoError(t, err)

	products := New(testCategories()).ExtractProducts(doc)
	require.Len(t, products, 1)
	assert.True(t, strings.HasSuffix(products[0].Name, "..."))
	assert.LessOrEqual(t, len(products[0].Name), 80+len("..."))
}

func TestExtractProducts_DedupesWithinPass(t *testing.T) {
	const page = `
		<div>Hamburguesa Doble <span>$5.25</span></div>
		<div>Hamburguesa Doble Promoción <span>$5.25</span></div>
		<div>Hamburguesa Doble <span>$6.25</span></div>`

	doc, err := ParseDocument(page)
	require.NoError(t, err)

	products := New(testCategories()).ExtractProducts(doc)
	require.Len(t, products, 2, "same category and price collapse; a new price does not")
	assert.InDelta(t, 5.25, products[0].Price, 0.0001)
	assert.InDelta(t, 6.25, products[1].Price, 0.0001)
}

func TestDedupe(t *testing.T) {
	products := []models.Product{
		{Name: "A", CategoryID: "alitas", Price: 9.99},
		{Name: "B", CategoryID: "alitas", Price: 9.99},
		{Name: "C", CategoryID: "alitas", Price: 8.99},
		{Name: "D", CategoryID: "postres", Price: 9.99},
	}

	unique := Dedupe(products)
	require.Len(t, unique, 3)
	assert.Equal(t, "A", unique[0].Name, "first occurrence wins")

	again := Dedupe(unique)
	assert.Equal(t, unique, again, "deduping twice must be a no-op")
}

func TestDetectPromotions(t *testing.T) {
	keywords := []string{"promo", "2x1", "descuento"}

	doc, err := ParseDocument(`<div>Gran PROMO de hoy: alitas 2x1 todo el día</div>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"promo", "2x1"}, DetectPromotions(doc, keywords))

	doc, err = ParseDocument(`<div>Menú del día</div>`)
	require.NoError(t, err)
	assert.Empty(t, DetectPromotions(doc, keywords))
}
