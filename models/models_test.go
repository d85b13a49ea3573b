package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryUpdate(t *testing.T) {
	h := NewHistory()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	h.Update("KFC", []Product{
		{Name: "Alitas x10", Price: 9.99, CategoryID: "alitas"},
		{Name: "Combo 2 piezas", Price: 5.50, CategoryID: "pollo_individual"},
	}, []string{"promo"}, now)

	rec := h.Competitors["KFC"]
	require.NotNil(t, rec)
	assert.Equal(t, 2, rec.ProductCount)
	assert.Equal(t, now, rec.LastChecked)
	assert.Len(t, rec.PriceHistory, 2)
}

func TestHistoryUpdate_ReplacesSnapshotAccumulatesSeries(t *testing.T) {
	h := NewHistory()
	now := time.Now()

	h.Update("KFC", []Product{{CategoryID: "alitas", Price: 9.99}}, nil, now)
	h.Update("KFC", []Product{{CategoryID: "alitas", Price: 8.99}}, nil, now.Add(time.Hour))

	rec := h.Competitors["KFC"]
	require.Len(t, rec.Products, 1, "current snapshot is replaced, not appended")
	assert.InDelta(t, 8.99, rec.Products[0].Price, 0.0001)
	assert.Len(t, rec.PriceHistory, 2, "the time series accumulates")
}

func TestHistoryUpdate_BoundsPriceHistory(t *testing.T) {
	h := NewHistory()
	now := time.Now()

	for i := 0; i < MaxPricePoints+30; i++ {
		h.Update("KFC", []Product{{CategoryID: "alitas", Price: float64(i)}}, nil, now)
	}

	rec := h.Competitors["KFC"]
	require.Len(t, rec.PriceHistory, MaxPricePoints)
	assert.InDelta(t, float64(MaxPricePoints+29), rec.PriceHistory[MaxPricePoints-1].Price, 0.0001,
		"the newest points survive the trim")
}

func TestProductKey(t *testing.T) {
	a := Product{Name: "Alitas x10", CategoryID: "alitas", Price: 9.99}
	b := Product{Name: "Diez Alitas", CategoryID: "alitas", Price: 9.99}
	c := Product{Name: "Alitas x10", CategoryID: "alitas", Price: 8.99}

	assert.Equal(t, a.Key(), b.Key(), "name never enters the identity")
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestComparisonAlertMessage(t *testing.T) {
	a := ComparisonAlert{
		Competitor:      "KFC",
		Product:         Product{Name: "Combo 2 piezas"},
		CategoryName:    "Menú Pollo Individual",
		CompetitorPrice: 5.50,
		ReferencePrice:  6.90,
		Diff:            1.40,
		PercentDiff:     20.29,
	}

	msg := a.Message()
	assert.Contains(t, msg, "KFC es más barato")
	assert.Contains(t, msg, "$5.50")
	assert.Contains(t, msg, "$6.90")
	assert.Contains(t, msg, "$1.40")
}

func TestReferenceTableClone(t *testing.T) {
	base := ReferenceTable{
		Source: "Pollo Campero",
		Entries: map[string]ReferenceEntry{
			"alitas": {CategoryID: "alitas", Price: 9.40},
		},
	}

	clone := base.Clone()
	e := clone.Entries["alitas"]
	e.Price = 1.00
	clone.Entries["alitas"] = e

	assert.InDelta(t, 9.40, base.Entries["alitas"].Price, 0.0001,
		"mutating the clone must not touch the base table")
}
