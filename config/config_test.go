package config

import (
	"testing"

	"menuwatch/parsers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INTERVAL_HOURS", "")
	t.Setenv("HISTORY_FILE", "")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, 4, cfg.IntervalHours)
	assert.Equal(t, 8, cfg.ActiveHourStart)
	assert.Equal(t, 19, cfg.ActiveHourEnd)
	assert.Equal(t, "precios_historial.json", cfg.HistoryFile)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("INTERVAL_HOURS", "12")
	t.Setenv("HISTORY_FILE", "/tmp/h.json")

	cfg := Load()
	assert.Equal(t, 12, cfg.IntervalHours)
	assert.Equal(t, "/tmp/h.json", cfg.HistoryFile)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("ACTIVE_HOUR_START", "temprano")
	assert.Equal(t, 8, Load().ActiveHourStart)
}

func TestCompetitorsResolvable(t *testing.T) {
	require.NotEmpty(t, Competitors)

	for _, comp := range Competitors {
		_, err := parsers.ForKind(comp.ParserKind)
		assert.NoError(t, err, "competitor %s", comp.Name)
		assert.NotEmpty(t, comp.URL)
	}

	assert.True(t, Competitors[0].IsReference,
		"the reference source must be checked before its rivals")
	assert.Equal(t, ReferenceSource, Competitors[0].Name)
}

func TestReferencePricesCoverCategories(t *testing.T) {
	refs := ReferencePrices()
	for _, cat := range Categories {
		_, ok := refs.Entries[cat.ID]
		assert.True(t, ok, "category %s has no reference entry", cat.ID)
	}
}
