package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"menuwatch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.json"))

	h := s.Load()
	require.NotNil(t, h)
	assert.Empty(t, h.Competitors)
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "historial.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	h := NewStore(path).Load()
	require.NotNil(t, h, "a corrupt file must yield a fresh history, not an error")
	assert.Empty(t, h.Competitors)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "historial.json")
	s := NewStore(path)

	h := models.NewHistory()
	h.Update("KFC", []models.Product{
		{Name: "Combo 2 piezas", Price: 5.50, CategoryID: "pollo_individual"},
	}, []string{"2x1"}, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, s.Save(h))
	assert.False(t, h.LastUpdated.IsZero(), "save stamps the update time")

	loaded := s.Load()
	rec, ok := loaded.Competitors["KFC"]
	require.True(t, ok)
	assert.Equal(t, 1, rec.ProductCount)
	assert.Equal(t, []string{"2x1"}, rec.Promotions)
	require.Len(t, rec.Products, 1)
	assert.Equal(t, "Combo 2 piezas", rec.Products[0].Name)
}

func TestSaveLoad_SurvivesCorruptionBetweenRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "historial.json")
	s := NewStore(path)

	h := models.NewHistory()
	h.Update("KFC", []models.Product{{CategoryID: "alitas", Price: 9.99}}, nil, time.Now())
	require.NoError(t, s.Save(h))

	require.NoError(t, os.WriteFile(path, []byte(`{"competitors": [1,2,3]}`), 0o644))

	fresh := s.Load()
	require.NotNil(t, fresh)
	assert.Empty(t, fresh.Competitors)

	require.NoError(t, s.Save(fresh), "saving over a corrupt file recovers the store")
	assert.Empty(t, s.Load().Competitors)
}
