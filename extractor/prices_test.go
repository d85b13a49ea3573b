package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPrice(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  float64
		valid bool
	}{
		{"plain price", "$12.50", 12.50, true},
		{"comma decimal", "$5,99", 5.99, true},
		{"space after symbol", "$ 7.25", 7.25, true},
		{"surrounding text", "Combo Familiar $19.99 por tiempo limitado", 19.99, true},
		{"integer amount", "$15", 15, true},
		{"thousands separator reads as decimal", "$1,234.99", 1.234, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"no digits", "$Gratis", 0, false},
		{"zero rejected", "$0.00", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CleanPrice(tt.text)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.InDelta(t, tt.want, got, 0.0001)
			}
		})
	}
}

func TestPriceTokens(t *testing.T) {
	const page = `
		<html><body>
			<div class="item">Alitas BBQ <span>$9.99</span></div>
			<div class="item">Combo Personal <span>$6,50</span></div>
			<script>var price = "$99.99";</script>
			<div class="footer">Sin precios aquí</div>
		</body></html>`

	doc, err := ParseDocument(page)
	require.NoError(t, err)

	tokens := doc.PriceTokens()
	require.Len(t, tokens, 2, "script content must not contribute tokens")
	assert.Contains(t, tokens[0].Raw, "$9.99")
	assert.Contains(t, tokens[1].Raw, "$6,50")
}

func TestPriceTokens_RequiresTwoDecimals(t *testing.T) {
	doc, err := ParseDocument(`<div>Desde $5 o por $7.5 cada una, hoy $7.50</div>`)
	require.NoError(t, err)

	tokens := doc.PriceTokens()
	require.Len(t, tokens, 1)
	assert.Contains(t, tokens[0].Raw, "$7.50")
}
