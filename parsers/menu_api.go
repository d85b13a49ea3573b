package parsers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"menuwatch/extractor"
	"menuwatch/fetcher"
	"menuwatch/models"
)

// MenuAPI extracts products from a JSON menu API instead of markup: the
// home-configuration endpoint returns sections of items carrying product
// names and sale prices directly.
type MenuAPI struct {
	payload []byte
}

// NewMenuAPI builds the strategy with the Salvadoran storefront payload.
func NewMenuAPI() *MenuAPI {
	payload, _ := json.Marshal(map[string]string{
		"country":  "sv",
		"language": "es",
	})
	return &MenuAPI{payload: payload}
}

func (p *MenuAPI) Fetch(f fetcher.Fetcher, url string, opts fetcher.Options) (string, error) {
	opts.Mode = fetcher.ModeStatic
	opts.Method = http.MethodPost
	opts.Payload = p.payload
	return f.Fetch(url, opts)
}

// menuResponse mirrors the slice of the API response we consume.
type menuResponse struct {
	Data struct {
		Sections []struct {
			Data []struct {
				DataProducts []struct {
					Name      string      `json:"name"`
					SalePrice json.Number `json:"salePrice"`
				} `json:"dataProducts"`
			} `json:"data"`
		} `json:"sections"`
	} `json:"data"`
}

func (p *MenuAPI) Extract(content string, ex *extractor.Extractor) ([]models.Product, error) {
	var resp menuResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return nil, fmt.Errorf("parse menu api response: %w", err)
	}

	var products []models.Product
	seen := make(map[models.ProductKey]bool)

	for _, section := range resp.Data.Sections {
		for _, item := range section.Data {
			for _, mp := range item.DataProducts {
				price, err := mp.SalePrice.Float64()
				if err != nil || price <= 0 {
					continue
				}
				cat, ok := ex.Classify(mp.Name)
				if !ok {
					continue
				}

				product := models.Product{
					Name:         mp.Name,
					Price:        price,
					CategoryID:   cat.ID,
					CategoryName: cat.Name,
				}
				if seen[product.Key()] {
					continue
				}
				seen[product.Key()] = true
				products = append(products, product)
			}
		}
	}
	return products, nil
}

// NextPage always reports done: the API returns the full menu at once.
func (p *MenuAPI) NextPage(string) string {
	return ""
}
