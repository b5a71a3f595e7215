package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/utils"
)

// Product is what the barcode database knows about a packaged good.
type Product struct {
	Name        string
	RawCategory string
	Quantity    string // "<number> <unit>", may be empty
}

type ProductLookup interface {
	// Lookup resolves a scanned barcode. A barcode missing from the
	// database returns domain.ErrProductNotFound, which is an expected
	// outcome, not a transport failure.
	Lookup(ctx context.Context, barcode string) (Product, error)
}

type openFoodFactsLookup struct {
	baseURL string
	client  *http.Client
}

func NewProductLookup() ProductLookup {
	baseURL := utils.GetConfig("PRODUCT_LOOKUP_URL")
	if baseURL == "" {
		baseURL = "https://world.openfoodfacts.org"
	}
	return &openFoodFactsLookup{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (l *openFoodFactsLookup) Lookup(ctx context.Context, barcode string) (Product, error) {
	url := fmt.Sprintf("%s/api/v0/product/%s.json", l.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Product{}, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return Product{}, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Product{}, domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return Product{}, fmt.Errorf("%w: %s", domain.ErrLookupFailed, resp.Status)
	}

	var payload struct {
		Status  int `json:"status"`
		Product struct {
			ProductName string `json:"product_name"`
			Categories  string `json:"categories"`
			Quantity    string `json:"quantity"`
		} `json:"product"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Product{}, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}

	if payload.Status != 1 || payload.Product.ProductName == "" {
		return Product{}, domain.ErrProductNotFound
	}

	return Product{
		Name:        payload.Product.ProductName,
		RawCategory: payload.Product.Categories,
		Quantity:    payload.Product.Quantity,
	}, nil
}

// parseQuantity splits a "<number> <unit>" product quantity. Anything it
// cannot read falls back to one piece.
func parseQuantity(raw string) (quantity, unit string) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) >= 2 {
		if isNumeric(fields[0]) {
			return fields[0], strings.Join(fields[1:], " ")
		}
	}
	if len(fields) == 1 {
		// forms like "500g"
		for i, r := range fields[0] {
			if (r < '0' || r > '9') && r != '.' {
				if i > 0 {
					return fields[0][:i], fields[0][i:]
				}
				break
			}
		}
	}
	return "1", "pcs"
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	dots := 0
	for _, r := range s {
		if r == '.' {
			dots++
			if dots > 1 {
				return false
			}
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != "."
}
