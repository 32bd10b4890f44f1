package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// CatalogClient fetches product snapshots from catalog-service over HTTP.
// It is the production ProductSource.
type CatalogClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *CatalogClient) FetchProduct(ctx context.Context, id string) (*ProductSnapshot, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/products/%s", c.BaseURL, id), nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound, http.StatusBadRequest:
		return nil, ErrUnknownProduct
	default:
		return nil, fmt.Errorf("catalog: unexpected status %s", res.Status)
	}

	var p ProductSnapshot
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
