package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/freshlane/bulkstore/internal/catalog"
	"github.com/freshlane/bulkstore/internal/order"
)

// Client is the storefront's HTTP client for the two services. Token is
// the buyer's bearer token from the identity provider; it is sent on the
// authenticated routes only.
type Client struct {
	HTTP           *http.Client
	CatalogBaseURL string
	OrderBaseURL   string
	Token          string
}

func NewClient(catalogBaseURL, orderBaseURL, token string) *Client {
	return &Client{
		HTTP:           &http.Client{Timeout: 5 * time.Second},
		CatalogBaseURL: strings.TrimRight(catalogBaseURL, "/"),
		OrderBaseURL:   strings.TrimRight(orderBaseURL, "/"),
		Token:          token,
	}
}

func apiError(res *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Error != "" {
		return errors.New(body.Error)
	}
	return fmt.Errorf("unexpected status %s", res.Status)
}

func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.CatalogBaseURL+"/products", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, apiError(res)
	}
	var out []catalog.Product
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Place(ctx context.Context, reqBody order.CreateOrderRequest) (*order.Order, error) {
	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.OrderBaseURL+"/orders", strings.NewReader(string(data)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return nil, apiError(res)
	}
	var o order.Order
	if err := json.NewDecoder(res.Body).Decode(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Orders fetches the full list; the tracking and admin views filter it
// locally. An empty store answers 404, which we surface as an empty slice.
func (c *Client) Orders(ctx context.Context) ([]order.Order, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.OrderBaseURL+"/orders", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return []order.Order{}, nil
	}
	if res.StatusCode != http.StatusOK {
		return nil, apiError(res)
	}
	var out []order.Order
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel removes a pending order the buyer placed.
func (c *Client) Cancel(ctx context.Context, orderID string) error {
	req, _ := http.NewRequestWithContext(ctx, http.MethodDelete, c.OrderBaseURL+"/orders/"+orderID, nil)
	req.Header.Set("Authorization", "Bearer "+c.Token)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return apiError(res)
	}
	return nil
}
