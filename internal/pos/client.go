package pos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/criissj/gestion-de-inventario/internal/infra"

	"github.com/shopspring/decimal"
)

// Product is the terminal's view of a catalog entry, decoded from the API.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	SKU      *string         `json:"sku"`
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

// CheckoutPayload is the body of POST /sales.
type CheckoutPayload struct {
	Items         []CheckoutItem `json:"items"`
	PaymentMethod string         `json:"payment_method"`
}

type CheckoutItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SaleReceipt is the subset of the sale response the terminal cares about.
type SaleReceipt struct {
	ID            string          `json:"id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	PaymentMethod string          `json:"payment_method"`
}

// API is the backend surface the terminal depends on.
type API interface {
	FetchCatalog(ctx context.Context) ([]Product, error)
	SubmitSale(ctx context.Context, payload CheckoutPayload) (*SaleReceipt, error)
}

// APIError carries the server-supplied message from the {"error": ...}
// envelope so the terminal can show it verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Client talks to the inventory backend over HTTP. All calls go through a
// circuit breaker so a downed backend fast-fails instead of blocking the
// operator on every request.
type Client struct {
	baseURL string
	http    *http.Client
	cb      *infra.CircuitBreaker
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL + "/api",
		http:    &http.Client{Timeout: 10 * time.Second},
		cb:      infra.NewCircuitBreaker(infra.DefaultCBConfig()),
	}
}

func (c *Client) FetchCatalog(ctx context.Context) ([]Product, error) {
	var products []Product
	err := c.cb.Execute(func() error {
		return c.doJSON(ctx, http.MethodGet, "/products", nil, &products)
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) SubmitSale(ctx context.Context, payload CheckoutPayload) (*SaleReceipt, error) {
	var receipt SaleReceipt
	err := c.cb.Execute(func() error {
		return c.doJSON(ctx, http.MethodPost, "/sales", payload, &receipt)
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// doJSON issues a request with a JSON body (when body != nil) and decodes the
// response into out. Non-2xx responses are mapped to *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil || envelope.Error == "" {
			envelope.Error = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
