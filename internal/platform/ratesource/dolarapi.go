// Package ratesource fetches the official VES/USD rate from the public
// dolarapi endpoint.
package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// apiResponse is the upstream payload. Only the average rate and its
// update timestamp are consumed.
type apiResponse struct {
	Source    string          `json:"fuente"`
	Name      string          `json:"nombre"`
	Buy       decimal.Decimal `json:"compra"`
	Sell      decimal.Decimal `json:"venta"`
	Average   decimal.Decimal `json:"promedio"`
	UpdatedAt time.Time       `json:"fechaActualizacion"`
}

// Client fetches rates over HTTP. It implements ports.RateSource.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a rate-source client for the given endpoint URL.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// FetchRate performs one GET against the endpoint. Non-2xx responses
// and unparseable bodies are errors; the caller decides how to fall
// back. FetchedAt is stamped with the local clock, not the upstream
// timestamp, because the cache TTL is measured against local time.
func (c *Client) FetchRate(ctx context.Context) (*models.CachedRateEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("rate endpoint returned status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rate response: %w", err)
	}

	return &models.CachedRateEntry{
		Value:     body.Average,
		FetchedAt: time.Now(),
	}, nil
}
