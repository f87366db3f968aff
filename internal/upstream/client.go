package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mosfood/internal/model"

	"github.com/rs/zerolog"
)

// Client is an HTTP client for the MosFood order API. Every request
// carries the stored key as an api_key query parameter; an
// unauthorised response forgets the key before the error is returned.
// The client does not retry: each create, update or delete is a single
// atomic request from the storefront's point of view.
type Client struct {
	baseURL string
	http    *http.Client
	keys    *KeyStore
	logger  zerolog.Logger
}

// NewClient creates an upstream API client.
func NewClient(baseURL string, timeout time.Duration, keys *KeyStore, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		keys:    keys,
		logger:  logger.With().Str("component", "upstream").Logger(),
	}
}

// Dishes fetches the full dish catalogue.
func (c *Client) Dishes(ctx context.Context) ([]model.Dish, error) {
	var dishes []model.Dish
	if err := c.do(ctx, http.MethodGet, "/api/dishes", nil, &dishes); err != nil {
		return nil, fmt.Errorf("failed to fetch dishes: %w", err)
	}
	return dishes, nil
}

// Orders fetches all orders owned by the key's account.
func (c *Client) Orders(ctx context.Context) ([]model.OrderRecord, error) {
	var orders []model.OrderRecord
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// Order fetches a single order by id.
func (c *Client) Order(ctx context.Context, id int) (model.OrderRecord, error) {
	var rec model.OrderRecord
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+strconv.Itoa(id), nil, &rec); err != nil {
		return model.OrderRecord{}, fmt.Errorf("failed to fetch order %d: %w", id, err)
	}
	return rec, nil
}

// CreateOrder submits a new order and returns the created record.
func (c *Client) CreateOrder(ctx context.Context, rec model.OrderRecord) (model.OrderRecord, error) {
	var created model.OrderRecord
	if err := c.do(ctx, http.MethodPost, "/api/orders", rec, &created); err != nil {
		return model.OrderRecord{}, fmt.Errorf("failed to create order: %w", err)
	}
	c.logger.Info().Int("order_id", created.ID).Msg("order created")
	return created, nil
}

// UpdateOrder replaces an existing order and returns the stored record.
func (c *Client) UpdateOrder(ctx context.Context, id int, rec model.OrderRecord) (model.OrderRecord, error) {
	var updated model.OrderRecord
	if err := c.do(ctx, http.MethodPut, "/api/orders/"+strconv.Itoa(id), rec, &updated); err != nil {
		return model.OrderRecord{}, fmt.Errorf("failed to update order %d: %w", id, err)
	}
	c.logger.Info().Int("order_id", id).Msg("order updated")
	return updated, nil
}

// DeleteOrder removes an order by id.
func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	if err := c.do(ctx, http.MethodDelete, "/api/orders/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	c.logger.Info().Int("order_id", id).Msg("order deleted")
	return nil
}

// do runs one request against the upstream API. A missing key fails
// before any network traffic; 401/403 forgets the key; 404 maps to the
// not-found domain error; any other non-2xx surfaces as a transport
// error with a body excerpt.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	key, ok := c.keys.Key()
	if !ok {
		return model.ErrKeyRequired
	}

	endpoint := c.baseURL + path + "?api_key=" + url.QueryEscape(key)

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().Str("method", method).Str("path", path).Msg("upstream request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.keys.Forget()
		return model.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return model.ErrOrderNotFound
	case resp.StatusCode >= 400:
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upstream %s %s: status %d: %s", method, path, resp.StatusCode, excerpt)
	}

	// DELETE responds 204 with no body.
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}
