// internal/adapters/out/http/order_client.go
package httpout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shopfront/internal/application/usecase"
	cartdom "shopfront/internal/domain/cart"
)

// OrderClient implements the CheckoutUsecase's OrderSubmitter port
// against the order-creation endpoint.
type OrderClient struct {
	baseURL string
	client  *http.Client
}

func NewOrderClient(baseURL string, timeout time.Duration) *OrderClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return &OrderClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type orderPayload struct {
	ClientID string             `json:"clientId"`
	Items    []cartdom.LineItem `json:"items"`
}

type orderResponse struct {
	OrderID string `json:"orderId"`
}

// Submit posts the serialized cart. A 401 response maps to
// usecase.ErrUnauthorized; any other non-2xx is a generic failure. The
// returned order id is informational only.
func (c *OrderClient) Submit(ctx context.Context, clientID string, items []cartdom.LineItem) (string, error) {
	if c == nil || c.baseURL == "" {
		return "", fmt.Errorf("order client: baseURL is empty")
	}

	body, err := json.Marshal(orderPayload{ClientID: clientID, Items: items})
	if err != nil {
		return "", fmt.Errorf("order client: marshal payload: %w", err)
	}

	url := c.baseURL + "/api/orders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-Id", clientID)

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return "", fmt.Errorf("order client: %w", usecase.ErrUnauthorized)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(res.Body, 1<<10))
		return "", fmt.Errorf("order client: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	var out orderResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		// a 2xx with an odd body is still a placed order
		return "", nil
	}
	return out.OrderID, nil
}
