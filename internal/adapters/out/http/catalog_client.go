// internal/adapters/out/http/catalog_client.go
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

	"shopfront/internal/domain/catalog"
)

// CatalogClient implements catalog.Reader against the backend
// product-details endpoint.
type CatalogClient struct {
	baseURL string
	client  *http.Client
}

// NewCatalogClient builds the client. timeout 0 means no timeout: a hung
// request is left to hang, matching the storefront's historic behavior.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return &CatalogClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// DetailsByIDs posts the distinct id list and decodes the snapshot array.
// Any non-2xx status or undecodable body is an error; the caller decides
// what a failed reconciliation pass means.
func (c *CatalogClient) DetailsByIDs(ctx context.Context, ids []int) ([]catalog.Snapshot, error) {
	if c == nil || c.baseURL == "" {
		return nil, fmt.Errorf("catalog client: baseURL is empty")
	}
	if len(ids) == 0 {
		return []catalog.Snapshot{}, nil
	}

	body, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("catalog client: marshal ids: %w", err)
	}

	url := c.baseURL + "/api/products-details"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(res.Body, 1<<10))
		return nil, fmt.Errorf("catalog client: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	var snaps []catalog.Snapshot
	if err := json.NewDecoder(res.Body).Decode(&snaps); err != nil {
		return nil, fmt.Errorf("catalog client: decode response: %w", err)
	}
	return snaps, nil
}
