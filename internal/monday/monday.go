// Package monday creates board items for roles via the v2 GraphQL endpoint.
package monday

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rolesync/internal/domain"
)

const createItemQuery = `mutation ($board_id: ID!, $item_name: String!, $column_values: JSON!) {
    create_item(board_id: $board_id, item_name: $item_name, column_values: $column_values) {
        id
    }
}`

type Config struct {
	APIURL  string // https://api.monday.com/v2
	APIKey  string
	BoardID string
}

type Client struct {
	cfg Config
	hc  *http.Client
}

func New(cfg Config, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{cfg: cfg, hc: hc}
}

// CreateItem submits one create_item mutation for the role. A non-2xx status
// is an error; retries for transient 5xx happen in the shared HTTP client.
func (c *Client) CreateItem(ctx context.Context, role domain.Role) error {
	cols, err := json.Marshal(ColumnValues(role))
	if err != nil {
		return fmt.Errorf("encode column values: %w", err)
	}

	payload := map[string]any{
		"query": createItemQuery,
		"variables": map[string]any{
			"board_id":  c.cfg.BoardID,
			"item_name": role.Title,
			// the API wants the column map as a JSON-encoded string
			"column_values": string(cols),
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("create item status %d", res.StatusCode)
	}
	return nil
}
