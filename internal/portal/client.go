package portal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

//go:generate mockgen -source=client.go -destination=mock_client.go -package=portal

// ErrTenderNotFound reports that the portal has no tender with that id.
var ErrTenderNotFound = errors.New("portal: tender not found")

// Client fetches the current portal state of a tender by its portal id.
type Client interface {
	FetchTender(ctx context.Context, tenderID int64) (*ParsedTender, error)
}

// HTTPClient is the production Client against the scraping portal's REST API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds a portal client for the given base URL. Timeouts are
// the portal boundary's responsibility; nothing upstream cancels mid-flight.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchTender retrieves and decodes one parsed tender document.
func (c *HTTPClient) FetchTender(ctx context.Context, tenderID int64) (*ParsedTender, error) {
	url := fmt.Sprintf("%s/tenders/%d", c.baseURL, tenderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("portal: build request for tender %d: %w", tenderID, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("portal: fetch tender %d: %w", tenderID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrTenderNotFound
	default:
		return nil, fmt.Errorf("portal: fetch tender %d: unexpected status %d", tenderID, resp.StatusCode)
	}

	var parsed ParsedTender
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("portal: decode tender %d: %w", tenderID, err)
	}
	return &parsed, nil
}
