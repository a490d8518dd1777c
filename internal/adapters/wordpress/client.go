package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// defaultTimeout bounds every upstream call so a slow CMS cannot stall the
// fallback path. A timeout is treated like any other transport failure.
const defaultTimeout = 10 * time.Second

// ErrMissingCredentials is returned for write and preview operations when
// WORDPRESS_USER / WORDPRESS_APP_PASSWORD are not configured. Writes must not
// fall back silently: a defaulted credential could land data in the wrong place.
var ErrMissingCredentials = errors.New("wordpress credentials not configured (WORDPRESS_USER, WORDPRESS_APP_PASSWORD)")

// Query holds the supported upstream query parameters for a collection fetch.
type Query struct {
	PerPage int
	Page    int
	Slug    string
	Search  string
	// Preview authenticates the request and includes draft content.
	Preview bool
}

// Client is a thin transport over the WordPress REST API. It performs no
// fallback itself; the gateway sequences transports.
type Client struct {
	client      *http.Client
	baseURL     string
	username    string
	appPassword string
}

// NewClient returns a client for the REST base URL (e.g.
// https://cms.example.com/wp-json/wp/v2). Credentials may be empty; they are
// only required for writes and preview fetches.
func NewClient(baseURL, username, appPassword string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		client:      client,
		baseURL:     baseURL,
		username:    username,
		appPassword: appPassword,
	}
}

func (c *Client) hasCredentials() bool {
	return c.username != "" && c.appPassword != ""
}

// FetchCollection fetches records of the given content type ("events",
// "speakers", "posts"). Embedded media and taxonomy terms are requested so the
// adapter can resolve featured images and categories.
func (c *Client) FetchCollection(ctx context.Context, contentType string, q Query) ([]RawRecord, error) {
	params := url.Values{}
	params.Set("_embed", "true")
	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Page > 1 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Slug != "" {
		params.Set("slug", q.Slug)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Preview {
		params.Set("status", "any")
	}

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, contentType, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if q.Preview {
		if !c.hasCredentials() {
			return nil, ErrMissingCredentials
		}
		req.SetBasicAuth(c.username, c.appPassword)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from wordpress: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wordpress api returned status: %d", resp.StatusCode)
	}

	var records []RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode wordpress response: %w", err)
	}
	return records, nil
}

// FetchByID fetches a single record by its upstream id.
func (c *Client) FetchByID(ctx context.Context, contentType, id string) (*RawRecord, error) {
	endpoint := fmt.Sprintf("%s/%s/%s?_embed=true", c.baseURL, contentType, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from wordpress: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wordpress api returned status: %d", resp.StatusCode)
	}

	var record RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode wordpress response: %w", err)
	}
	return &record, nil
}

// Fetch performs an authenticated GET on the content type with the given
// query parameters, decoding the response into dest. Used for non-public
// content types such as participants and reservations.
func (c *Client) Fetch(ctx context.Context, contentType string, params url.Values, dest any) error {
	if !c.hasCredentials() {
		return ErrMissingCredentials
	}
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, contentType, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.appPassword)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch from wordpress: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wordpress api returned status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode wordpress response: %w", err)
	}
	return nil
}

// CreateRecord POSTs a new record of the given content type with Basic auth.
func (c *Client) CreateRecord(ctx context.Context, contentType string, body any) error {
	return c.write(ctx, http.MethodPost, fmt.Sprintf("%s/%s", c.baseURL, contentType), body)
}

// UpdateRecord POSTs an update to an existing record with Basic auth.
func (c *Client) UpdateRecord(ctx context.Context, contentType, id string, body any) error {
	return c.write(ctx, http.MethodPost, fmt.Sprintf("%s/%s/%s", c.baseURL, contentType, url.PathEscape(id)), body)
}

func (c *Client) write(ctx context.Context, method, endpoint string, body any) error {
	if !c.hasCredentials() {
		return ErrMissingCredentials
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.appPassword)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to write to wordpress: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("wordpress api returned status: %d", resp.StatusCode)
	}
	return nil
}
