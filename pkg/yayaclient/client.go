/**
 * @description
 * This package provides a client for the YaYa Wallet transaction API. It
 * encapsulates the logic for making HMAC-authenticated HTTP requests to the
 * upstream endpoints and returning the raw response body for normalization
 * by the caller.
 *
 * @dependencies
 * - bytes, context, encoding/json, fmt, net/http, time: Standard Go libraries.
 */

package yayaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Upstream endpoint paths. These appear verbatim in the signature pre-image,
// so they must match the documented routes exactly.
const (
	EndpointFindByUser = "/transaction/find-by-user"
	EndpointSearch     = "/transaction/search"
	EndpointHealth     = "/health"
)

const (
	defaultRequestTimeout = 10 * time.Second
	healthTimeout         = 5 * time.Second
)

// Client is a client for the YaYa Wallet API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	signer *Signer
}

// APIError represents a non-2xx response from the YaYa Wallet API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yaya api error: status %d", e.StatusCode)
}

// NewClient creates a new YaYa Wallet API client. It fails when the
// credential is missing so that misconfiguration is caught at startup.
func NewClient(baseURL, apiKey, apiSecret string) (*Client, error) {
	signer, err := NewSigner(apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
		signer: signer,
	}, nil
}

// searchRequest is the payload for the upstream search endpoint.
type searchRequest struct {
	Query string `json:"query"`
}

// FetchTransactions requests one page of the authenticated user's
// transactions. The response body is returned raw; the caller decides how to
// interpret the several shapes the upstream is known to produce.
func (c *Client) FetchTransactions(ctx context.Context, page, limit int) (json.RawMessage, error) {
	auth := c.signer.Headers(http.MethodGet, EndpointFindByUser, "")

	reqURL := c.BaseURL + EndpointFindByUser + "?" + url.Values{
		"page":  []string{strconv.Itoa(page)},
		"limit": []string{strconv.Itoa(limit)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create find-by-user request: %w", err)
	}
	setAuthHeaders(req, auth)

	return c.do(req, "find_by_user")
}

// SearchTransactions posts a search query to the upstream API. The serialized
// body bytes sent on the wire are exactly the bytes included in the signature
// pre-image.
func (c *Client) SearchTransactions(ctx context.Context, term string) (json.RawMessage, error) {
	body, err := json.Marshal(searchRequest{Query: term})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	auth := c.signer.Headers(http.MethodPost, EndpointSearch, string(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+EndpointSearch, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	setAuthHeaders(req, auth)

	return c.do(req, "search")
}

// CheckHealth probes upstream connectivity. The health route is unsigned and
// uses a shorter timeout than transactional calls.
func (c *Client) CheckHealth(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+EndpointHealth, nil)
	if err != nil {
		return fmt.Errorf("failed to create health request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach yaya api: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode}
	}
	return nil
}

// do executes an authenticated request and returns the raw body on 2xx.
func (c *Client) do(req *http.Request, op string) (json.RawMessage, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s request: %w", op, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("level=warn component=yaya_client op=%s status=%d msg=\"non-2xx response\"", op, resp.StatusCode)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	return json.RawMessage(bodyBytes), nil
}

func setAuthHeaders(req *http.Request, auth AuthHeaders) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderAPIKey, auth.APIKey)
	req.Header.Set(HeaderTimestamp, auth.Timestamp)
	req.Header.Set(HeaderSignature, auth.Signature)
}
