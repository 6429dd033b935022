package yayaclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(baseURL, "test-key", "test-secret")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return client
}

func TestNewClient_RequiresCredential(t *testing.T) {
	if _, err := NewClient("http://example.com", "", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestFetchTransactions_SignsRequest(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"transactions":[{"transactionId":"abc"}]}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	raw, err := client.FetchTransactions(context.Background(), 2, 25)
	if err != nil {
		t.Fatalf("FetchTransactions returned error: %v", err)
	}

	if got := captured.URL.Query().Get("page"); got != "2" {
		t.Fatalf("expected page=2, got %q", got)
	}
	if got := captured.URL.Query().Get("limit"); got != "25" {
		t.Fatalf("expected limit=25, got %q", got)
	}
	if got := captured.Header.Get(HeaderAPIKey); got != "test-key" {
		t.Fatalf("expected api key header, got %q", got)
	}

	// The signature must cover exactly (timestamp, GET, endpoint, "").
	timestamp := captured.Header.Get(HeaderTimestamp)
	if timestamp == "" {
		t.Fatal("expected timestamp header to be set")
	}
	want := client.signer.Sign(timestamp, http.MethodGet, EndpointFindByUser, "")
	if got := captured.Header.Get(HeaderSignature); got != want {
		t.Fatalf("expected signature %q, got %q", want, got)
	}

	var body struct {
		Transactions []map[string]string `json:"transactions"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("returned body is not the raw upstream JSON: %v", err)
	}
	if len(body.Transactions) != 1 || body.Transactions[0]["transactionId"] != "abc" {
		t.Fatalf("unexpected body %s", raw)
	}
}

func TestSearchTransactions_SignsSerializedBody(t *testing.T) {
	var captured *http.Request
	var capturedBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		capturedBody, _ = io.ReadAll(r.Body)
		io.WriteString(w, `{"transactions":[]}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.SearchTransactions(context.Background(), "coffee"); err != nil {
		t.Fatalf("SearchTransactions returned error: %v", err)
	}

	if string(capturedBody) != `{"query":"coffee"}` {
		t.Fatalf("unexpected wire body %q", capturedBody)
	}

	// The bytes sent on the wire are the bytes signed.
	timestamp := captured.Header.Get(HeaderTimestamp)
	want := client.signer.Sign(timestamp, http.MethodPost, EndpointSearch, string(capturedBody))
	if got := captured.Header.Get(HeaderSignature); got != want {
		t.Fatalf("expected signature %q, got %q", want, got)
	}
}

func TestFetchTransactions_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.FetchTransactions(context.Background(), 1, 10)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", apiErr.StatusCode)
	}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantAPIErr bool
	}{
		{name: "healthy", status: http.StatusOK},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantAPIErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			err := client.CheckHealth(context.Background())

			if !tt.wantAPIErr {
				if err != nil {
					t.Fatalf("expected healthy probe, got %v", err)
				}
				return
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %v", err)
			}
		})
	}
}

func TestCheckHealth_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client := newTestClient(t, server.URL)
	err := client.CheckHealth(context.Background())
	if err == nil {
		t.Fatal("expected transport error from closed server")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure should not be an APIError, got %v", err)
	}
}
