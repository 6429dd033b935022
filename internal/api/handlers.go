/**
 * @description
 * This file contains the HTTP handlers for the dashboard backend's API
 * endpoints. Handlers are responsible for parsing incoming requests, calling
 * the appropriate methods on the application service, and writing the HTTP
 * response. They act as the bridge between the web layer and the resilient
 * fetcher.
 *
 * @dependencies
 * - encoding/json, log, net/http: Standard Go libraries.
 * - internal/app, internal/config, internal/domain: Service logic, settings and models.
 */

package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/yayadash/transaction-dashboard/internal/app"
	"github.com/yayadash/transaction-dashboard/internal/config"
	"github.com/yayadash/transaction-dashboard/internal/domain"
)

// TransactionHandlers holds the application service and settings the
// handlers need.
type TransactionHandlers struct {
	service   *app.Service
	cfg       config.Config
	startedAt time.Time
}

// NewTransactionHandlers creates a new instance of TransactionHandlers.
func NewTransactionHandlers(service *app.Service, cfg config.Config) *TransactionHandlers {
	return &TransactionHandlers{
		service:   service,
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// errorResponse is the JSON body for boundary-level rejections.
type errorResponse struct {
	Error     string `json:"error"`
	Path      string `json:"path,omitempty"`
	Timestamp string `json:"timestamp"`
}

// searchRequestBody is the DTO for incoming search API requests. SearchTerm
// is decoded loosely so non-string values can be rejected with a 400 rather
// than a decode failure.
type searchRequestBody struct {
	SearchTerm interface{} `json:"searchTerm"`
	Fields     []string    `json:"fields"`
}

// ListTransactionsHandler handles GET /transactions?p=&limit=.
// p defaults to 1 and limit to 10, clamped to 100. Invalid values fall back
// to the defaults rather than being rejected; the read path never errors.
func (h *TransactionHandlers) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	page := parsePositiveInt(r.URL.Query().Get("p"), domain.DefaultPage)
	limit := parsePositiveInt(r.URL.Query().Get("limit"), domain.DefaultLimit)
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}

	result := h.service.GetTransactions(r.Context(), page, limit)

	reqID, _ := GetRequestID(r.Context())
	log.Printf("level=info component=api endpoint=list_transactions request_id=%s page=%d limit=%d count=%d fallback=%t",
		reqID, page, limit, len(result.Transactions), result.Note != "")

	writeJSON(w, http.StatusOK, result)
}

// SearchTransactionsHandler handles POST /transactions/search.
// The body must carry a non-empty string searchTerm; anything else is a 400.
func (h *TransactionHandlers) SearchTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	var req searchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "searchTerm is required and must be a string", r.URL.Path)
		return
	}
	term, ok := req.SearchTerm.(string)
	if !ok || term == "" {
		writeError(w, http.StatusBadRequest, "searchTerm is required and must be a string", r.URL.Path)
		return
	}

	result := h.service.SearchTransactions(r.Context(), term, req.Fields)

	reqID, _ := GetRequestID(r.Context())
	log.Printf("level=info component=api endpoint=search_transactions request_id=%s term=%q results=%d fallback=%t",
		reqID, term, result.TotalResults, result.Note != "")

	writeJSON(w, http.StatusOK, result)
}

// healthConfig summarizes the runtime configuration without leaking secrets.
type healthConfig struct {
	Port          string `json:"port"`
	APIConfigured bool   `json:"apiConfigured"`
	APIKey        string `json:"apiKey"`
	APIBase       string `json:"apiBase"`
	AuthMethod    string `json:"authMethod"`
	CORSOrigin    string `json:"corsOrigin"`
}

type healthResponse struct {
	Status        string       `json:"status"`
	Timestamp     string       `json:"timestamp"`
	Environment   string       `json:"environment"`
	UptimeSeconds float64      `json:"uptime"`
	Config        healthConfig `json:"config"`
	APIStatus     string       `json:"apiStatus"`
}

// HealthHandler handles GET /health. It reports process status plus the
// result of a short connectivity probe against the upstream API.
func (h *TransactionHandlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:        "OK",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Environment:   h.cfg.Environment,
		UptimeSeconds: time.Since(h.startedAt).Seconds(),
		Config: healthConfig{
			Port:          h.cfg.ServerPort,
			APIConfigured: h.cfg.APIConfigured(),
			APIKey:        h.cfg.MaskedAPIKey(),
			APIBase:       h.cfg.YayaAPIBaseURL,
			AuthMethod:    "HMAC-SHA256",
			CORSOrigin:    h.cfg.FrontendURL,
		},
		APIStatus: "not_configured",
	}

	if h.cfg.APIConfigured() {
		resp.APIStatus = h.service.UpstreamStatus(r.Context())
	}

	writeJSON(w, http.StatusOK, resp)
}

// NotFoundHandler responds with a JSON 404 for unknown routes.
func (h *TransactionHandlers) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Route not found", r.URL.Path)
}

func parsePositiveInt(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("level=error component=api msg=\"failed to encode response\" err=%v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, path string) {
	writeJSON(w, status, errorResponse{
		Error:     message,
		Path:      path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
