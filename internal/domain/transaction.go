/**
 * @description
 * This file defines the core domain models for the transaction dashboard.
 * These structs represent the canonical transaction shape and the response
 * envelopes returned to the frontend, whether the data came from the live
 * YaYa Wallet API or from the sample-data fallback.
 *
 * @notes
 * - Amounts are signed decimals: a positive amount is incoming money, a
 *   negative amount is outgoing. The Type field must always agree with the
 *   sign of Amount.
 * - CreatedAt is kept as an ISO-8601 string rather than time.Time so that
 *   upstream timestamps pass through the normalizer byte-for-byte.
 */

package domain

// Transaction types.
const (
	TypeIncoming = "incoming"
	TypeOutgoing = "outgoing"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Pagination defaults and bounds for the list endpoint.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// SampleDataNote marks an envelope that was served from generated sample
// data instead of the live API. Callers treat its presence as observable.
const SampleDataNote = "Using sample data (API unavailable)"

// Transaction is the canonical record returned to callers.
type Transaction struct {
	TransactionID string  `json:"transactionId"`
	Sender        string  `json:"sender"`
	Receiver      string  `json:"receiver"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Cause         string  `json:"cause"`
	CreatedAt     string  `json:"createdAt"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// ListResponse is the envelope for the paginated transaction listing.
type ListResponse struct {
	Transactions []Transaction `json:"transactions"`
	Pagination   *Pagination   `json:"pagination,omitempty"`
	Success      string        `json:"success"`
	Note         string        `json:"note,omitempty"`
}

// SearchResponse is the envelope for transaction search results.
type SearchResponse struct {
	Transactions []Transaction `json:"transactions"`
	SearchTerm   string        `json:"searchTerm"`
	TotalResults int           `json:"totalResults"`
	Success      string        `json:"success"`
	Note         string        `json:"note,omitempty"`
}

// DefaultSearchFields are the fields matched when a search request does not
// name any explicitly.
var DefaultSearchFields = []string{"sender", "receiver", "cause", "transactionId"}

// FieldValue returns the string value of a searchable field by its JSON name.
// Unknown fields return ok=false and never match.
func (t Transaction) FieldValue(field string) (string, bool) {
	switch field {
	case "transactionId":
		return t.TransactionID, true
	case "sender":
		return t.Sender, true
	case "receiver":
		return t.Receiver, true
	case "currency":
		return t.Currency, true
	case "cause":
		return t.Cause, true
	case "status":
		return t.Status, true
	case "type":
		return t.Type, true
	default:
		return "", false
	}
}
