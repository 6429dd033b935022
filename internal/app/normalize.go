/**
 * @description
 * Response shape normalization for the YaYa Wallet API. The upstream is
 * known to produce transaction listings in several shapes; this file folds
 * all of them into the envelope the frontend consumes.
 *
 * Recognized shapes:
 *   1. {success, transactions, pagination} — pagination passed through.
 *   2. {transactions, total|totalPages}    — pagination synthesized.
 *   3. bare array of transactions          — wrapped, single page.
 * Anything else is a normalization failure, which the caller treats the same
 * as a transport failure (fallback), never as an empty success.
 */

package app

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/yayadash/transaction-dashboard/internal/domain"
)

var errUnrecognizedShape = errors.New("unrecognized upstream response shape")

// parsedBody is the result of sniffing one upstream response.
type parsedBody struct {
	transactions []domain.Transaction
	fields       map[string]json.RawMessage // nil for bare arrays
}

// parseUpstream decodes an upstream body into its transaction list plus the
// remaining top-level fields. A body without a recognizable transactions
// list fails with errUnrecognizedShape.
func parseUpstream(raw json.RawMessage) (parsedBody, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var transactions []domain.Transaction
		if err := json.Unmarshal(raw, &transactions); err != nil {
			return parsedBody{}, errUnrecognizedShape
		}
		return parsedBody{transactions: transactions}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return parsedBody{}, errUnrecognizedShape
	}
	txRaw, ok := fields["transactions"]
	if !ok {
		return parsedBody{}, errUnrecognizedShape
	}
	var transactions []domain.Transaction
	if err := json.Unmarshal(txRaw, &transactions); err != nil {
		return parsedBody{}, errUnrecognizedShape
	}
	return parsedBody{transactions: transactions, fields: fields}, nil
}

// normalizeList folds an upstream listing into the canonical envelope.
func normalizeList(raw json.RawMessage, page, limit int) (*domain.ListResponse, error) {
	parsed, err := parseUpstream(raw)
	if err != nil {
		return nil, err
	}

	transactions := parsed.transactions
	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	pagination := &domain.Pagination{
		CurrentPage:  page,
		TotalPages:   1,
		TotalItems:   len(transactions),
		ItemsPerPage: limit,
	}

	if parsed.fields != nil {
		if isTruthy(parsed.fields["success"]) {
			// Shape 1: trust the upstream pagination block when present.
			if pRaw, ok := parsed.fields["pagination"]; ok {
				var upstream domain.Pagination
				if err := json.Unmarshal(pRaw, &upstream); err == nil && upstream != (domain.Pagination{}) {
					pagination = &upstream
				}
			}
		} else {
			// Shape 2: synthesize pagination from total/totalPages.
			total := intField(parsed.fields, "total")
			totalPages := intField(parsed.fields, "totalPages")
			if total > 0 {
				pagination.TotalItems = total
			}
			switch {
			case totalPages > 0:
				pagination.TotalPages = totalPages
			case total > 0 && limit > 0:
				pagination.TotalPages = (total + limit - 1) / limit
			}
		}
	}

	return &domain.ListResponse{
		Transactions: transactions,
		Pagination:   pagination,
		Success:      domain.StatusSuccess,
	}, nil
}

// normalizeSearch folds an upstream search result into the search envelope.
func normalizeSearch(raw json.RawMessage, term string) (*domain.SearchResponse, error) {
	parsed, err := parseUpstream(raw)
	if err != nil {
		return nil, err
	}

	transactions := parsed.transactions
	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	return &domain.SearchResponse{
		Transactions: transactions,
		SearchTerm:   term,
		TotalResults: len(transactions),
		Success:      domain.StatusSuccess,
	}, nil
}

// isTruthy reports whether a raw JSON field holds a truthy value in the
// loose sense the upstream uses: true, a non-empty string, or a non-zero
// number.
func isTruthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return false
	}
}

// intField decodes a numeric top-level field, tolerating absence.
func intField(fields map[string]json.RawMessage, name string) int {
	raw, ok := fields[name]
	if !ok {
		return 0
	}
	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0
	}
	return int(value)
}
