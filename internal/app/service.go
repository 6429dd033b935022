/**
 * @description
 * This file contains the core business logic for the transaction dashboard:
 * the resilient fetcher. Every read path first attempts the live YaYa Wallet
 * API and, on any failure, substitutes generated sample data so that callers
 * always receive a well-formed envelope. The guiding policy is availability
 * over correctness-of-source; only the envelope's note field distinguishes
 * live data from the fallback.
 *
 * @dependencies
 * - context, encoding/json, errors, log, strings, time: Standard Go libraries.
 * - internal/domain, internal/metrics: Domain models and collectors.
 */

package app

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/yayadash/transaction-dashboard/internal/domain"
	"github.com/yayadash/transaction-dashboard/internal/metrics"
	"github.com/yayadash/transaction-dashboard/pkg/yayaclient"
)

// Upstream API statuses reported by the health endpoint.
const (
	UpstreamConnected    = "connected"
	UpstreamDisconnected = "disconnected"
	UpstreamError        = "error"
)

// UpstreamClient is the surface of the YaYa Wallet API the service depends
// on. Satisfied by *yayaclient.Client.
type UpstreamClient interface {
	FetchTransactions(ctx context.Context, page, limit int) (json.RawMessage, error)
	SearchTransactions(ctx context.Context, term string) (json.RawMessage, error)
	CheckHealth(ctx context.Context) error
}

// Service orchestrates transaction retrieval with fallback to sample data.
// It is stateless per request; the only shared state is its immutable
// dependencies, so concurrent calls need no coordination.
type Service struct {
	upstream UpstreamClient
	samples  *SampleGenerator
	metrics  *metrics.Metrics
}

// NewService creates the fetcher with its dependencies. metrics may be nil.
func NewService(upstream UpstreamClient, samples *SampleGenerator, m *metrics.Metrics) *Service {
	return &Service{
		upstream: upstream,
		samples:  samples,
		metrics:  m,
	}
}

// GetTransactions returns one page of transactions. A single upstream
// attempt is made; transport errors, non-2xx responses, timeouts and
// unrecognizable bodies all degrade to sample data. No error ever escapes.
func (s *Service) GetTransactions(ctx context.Context, page, limit int) *domain.ListResponse {
	start := time.Now()
	raw, err := s.upstream.FetchTransactions(ctx, page, limit)
	if err == nil {
		if normalized, nErr := normalizeList(raw, page, limit); nErr == nil {
			s.metrics.RecordUpstreamRequest("find_by_user", "live", time.Since(start).Seconds())
			return normalized
		}
		err = errUnrecognizedShape
	}
	s.metrics.RecordUpstreamRequest("find_by_user", "error", time.Since(start).Seconds())
	s.metrics.RecordFallback("list")
	log.Printf("level=warn component=transaction_service op=list msg=\"falling back to sample data\" page=%d limit=%d err=%v", page, limit, err)

	total := s.samples.TotalCount()
	return &domain.ListResponse{
		Transactions: s.samples.Transactions(page, limit),
		Pagination: &domain.Pagination{
			CurrentPage:  page,
			TotalPages:   (total + limit - 1) / limit,
			TotalItems:   total,
			ItemsPerPage: limit,
		},
		Success: domain.StatusSuccess,
		Note:    domain.SampleDataNote,
	}
}

// SearchTransactions searches transactions by term. The fallback filters a
// freshly generated pool: a record matches when any requested field contains
// the term case-insensitively. An empty match set is still a success.
func (s *Service) SearchTransactions(ctx context.Context, term string, fields []string) *domain.SearchResponse {
	if len(fields) == 0 {
		fields = domain.DefaultSearchFields
	}

	start := time.Now()
	raw, err := s.upstream.SearchTransactions(ctx, term)
	if err == nil {
		if normalized, nErr := normalizeSearch(raw, term); nErr == nil {
			s.metrics.RecordUpstreamRequest("search", "live", time.Since(start).Seconds())
			return normalized
		}
		err = errUnrecognizedShape
	}
	s.metrics.RecordUpstreamRequest("search", "error", time.Since(start).Seconds())
	s.metrics.RecordFallback("search")
	log.Printf("level=warn component=transaction_service op=search msg=\"falling back to sample data\" term=%q err=%v", term, err)

	matches := filterTransactions(s.samples.SearchPool(), term, fields)
	return &domain.SearchResponse{
		Transactions: matches,
		SearchTerm:   term,
		TotalResults: len(matches),
		Success:      domain.StatusSuccess,
		Note:         domain.SampleDataNote,
	}
}

// UpstreamStatus probes upstream connectivity for the health endpoint.
// A reachable-but-failing upstream reports "error"; an unreachable one
// reports "disconnected".
func (s *Service) UpstreamStatus(ctx context.Context) string {
	err := s.upstream.CheckHealth(ctx)
	if err == nil {
		return UpstreamConnected
	}
	var apiErr *yayaclient.APIError
	if errors.As(err, &apiErr) {
		return UpstreamError
	}
	return UpstreamDisconnected
}

// filterTransactions keeps records where any requested field's value
// contains term as a case-insensitive substring.
func filterTransactions(pool []domain.Transaction, term string, fields []string) []domain.Transaction {
	needle := strings.ToLower(term)
	matches := []domain.Transaction{}
	for _, tx := range pool {
		for _, field := range fields {
			value, ok := tx.FieldValue(field)
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(value), needle) {
				matches = append(matches, tx)
				break
			}
		}
	}
	return matches
}
