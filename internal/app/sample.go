/**
 * @description
 * Sample transaction generation for the fallback path. When the live YaYa
 * Wallet API cannot be reached, the service substitutes records from this
 * generator so the dashboard always has data to render.
 *
 * @notes
 * - Transaction IDs are deterministic for a given (page, limit) so that
 *   pagination stays coherent across reloads; every other field is
 *   randomized per call. That asymmetry is deliberate.
 * - The random source is injectable so tests can seed it. The default takes
 *   a fresh source per call, which keeps concurrent fallbacks free of shared
 *   mutable state (rand.Rand is not safe for concurrent use).
 */

package app

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/yayadash/transaction-dashboard/internal/domain"
)

// sampleCorpusSize is the fixed total the list fallback paginates over.
const sampleCorpusSize = 150

// searchPoolSize is the number of records materialized per search fallback.
// The search pool is independent of the 150-record list corpus; the two
// universes intentionally differ.
const searchPoolSize = 50

// currentUser is the sentinel account name on the local side of every
// generated transaction.
const currentUser = "current_user"

var (
	sampleCurrencies = []string{"USD", "EUR", "GBP"}
	sampleCauses     = []string{"Payment", "Transfer", "Refund", "Deposit", "Withdrawal"}
)

// isoMillis matches the wire format the upstream uses for timestamps.
const isoMillis = "2006-01-02T15:04:05.000Z"

// SampleGenerator produces synthetic transactions with deterministic IDs and
// randomized content.
type SampleGenerator struct {
	newRand func() *rand.Rand
	now     func() time.Time
}

// NewSampleGenerator creates a generator backed by a time-seeded random
// source.
func NewSampleGenerator() *SampleGenerator {
	return &SampleGenerator{
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now: time.Now,
	}
}

// Transactions generates limit records for the given page. Record i carries
// transactionId "TXN" + zero-padded 6-digit (page-1)*limit+i+1, unique across
// pages for a fixed limit.
func (g *SampleGenerator) Transactions(page, limit int) []domain.Transaction {
	rng := g.newRand()
	now := g.now()

	transactions := make([]domain.Transaction, 0, limit)
	startID := (page-1)*limit + 1

	for i := 0; i < limit; i++ {
		incoming := rng.Float64() > 0.5
		// Two-decimal magnitude in (0, 100); zero is excluded so the sign
		// always encodes direction.
		amount := math.Floor(rng.Float64()*9999+1) / 100
		counterparty := fmt.Sprintf("user_%d", rng.Intn(1000))

		tx := domain.Transaction{
			TransactionID: fmt.Sprintf("TXN%06d", startID+i),
			Currency:      sampleCurrencies[rng.Intn(len(sampleCurrencies))],
			Cause:         sampleCauses[rng.Intn(len(sampleCauses))],
			CreatedAt:     randomRecentTimestamp(rng, now),
			Status:        "completed",
		}
		if incoming {
			tx.Sender = counterparty
			tx.Receiver = currentUser
			tx.Amount = amount
			tx.Type = domain.TypeIncoming
		} else {
			tx.Sender = currentUser
			tx.Receiver = counterparty
			tx.Amount = -amount
			tx.Type = domain.TypeOutgoing
		}
		transactions = append(transactions, tx)
	}

	return transactions
}

// SearchPool materializes the fresh pool the search fallback filters.
func (g *SampleGenerator) SearchPool() []domain.Transaction {
	return g.Transactions(1, searchPoolSize)
}

// TotalCount reports the fixed corpus size used for fallback pagination math.
func (g *SampleGenerator) TotalCount() int {
	return sampleCorpusSize
}

// randomRecentTimestamp picks an instant uniformly within the 30 days before
// now.
func randomRecentTimestamp(rng *rand.Rand, now time.Time) string {
	jitter := time.Duration(rng.Float64() * 30 * 24 * float64(time.Hour))
	return now.Add(-jitter).UTC().Format(isoMillis)
}
