/**
 * @description
 * HMAC request signing for the YaYa Wallet API. Every outbound call carries
 * three headers: the plaintext API key, a millisecond timestamp, and a
 * base64-encoded HMAC-SHA256 signature over the request.
 *
 * The pre-image is the plain concatenation {timestamp}{method}{endpoint}{body}
 * with no separators. This is the upstream protocol's contract and must be
 * preserved exactly for interoperability.
 */

package yayaclient

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"time"
)

// Header names expected by the YaYa Wallet API.
const (
	HeaderAPIKey    = "YAYA-API-KEY"
	HeaderTimestamp = "YAYA-API-TIMESTAMP"
	HeaderSignature = "YAYA-API-SIGN"
)

// ErrMissingCredentials is returned when a signer is constructed without an
// API key or secret. This is a configuration error: the process must refuse
// to start rather than fail per-call.
var ErrMissingCredentials = errors.New("yayaclient: API key and secret are required")

// AuthHeaders is the header set authenticating one outbound request. A
// signature is valid only for the exact (timestamp, method, endpoint, body)
// tuple that produced it; stale or mismatched timestamps are rejected
// upstream.
type AuthHeaders struct {
	APIKey    string
	Timestamp string
	Signature string
}

// Signer produces authentication headers for YaYa Wallet API requests.
// It holds the credential as immutable state for the process lifetime.
type Signer struct {
	apiKey string
	secret []byte
	now    func() time.Time
}

// NewSigner creates a signer for the given credential. Empty key or secret
// fails construction so that misconfiguration surfaces at startup.
func NewSigner(apiKey, apiSecret string) (*Signer, error) {
	if apiKey == "" || apiSecret == "" {
		return nil, ErrMissingCredentials
	}
	return &Signer{
		apiKey: apiKey,
		secret: []byte(apiSecret),
		now:    time.Now,
	}, nil
}

// Sign computes the base64-encoded HMAC-SHA256 signature for the given
// request tuple. Pure function of the credential and its inputs: re-signing
// identical inputs yields an identical signature.
func (s *Signer) Sign(timestamp, method, endpoint, body string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(timestamp))
	mac.Write([]byte(method))
	mac.Write([]byte(endpoint))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Headers captures the current wall-clock time in milliseconds and returns
// the full authentication header set for one request. body must be the exact
// serialized bytes that will be sent on the wire (empty for GET).
func (s *Signer) Headers(method, endpoint, body string) AuthHeaders {
	timestamp := strconv.FormatInt(s.now().UnixMilli(), 10)
	return AuthHeaders{
		APIKey:    s.apiKey,
		Timestamp: timestamp,
		Signature: s.Sign(timestamp, method, endpoint, body),
	}
}
