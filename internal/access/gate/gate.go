package gate

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"sync"
	"time"
)

// AccessGate verifies submitted access codes against the digest of the
// one configured passphrase and tracks whether the current process-wide
// session is authenticated. The plaintext passphrase is hashed once at
// construction and never kept.
type AccessGate struct {
	expected []byte

	mu       sync.Mutex
	issuedAt *time.Time
}

func New(passphrase string) *AccessGate {
	digest := sha256.Sum256([]byte(passphrase))
	return &AccessGate{expected: digest[:]}
}

// Hash returns the hex-encoded SHA-256 digest of the input.
func Hash(input string) string {
	digest := sha256.Sum256([]byte(input))
	return hex.EncodeToString(digest[:])
}

// Verify hashes the candidate and compares digests in constant time.
// Malformed or empty candidates simply fail to match; Verify never
// errors and never logs the candidate.
func (g *AccessGate) Verify(candidate string) bool {
	digest := sha256.Sum256([]byte(candidate))
	return subtle.ConstantTimeCompare(digest[:], g.expected) == 1
}

// SetAuthenticated records an issued-at marker when flag is true and
// clears it when flag is false.
func (g *AccessGate) SetAuthenticated(flag bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if flag {
		now := time.Now()
		g.issuedAt = &now
	} else {
		g.issuedAt = nil
	}
}

// IsAuthenticated reports whether a session marker is present.
func (g *AccessGate) IsAuthenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.issuedAt != nil
}

func (g *AccessGate) Logout() {
	g.SetAuthenticated(false)
}
