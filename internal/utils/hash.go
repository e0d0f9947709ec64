package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request body.
const HashHeader = "HashSHA256"

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers keyed with
// hashKey. The server calls it once at startup with the integrity key.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 digest over data using a hasher pulled from
// the global pool.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashHex computes the hex-encoded HMAC-SHA256 of data with hashKey without
// touching the global pool. The client uses it to sign request bodies.
func HashHex(data []byte, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// SHA256Hex returns the plain hex SHA-256 digest of data, used as the
// content checksum of blobs.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
