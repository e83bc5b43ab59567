package scrypt

import "crypto/sha256"

const (
	hmacBlockSize  = 64 // SHA-256's block size
	hmacDigestSize = 32 // SHA-256's digest size
)

// hmacContext implements RFC 2104 HMAC using SHA-256 as the underlying
// hash, built directly over crypto/sha256 rather than crypto/hmac: per
// this package's scope, HMAC is a core primitive scrypt's PBKDF2 consumes
// as a black box, not something delegated to an external collaborator.
//
// It holds the derived ipad/opad key schedule so pbkdf2.go can reuse one
// HMAC key across its many calls (one per PBKDF2 inner iteration) without
// recomputing the key padding every time.
type hmacContext struct {
	ipad, opad [hmacBlockSize]byte
}

// newHMACSHA256 derives the ipad/opad key schedule for key per RFC 2104:
// keys longer than the block size are first hashed down to digest size,
// then zero-padded out to the block size.
func newHMACSHA256(key []byte) *hmacContext {
	if len(key) > hmacBlockSize {
		sum := sha256.Sum256(key)
		key = sum[:]
	}
	var padded [hmacBlockSize]byte
	copy(padded[:], key)

	c := &hmacContext{}
	for i := 0; i < hmacBlockSize; i++ {
		c.ipad[i] = padded[i] ^ 0x36
		c.opad[i] = padded[i] ^ 0x5c
	}
	return c
}

// sum computes HMAC-SHA256(key, message) for the key this context was
// constructed with: SHA256(opad || SHA256(ipad || message)). The inner
// and outer SHA-256 states are each fresh for this call.
func (c *hmacContext) sum(message []byte, out *[hmacDigestSize]byte) {
	inner := sha256.New()
	inner.Write(c.ipad[:])
	inner.Write(message)
	innerSum := inner.Sum(nil)

	outer := sha256.New()
	outer.Write(c.opad[:])
	outer.Write(innerSum)
	copy(out[:], outer.Sum(nil))
}

// hmacSum256 is a convenience one-shot HMAC-SHA256 used where only a
// single message needs hashing under a key (e.g. tests against RFC 4231
// vectors). Callers that hash many messages under the same key (PBKDF2's
// inner loop) should use newHMACSHA256 directly to avoid re-deriving
// ipad/opad on every call.
func hmacSum256(key, message []byte) [hmacDigestSize]byte {
	ctx := newHMACSHA256(key)
	var out [hmacDigestSize]byte
	ctx.sum(message, &out)
	return out
}
