package scrypt

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// DefaultCostFactor, DefaultR and DefaultP are the RFC 7914 §2-recommended
// parameters for interactive logins as of the time of writing: N=2^14,
// r=8, p=1. DeriveDefault and HashPassword use exactly these.
const (
	DefaultCostFactor uint = 14
	DefaultR          int  = 8
	DefaultP          int  = 1
)

// maxInt is the largest value an int can safely hold without overflow
// ambiguity on 32-bit platforms, mirrored from the historical reference
// implementation's overflow guard.
const maxInt = math.MaxInt32

// Derive derives a dkLen-byte key from passphrase and salt using scrypt
// with cost parameters (costFactor, r, p), where costFactor is log2(N) —
// every public entry point in this package takes log2(N) rather than N
// itself, for consistency with the password-hash record encoding (§4.7).
//
// It is equivalent to DeriveContext(context.Background(), ...).
func Derive(passphrase, salt []byte, costFactor uint, r, p int, dkLen int) ([]byte, error) {
	return DeriveContext(context.Background(), passphrase, salt, costFactor, r, p, dkLen)
}

// DeriveDefault derives a dkLen-byte key using DefaultCostFactor,
// DefaultR and DefaultP.
func DeriveDefault(passphrase, salt []byte, dkLen int) ([]byte, error) {
	return Derive(passphrase, salt, DefaultCostFactor, DefaultR, DefaultP, dkLen)
}

// DeriveContext is Derive with a context: ctx is checked at ROMix
// iteration boundaries (never inside Salsa20/BlockMix, per §5), so a
// timeout or cancellation on an oversized request aborts promptly rather
// than running to completion. On cancellation the partially-filled V
// arrays are zeroed before DeriveContext returns the context's error.
func DeriveContext(ctx context.Context, passphrase, salt []byte, costFactor uint, r, p int, dkLen int) ([]byte, error) {
	if r < 1 {
		return nil, &ParameterError{Field: "r", Reason: "must be >= 1"}
	}
	if p < 1 {
		return nil, &ParameterError{Field: "p", Reason: "must be >= 1"}
	}
	if costFactor < 1 {
		return nil, &ParameterError{Field: "costFactor", Reason: "must be >= 1 (N must be > 1)"}
	}
	if costFactor >= uint(16*r) {
		return nil, &ParameterError{Field: "costFactor", Reason: "must satisfy costFactor < 16*r"}
	}
	if dkLen < 1 {
		return nil, &ParameterError{Field: "dkLen", Reason: "must be >= 1"}
	}
	if uint64(dkLen) > maxPBKDF2KeyLen {
		return nil, &ParameterError{Field: "dkLen", Reason: "exceeds the PBKDF2 ceiling of (2^32-1)*32 bytes"}
	}
	if uint64(r)*uint64(p) >= 1<<30 {
		return nil, &ParameterError{Field: "r*p", Reason: "must be < 2^30"}
	}
	if r > maxInt/128/p || r > maxInt/256 || costFactor >= 63 {
		return nil, &ParameterError{Field: "r,p,costFactor", Reason: "parameters are too large"}
	}

	blockLen := 128 * r
	b, err := pbkdf2SHA256(passphrase, salt, 1, p*blockLen)
	if err != nil {
		return nil, err
	}

	if err := mixAllBlocks(ctx, b, costFactor, r, p); err != nil {
		return nil, err
	}

	return pbkdf2SHA256(passphrase, b, 1, dkLen)
}

// mixAllBlocks replaces each of the p disjoint 128*r-byte slices of b
// with romix(slice, costFactor, r). For p == 1 it runs on the caller's
// goroutine directly; for p > 1 each slice is mixed by its own goroutine
// via errgroup, so a failure in one worker (an InternalError for a V
// array too large to address, or ctx being cancelled) cancels
// the rest instead of letting them run to completion on a doomed
// derivation. Each worker only ever touches its own disjoint slice, so no
// synchronization beyond errgroup's own is required, and the resulting
// key is identical regardless of which worker finishes first — the final
// PBKDF2 pass reads the fully assembled buffer only after Wait returns.
func mixAllBlocks(ctx context.Context, b []byte, costFactor uint, r, p int) error {
	blockLen := 128 * r

	if p == 1 {
		return romix(ctx, b[:blockLen], costFactor, r)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < p; i++ {
		slice := b[i*blockLen : (i+1)*blockLen]
		g.Go(func() error {
			return romix(gctx, slice, costFactor, r)
		})
	}
	return g.Wait()
}
