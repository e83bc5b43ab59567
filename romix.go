package scrypt

import (
	"context"
	"encoding/binary"
	"math"
)

// vArraySizeBytes returns the size, in bytes, of the V array a ROMix call
// with the given costFactor and r would need to allocate. Callers that
// want to refuse an oversized request before paying for the allocation
// (rather than discovering it via a panic/OOM) can check this first.
func vArraySizeBytes(costFactor uint, r int) uint64 {
	return (uint64(1) << costFactor) * uint64(128*r)
}

// romix implements scrypt's ROMix primitive (RFC 7914 §5): the
// memory-hard stage. b is a 128*r-byte block, mixed in place. costFactor
// is log2(N).
//
// ROMix first fills an array V of N working blocks by repeated BlockMix,
// then performs N more BlockMix passes, each time XORing in a
// data-dependent entry of V chosen via integerify(X) mod N. Because the
// second loop's reads are data-dependent on the first loop's output, the
// entire V array must be resident — that data dependency is what makes
// the function memory-hard rather than just slow.
//
// ctx is checked before the N*128*r-byte V array is allocated, and again
// at every iteration of both loops: an already-cancelled context never
// pays for the allocation, and a context cancelled mid-run is noticed at
// the very next iteration boundary rather than only after the loop runs
// to completion.
//
// A V array larger than the platform can address is reported as an
// *InternalError before any allocation is attempted.
func romix(ctx context.Context, b []byte, costFactor uint, r int) error {
	if len(b) == 0 || len(b)%128 != 0 {
		return &ParameterError{Field: "block length", Reason: "must be a positive multiple of 128"}
	}
	if got := len(b) / 128; got != r {
		return &ParameterError{Field: "r", Reason: "does not match block length / 128"}
	}
	if costFactor < 1 || costFactor >= uint(16*r) {
		return &ParameterError{Field: "costFactor", Reason: "must satisfy 1 <= costFactor < 16*r"}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	n := uint64(1) << costFactor
	blockLen := 128 * r

	if n > uint64(math.MaxInt)/uint64(blockLen) {
		return &InternalError{Reason: "V array of N*128*r bytes exceeds the addressable memory"}
	}

	v := make([]byte, n*uint64(blockLen))
	defer zero(v)

	x := make([]byte, blockLen)
	y := make([]byte, blockLen)
	copy(x, b)

	for i := uint64(0); i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		copy(v[i*uint64(blockLen):(i+1)*uint64(blockLen)], x)
		blockMix(x, y, r)
	}

	for i := uint64(0); i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		j := integerify(x, r) & (n - 1)
		blockXOR(x, v[j*uint64(blockLen):(j+1)*uint64(blockLen)])
		blockMix(x, y, r)
	}

	copy(b, x)
	return nil
}

// integerify maps a 128*r-byte working block to an unsigned 64-bit
// integer, per RFC 7914 §5: it reads the first 8 bytes of the block's
// final 64-byte sub-block as a little-endian uint64. The caller is
// responsible for reducing the result modulo N; integerify itself knows
// nothing about N.
//
// Factored out from ROMix (where the reference source inlines it as a
// stub) so it can be tested independently of the surrounding memory-hard
// loop.
func integerify(x []byte, r int) uint64 {
	last := x[(2*r-1)*64:]
	return binary.LittleEndian.Uint64(last[:8])
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
