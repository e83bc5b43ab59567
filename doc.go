// Copyright 2026 The scrypt authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scrypt implements the scrypt key derivation function as defined
// in Colin Percival's paper "Stronger Key Derivation via Sequential
// Memory-Hard Functions" [1], plus an opinionated password-hashing record
// format built on top of it.
//
// scrypt is a memory-hard KDF: unlike a plain iterated hash, it forces an
// attacker to hold a large, randomly-addressed working set in memory for
// the full duration of the computation, which makes it resistant to
// attackers who can throw cheap, highly-parallel custom hardware (ASICs,
// FPGAs, GPUs) at the problem but cannot cheaply scale memory bandwidth to
// match.
//
// The derivation is controlled by three cost parameters:
//
//	N (expressed everywhere in this package as costFactor = log2(N))
//	   the CPU/memory cost; a power of two, must satisfy
//	   1 <= costFactor < 16*r.
//	r  the block-size factor, which scales the memory footprint per
//	   ROMix pass; must satisfy r >= 1.
//	p  the parallelization factor: the number of independent ROMix
//	   passes run, partitioning CPU time but not memory (each pass
//	   still needs its own N*128*r-byte working array).
//
// For interactive logins, N=2^14 (costFactor 14), r=8, p=1 is a reasonable
// starting point as of this writing; DeriveDefault and HashPassword use
// exactly these values. Costs should be re-tuned upward as attacker
// hardware and acceptable latency budgets change over time — this package
// performs no automatic tuning.
//
// Internally, this package is built from seven parts, each implemented in
// its own file and independently unit-tested (the primitives and the
// driver against their own known-answer vectors):
//
//	salsa208.go  the Salsa20/8 core permutation over a 64-byte block
//	blockmix.go  BlockMix, which chains Salsa20/8 over 2r sub-blocks
//	romix.go     ROMix, the memory-hard fill-then-mix stage
//	hmac.go      RFC 2104 HMAC-SHA256
//	pbkdf2.go    RFC 2898 PBKDF2-HMAC-SHA256
//	scrypt.go    the driver tying PBKDF2 and ROMix together
//	password.go  the "$s0$..." password-hash record codec
//
// Everything in this package is a pure function of its inputs, with two
// exceptions: HashPassword draws a fresh random salt from crypto/rand, and
// VerifyPassword parses a caller-supplied record string.
//
// [1] http://www.tarsnap.com/scrypt/scrypt.pdf
package scrypt
