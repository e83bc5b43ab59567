package scrypt

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// recordTag is the version tag at the start of every record this package
// emits and accepts. A distinct tag lets a future parameter encoding (or
// a future default hash) coexist with records already on disk without
// ambiguity.
const recordTag = "s0"

const (
	defaultSaltLen = 16
	defaultKeyLen  = 32

	// minDecodedSaltLen is the floor decodeRecord enforces on a record's
	// decoded salt field. A salt below this size defeats the point of
	// salting (it's cheap for an attacker to precompute against), so a
	// record carrying one is rejected as malformed rather than silently
	// accepted and derived against.
	minDecodedSaltLen = 8
)

// HashPassword hashes passphrase using DefaultCostFactor, DefaultR and
// DefaultP, a fresh 16-byte salt drawn from crypto/rand, and a 32-byte
// derived key, returning the encoded record
//
//	$s0$PPPPPPPP$base64(salt)$base64(key)
//
// where PPPPPPPP is eight lowercase hex digits packing
// (costFactor<<16)|(r<<8)|p as a big-endian 32-bit integer.
func HashPassword(passphrase []byte) (string, error) {
	return HashPasswordWithParams(passphrase, DefaultCostFactor, DefaultR, DefaultP)
}

// HashPasswordWithParams is HashPassword with explicit cost parameters.
func HashPasswordWithParams(passphrase []byte, costFactor uint, r, p int) (string, error) {
	if costFactor > 0xff || r > 0xff || p > 0xff {
		return "", &ParameterError{Field: "costFactor,r,p", Reason: "must each be at most 255"}
	}

	salt := make([]byte, defaultSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", &RngError{Err: err}
	}

	key, err := Derive(passphrase, salt, costFactor, r, p, defaultKeyLen)
	if err != nil {
		return "", err
	}

	return encodeRecord(costFactor, r, p, salt, key), nil
}

// VerifyPassword reports whether passphrase matches the password-hash
// record encoded, recomputing scrypt with the record's own parameters and
// salt and comparing the recomputed key to the decoded key in constant
// time.
//
// A malformed record and a correctly-parsed-but-wrong passphrase are both
// reported as false: distinguishing them through this return value would
// give an attacker a free oracle for probing the record store's format.
// Callers that need to tell the two apart for diagnostics should call
// VerifyPasswordError instead.
func VerifyPassword(passphrase []byte, encoded string) bool {
	ok, err := VerifyPasswordError(passphrase, encoded)
	return err == nil && ok
}

// VerifyPasswordError is VerifyPassword, but also returns the reason a
// record failed to parse (as a *FormatError) so the CLI and other
// diagnostic-minded callers can log it separately from an honest
// mismatch. Its ok return value, not its error, is still the only signal
// that should ever be treated as "did the password match" — a non-nil
// error always implies ok == false, and its FormatError case carries no
// information about whether the candidate passphrase happens to be
// correct.
func VerifyPasswordError(passphrase []byte, encoded string) (ok bool, err error) {
	costFactor, r, p, salt, key, err := decodeRecord(encoded)
	if err != nil {
		return false, err
	}

	candidate, err := Derive(passphrase, salt, costFactor, r, p, len(key))
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(candidate, key) == 1, nil
}

// encodeRecord packs (costFactor, r, p, salt, key) into this package's
// canonical record string.
func encodeRecord(costFactor uint, r, p int, salt, key []byte) string {
	packed := uint32(costFactor)<<16 | uint32(r)<<8 | uint32(p)

	var packedBytes [4]byte
	binary.BigEndian.PutUint32(packedBytes[:], packed)

	return fmt.Sprintf("$%s$%s$%s$%s",
		recordTag,
		hex.EncodeToString(packedBytes[:]),
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	)
}

// decodeRecord parses a record produced by encodeRecord (or any record in
// the same wire format). All failures are reported as *FormatError.
func decodeRecord(encoded string) (costFactor uint, r, p int, salt, key []byte, err error) {
	fields := strings.Split(encoded, "$")
	// strings.Split("$s0$...", "$") yields a leading empty field before
	// the first '$', so a well-formed record has 5 fields: "", tag,
	// hex params, b64 salt, b64 key.
	if len(fields) != 5 || fields[0] != "" {
		return 0, 0, 0, nil, nil, &FormatError{Reason: "expected $s0$params$salt$key"}
	}
	if fields[1] != recordTag {
		return 0, 0, 0, nil, nil, &FormatError{Reason: fmt.Sprintf("unrecognized version tag %q", fields[1])}
	}

	packedBytes, err := hex.DecodeString(fields[2])
	if err != nil || len(packedBytes) != 4 {
		return 0, 0, 0, nil, nil, &FormatError{Reason: "params field must be 8 lowercase hex digits"}
	}
	packed := binary.BigEndian.Uint32(packedBytes)
	costFactor = uint(packed >> 16)
	r = int((packed >> 8) & 0xff)
	p = int(packed & 0xff)

	salt, err = base64.StdEncoding.DecodeString(fields[3])
	if err != nil {
		return 0, 0, 0, nil, nil, &FormatError{Reason: "salt field is not valid base64"}
	}
	if len(salt) < minDecodedSaltLen {
		return 0, 0, 0, nil, nil, &FormatError{Reason: fmt.Sprintf("salt field decodes to %d bytes, shorter than the %d-byte floor", len(salt), minDecodedSaltLen)}
	}
	key, err = base64.StdEncoding.DecodeString(fields[4])
	if err != nil {
		return 0, 0, 0, nil, nil, &FormatError{Reason: "key field is not valid base64"}
	}
	if len(key) == 0 {
		return 0, 0, 0, nil, nil, &FormatError{Reason: "key field decodes to zero bytes"}
	}

	return costFactor, r, p, salt, key, nil
}
