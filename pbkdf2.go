package scrypt

import "encoding/binary"

// maxPBKDF2KeyLen is (2^32 - 1) * hmacDigestSize, the RFC 2898 ceiling on
// dkLen for a PRF with a 32-byte output.
const maxPBKDF2KeyLen = (uint64(1)<<32 - 1) * hmacDigestSize

// pbkdf2SHA256 implements RFC 2898 PBKDF2 with HMAC-SHA256 as the PRF,
// hand-rolled rather than taken from golang.org/x/crypto/pbkdf2: per this
// package's scope, PBKDF2 is a core primitive scrypt consumes as a black
// box, not an external collaborator.
//
// l = ceil(dkLen / hmacDigestSize) blocks are produced; for each block i
// (1-indexed), U_1 = HMAC(password, salt || INT32_BE(i)), and
// U_j = HMAC(password, U_{j-1}) for j in [2, iterations], with
// T_i = U_1 XOR U_2 XOR ... XOR U_iterations. The final block is
// truncated to the remaining dkLen bytes.
func pbkdf2SHA256(password, salt []byte, iterations int, dkLen int) ([]byte, error) {
	if iterations < 1 {
		return nil, &ParameterError{Field: "iterations", Reason: "must be >= 1"}
	}
	if dkLen < 1 {
		return nil, &ParameterError{Field: "dkLen", Reason: "must be >= 1"}
	}
	if uint64(dkLen) > maxPBKDF2KeyLen {
		return nil, &ParameterError{Field: "dkLen", Reason: "exceeds the PBKDF2 ceiling of (2^32-1)*32 bytes"}
	}

	numBlocks := (dkLen + hmacDigestSize - 1) / hmacDigestSize
	tailLen := dkLen - (numBlocks-1)*hmacDigestSize

	prf := newHMACSHA256(password)

	dk := make([]byte, 0, numBlocks*hmacDigestSize)
	var block [4]byte
	var u, t [hmacDigestSize]byte

	for i := 1; i <= numBlocks; i++ {
		binary.BigEndian.PutUint32(block[:], uint32(i))

		msg := make([]byte, 0, len(salt)+4)
		msg = append(msg, salt...)
		msg = append(msg, block[:]...)
		prf.sum(msg, &u)
		t = u

		for j := 2; j <= iterations; j++ {
			prf.sum(u[:], &u)
			for k := range t {
				t[k] ^= u[k]
			}
		}

		if i == numBlocks {
			dk = append(dk, t[:tailLen]...)
		} else {
			dk = append(dk, t[:]...)
		}
	}

	return dk, nil
}
