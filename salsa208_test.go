package scrypt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// RFC 7914 §7, "Test Vector for Salsa20/8".
func TestSalsa208_RFC7914(t *testing.T) {
	in := mustHex(t, `
		7e 87 9a 21 4f 3e c9 86 7c a9 40 e6 41 71 8f 26
		ba ee 55 5b 8c 61 c1 b5 0d f8 46 11 6d cd 3b 1d
		ee 24 f3 19 df 9b 3d 85 14 12 1e 4b 5a c5 aa 32
		76 02 1d 29 09 c7 48 29 ed eb c6 8d b8 b8 c2 5e`)
	want := mustHex(t, `
		a4 1f 85 9c 66 08 cc 99 3b 81 ca cb 02 0c ef 05
		04 4b 21 81 a2 fd 33 7d fd 7b 1c 63 96 68 2f 29
		b4 39 31 68 e3 c9 e6 bc fe 6b c5 b7 a0 6d 96 ba
		e4 24 cc 10 2c 91 74 5c 24 ad 67 3d c7 61 8f 81`)

	require.Len(t, in, 64)
	var b [64]byte
	copy(b[:], in)

	salsa208(&b)

	require.Equal(t, want, b[:])
}

func TestSalsa208_IsDeterministic(t *testing.T) {
	var a, b [64]byte
	for i := range a {
		a[i] = byte(i * 7)
		b[i] = byte(i * 7)
	}
	salsa208(&a)
	salsa208(&b)
	require.Equal(t, a, b)
}
