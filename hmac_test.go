package scrypt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// RFC 4231 §4.2 and §4.3, HMAC-SHA256 test cases 1 and 2.
func TestHMACSHA256_RFC4231(t *testing.T) {
	cases := []struct {
		name string
		key  []byte
		data []byte
		want []byte
	}{
		{
			name: "case 1",
			key:  mustHex(t, "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b"),
			data: []byte("Hi There"),
			want: mustHex(t, "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7"),
		},
		{
			name: "case 2",
			key:  []byte("Jefe"),
			data: []byte("what do ya want for nothing?"),
			want: mustHex(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := hmacSum256(c.key, c.data)
			require.Equal(t, c.want, got[:])
		})
	}
}

func TestHMACSHA256_LongKeyIsHashedDown(t *testing.T) {
	longKey := make([]byte, 200)
	for i := range longKey {
		longKey[i] = byte(i)
	}
	// Must not panic and must be deterministic.
	a := hmacSum256(longKey, []byte("message"))
	b := hmacSum256(longKey, []byte("message"))
	require.Equal(t, a, b)
}

func TestHMACSHA256_ReusedContextMatchesOneShot(t *testing.T) {
	key := []byte("a reused key")
	ctx := newHMACSHA256(key)

	var viaContext [hmacDigestSize]byte
	ctx.sum([]byte("msg-1"), &viaContext)

	viaOneShot := hmacSum256(key, []byte("msg-1"))
	require.Equal(t, viaOneShot[:], viaContext[:])
}
