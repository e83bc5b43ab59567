package scrypt

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustHex decodes a hex string after stripping whitespace, so RFC test
// vectors can be pasted in with their published "xx xx xx" grouping.
func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\t', '\r':
			return -1
		default:
			return r
		}
	}, s)
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
