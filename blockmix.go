package scrypt

// blockMix implements scrypt's BlockMix primitive (RFC 7914 §4). b is a
// 128*r-byte working block, viewed as 2r consecutive 64-byte sub-blocks;
// it is mixed in place. y is scratch space of the same length, owned by
// the caller so repeated calls (as ROMix makes N of them) don't allocate.
//
// BlockMix chains Salsa20/8 across the sub-blocks with XOR feedback, then
// emits the result in even-then-odd interleaved order rather than the
// natural chaining order — that interleave is not optional, it is part
// of the algorithm's definition.
func blockMix(b, y []byte, r int) {
	if len(b)%128 != 0 || len(b) == 0 {
		panic("scrypt: blockMix given a block whose length is not a positive multiple of 128")
	}

	var x [64]byte
	copy(x[:], b[(2*r-1)*64:])

	for i := 0; i < 2*r; i++ {
		blockXOR(x[:], b[i*64:(i+1)*64])
		salsa208(&x)
		copy(y[i*64:(i+1)*64], x[:])
	}

	// Y[0], Y[2], ..., Y[2r-2] go first, then Y[1], Y[3], ..., Y[2r-1].
	for i := 0; i < r; i++ {
		copy(b[i*64:(i+1)*64], y[(2*i)*64:(2*i+1)*64])
	}
	for i := 0; i < r; i++ {
		copy(b[(i+r)*64:(i+r+1)*64], y[(2*i+1)*64:(2*i+2)*64])
	}
}

// blockXOR XORs len(src) bytes of src into dst, in place.
func blockXOR(dst, src []byte) {
	for i, v := range src {
		dst[i] ^= v
	}
}
