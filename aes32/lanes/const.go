package lanes

import (
	"math/bits"
)

// https://csrc.nist.gov/publications/fips/fips197/fips-197.pdf

// poly is the AES field polynomial x⁸ + x⁴ + x³ + x + 1.
const poly = 1<<8 | 1<<4 | 1<<3 | 1<<1 | 1<<0

// mul multiplies b and c carry-less, then reduces the product modulo poly.
// Inputs must be below 0x100.
func mul(b, c uint32) uint32 {
	var p uint32
	for ; c != 0; c >>= 1 {
		p ^= b & -(c & 1)
		b <<= 1
	}
	for bit := 14; bit >= 8; bit-- {
		if p&(1<<bit) != 0 {
			p ^= poly << (bit - 8)
		}
	}
	return p
}

// sbox walks the powers of the generator 3: 3ⁱ and 3²⁵⁵⁻ⁱ are inverses.
var sbox = func() (s [256]byte) {
	var exp [255]uint8
	x := uint8(1)
	for i := range exp {
		exp[i] = x
		x ^= xtime(x)
	}

	s[0] = affine(0)
	for i, e := range exp {
		s[e] = affine(exp[(255-i)%255])
	}
	return s
}()

func affine(q uint8) uint8 {
	return q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^ bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4) ^ 0x63
}

// mixLut row b holds the MixColumns column of S(i) rotated left by 8·b bits.
var mixLut = func() (lut [4][256]uint32) {
	for i := range 256 {
		s := uint32(sbox[i])
		w := mul(s, 2) | s<<8 | s<<16 | mul(s, 3)<<24
		for b := range 4 {
			lut[b][i] = bits.RotateLeft32(w, 8*b)
		}
	}
	return lut
}()
