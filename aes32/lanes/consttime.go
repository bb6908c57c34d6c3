package lanes

import "math/bits"

// ConstantTime implements Lanes without secret-dependent branches or memory accesses.
// The S-box is computed as the affine map of the GF(2⁸) inverse.
type ConstantTime struct{}

func (ConstantTime) Name() string { return NameConstantTime }

func (ConstantTime) EncRound(acc, in uint32, b uint8) uint32 {
	b &= 3
	s := subByte(uint8(in >> (8 * b)))
	s2 := xtime(s)
	w := uint32(s2) | uint32(s)<<8 | uint32(s)<<16 | uint32(s2^s)<<24
	return acc ^ bits.RotateLeft32(w, 8*int(b))
}

func (ConstantTime) EncRoundLast(acc, in uint32, b uint8) uint32 {
	b &= 3
	return acc ^ uint32(subByte(uint8(in>>(8*b))))<<(8*b)
}

// xtime multiplies by x modulo poly.
func xtime(a uint8) uint8 {
	return a<<1 ^ (0x1b & -(a >> 7))
}

// gmul multiplies a and b in GF(2⁸), always running all 8 steps.
func gmul(a, b uint8) uint8 {
	var p uint8
	for range 8 {
		p ^= a & -(b & 1)
		a = xtime(a)
		b >>= 1
	}
	return p
}

// inverse computes a²⁵⁴, which is a⁻¹ for a != 0 and 0 for a == 0.
func inverse(a uint8) uint8 {
	a2 := gmul(a, a)
	a3 := gmul(a2, a)
	a6 := gmul(a3, a3)
	a12 := gmul(a6, a6)
	a15 := gmul(a12, a3)
	a30 := gmul(a15, a15)
	a60 := gmul(a30, a30)
	a120 := gmul(a60, a60)
	a240 := gmul(a120, a120)
	return gmul(gmul(a240, a12), a2)
}

func subByte(a uint8) uint8 {
	return affine(inverse(a))
}
