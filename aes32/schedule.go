package aes32

import "math/bits"

// Round constants, powers of x mod poly in GF(2).
var rcon = [10]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// subWord XORs SubWord(in) into acc.
func (e *Engine) subWord(acc, in uint32) uint32 {
	acc = e.lane.EncRoundLast(acc, in, 0)
	acc = e.lane.EncRoundLast(acc, in, 1)
	acc = e.lane.EncRoundLast(acc, in, 2)
	acc = e.lane.EncRoundLast(acc, in, 3)
	return acc
}

// expand runs the shared key expansion over the live words t (Nk of them) into the flat schedule rk.
// Every step emits the live words and then advances them once. The last 4 words are emitted after the final step.
func (e *Engine) expand(rk []uint32, t []uint32) {
	nk := len(t)
	steps := (len(rk) - 4) / nk

	for i := range steps {
		copy(rk[i*nk:], t)

		// RotWord is a byte rotation right on little-endian words
		t[0] = e.subWord(t[0]^uint32(rcon[i]), bits.RotateLeft32(t[nk-1], -8))
		for j := 1; j < nk; j++ {
			if nk == 8 && j == 4 {
				// AES-256 extra SubWord, without rotation or round constant
				t[4] = e.subWord(t[4], t[3])
				continue
			}
			t[j] ^= t[j-1]
		}
	}

	copy(rk[steps*nk:], t[:4])
}

// KeySchedule128 expands an AES-128 key into 11 round keys, using 10 non-linear steps.
func (e *Engine) KeySchedule128(key Key128) (ks Schedule128) {
	var rk [len(ks) * 4]uint32
	e.expand(rk[:], key[:])
	roundKeysFromWords(ks[:], rk[:])
	return ks
}

// KeySchedule192 expands an AES-192 key into 13 round keys, using 8 non-linear steps.
// Round key boundaries fall every 4 words, so they do not line up with the 6 word steps.
func (e *Engine) KeySchedule192(key Key192) (ks Schedule192) {
	var rk [len(ks) * 4]uint32
	e.expand(rk[:], key[:])
	roundKeysFromWords(ks[:], rk[:])
	return ks
}

// KeySchedule256 expands an AES-256 key into 15 round keys, using 7 non-linear steps.
func (e *Engine) KeySchedule256(key Key256) (ks Schedule256) {
	var rk [len(ks) * 4]uint32
	e.expand(rk[:], key[:])
	roundKeysFromWords(ks[:], rk[:])
	return ks
}
