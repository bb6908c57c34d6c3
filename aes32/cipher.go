package aes32

import (
	"crypto/cipher"
	"strconv"
)

// KeySizeError is returned by NewCipher for keys that are not 16, 24 or 32 bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes32: invalid key size " + strconv.Itoa(int(k))
}

// aesCipher is an encryption-only cipher.Block over an expanded schedule.
type aesCipher struct {
	e  *Engine
	rk []RoundKey
}

// NewCipher expands key and returns a cipher.Block that can only encrypt.
// The key argument must be 16, 24 or 32 bytes long to select AES-128, AES-192 or AES-256.
func (e *Engine) NewCipher(key []byte) (cipher.Block, error) {
	c := &aesCipher{e: e}
	switch len(key) {
	case 16:
		ks := e.KeySchedule128(Key128FromBytes([16]byte(key)))
		c.rk = ks[:]
	case 24:
		ks := e.KeySchedule192(Key192FromBytes([24]byte(key)))
		c.rk = ks[:]
	case 32:
		ks := e.KeySchedule256(Key256FromBytes([32]byte(key)))
		c.rk = ks[:]
	default:
		return nil, KeySizeError(len(key))
	}
	return c, nil
}

// NewCipher is Engine.NewCipher on the Default engine.
func NewCipher(key []byte) (cipher.Block, error) {
	return Default().NewCipher(key)
}

func (c *aesCipher) BlockSize() int { return BlockSize }

// Rounds reports the number of rounds for the key size: 10, 12 or 14.
// It is not part of cipher.Block; callers reach it with an interface{ Rounds() int } assertion.
func (c *aesCipher) Rounds() int { return len(c.rk) - 1 }

func (c *aesCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes32: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes32: output not full block")
	}
	// src is fully read before dst is written, so overlapping buffers are fine
	out := c.e.encrypt(BlockFromBytes([16]byte(src)), c.rk).Bytes()
	copy(dst, out[:])
}

func (c *aesCipher) Decrypt(dst, src []byte) {
	panic("aes32: decryption not implemented")
}
