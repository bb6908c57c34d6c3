package aes32

import (
	"encoding/binary"

	"lukechampine.com/uint128"
)

// BlockSize The AES block size in bytes.
const BlockSize = 16

// Block 128-bit cipher state. Byte i of the state is held in word i/4 at little-endian position i%4.
type Block [4]uint32

// RoundKey one 128-bit element of an expanded key schedule, laid out like Block.
type RoundKey [4]uint32

// Key128, Key192 and Key256 hold a cipher key as Nk little-endian words.
type (
	Key128 [4]uint32
	Key192 [6]uint32
	Key256 [8]uint32
)

// Schedule128 stores the 11 round keys of AES-128.
type Schedule128 [11]RoundKey

// Schedule192 stores the 13 round keys of AES-192.
type Schedule192 [13]RoundKey

// Schedule256 stores the 15 round keys of AES-256.
type Schedule256 [15]RoundKey

func bytesToWords(dst []uint32, src []byte) {
	_ = src[len(dst)*4-1] // early bounds check
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(src[i*4:])
	}
}

func wordsToBytes(dst []byte, src []uint32) {
	_ = dst[len(src)*4-1] // early bounds check
	for i, w := range src {
		binary.LittleEndian.PutUint32(dst[i*4:], w)
	}
}

// BytesToWords groups 16 bytes into four little-endian words.
func BytesToWords(b [16]byte) (w [4]uint32) {
	bytesToWords(w[:], b[:])
	return w
}

// WordsToBytes is the inverse of BytesToWords.
func WordsToBytes(w [4]uint32) (b [16]byte) {
	wordsToBytes(b[:], w[:])
	return b
}

// BlockFromBytes loads a state from its 16 bytes.
func BlockFromBytes(b [16]byte) Block {
	return BytesToWords(b)
}

// Bytes stores the state back into 16 bytes.
func (b Block) Bytes() [16]byte {
	return WordsToBytes(b)
}

// Uint128 interprets the block bytes as a big-endian 128-bit integer.
func (b Block) Uint128() uint128.Uint128 {
	buf := b.Bytes()
	return uint128.FromBytesBE(buf[:])
}

// BlockFromUint128 is the inverse of Block.Uint128.
func BlockFromUint128(u uint128.Uint128) Block {
	var buf [16]byte
	u.PutBytesBE(buf[:])
	return BlockFromBytes(buf)
}

// Bytes returns the round key in state byte order.
func (k RoundKey) Bytes() [16]byte {
	return WordsToBytes(k)
}

// Uint128 interprets the round key bytes as a big-endian 128-bit integer.
func (k RoundKey) Uint128() uint128.Uint128 {
	buf := k.Bytes()
	return uint128.FromBytesBE(buf[:])
}

// Key128FromBytes splits a 16-byte key into little-endian words. Key192FromBytes and Key256FromBytes do the same for 24 and 32 bytes.
func Key128FromBytes(b [16]byte) (k Key128) {
	bytesToWords(k[:], b[:])
	return k
}

func Key192FromBytes(b [24]byte) (k Key192) {
	bytesToWords(k[:], b[:])
	return k
}

func Key256FromBytes(b [32]byte) (k Key256) {
	bytesToWords(k[:], b[:])
	return k
}

// roundKeysFromWords chunks a flat word schedule into round keys, four words each.
func roundKeysFromWords(dst []RoundKey, words []uint32) {
	if len(words) != len(dst)*4 {
		panic("aes32: schedule length mismatch")
	}
	for i := range dst {
		dst[i] = RoundKey{words[i*4], words[i*4+1], words[i*4+2], words[i*4+3]}
	}
}
