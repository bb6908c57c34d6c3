package lanes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// Check that sbox is a permutation whose inverse matches the GF(2⁸) inverse route.
func TestSbox(t *testing.T) {
	var seen [256]bool
	for i := range 256 {
		s := sbox[i]
		require.False(t, seen[s], "sbox[%#x] = %#x repeated", i, s)
		seen[s] = true
		require.Equal(t, s, subByte(uint8(i)), "subByte(%#x)", i)
	}
}

func TestInverse(t *testing.T) {
	require.Equal(t, uint8(0), inverse(0))
	for i := 1; i < 256; i++ {
		require.Equal(t, uint8(1), gmul(uint8(i), inverse(uint8(i))), "%#x * inverse(%#x)", i, i)
	}
}

// FIPS-197 section 4.2 products and Figure 7 entries.
func TestMul(t *testing.T) {
	require.Equal(t, uint32(0xc1), mul(0x57, 0x83))
	require.Equal(t, uint32(0xfe), mul(0x57, 0x13))
	require.Equal(t, uint32(0x01), mul(0x53, 0xca))

	for in, out := range map[uint8]uint8{0x00: 0x63, 0x01: 0x7c, 0x02: 0x77, 0x53: 0xed, 0x9a: 0xb8, 0xc9: 0xdd, 0xff: 0x16} {
		require.Equal(t, out, sbox[in], "sbox[%#x]", in)
	}
}

// Test gmul against the table generation multiply.
func TestGmul(t *testing.T) {
	for i := range uint32(256) {
		for j := range uint32(256) {
			if x := gmul(uint8(i), uint8(j)); uint32(x) != mul(i, j) {
				t.Fatalf("gmul(%#x, %#x) = %#x, want %#x", i, j, x, mul(i, j))
			}
		}
	}
}

func TestMixLut(t *testing.T) {
	for i := range 256 {
		s := uint32(sbox[i])
		w := mul(s, 2) | s<<8 | s<<16 | mul(s, 3)<<24
		for j := range 4 {
			require.Equal(t, w, mixLut[j][i], "mixLut[%d][%#x]", j, i)
			w = w<<8 | w>>24
		}
	}
}

// Both implementations must agree bit for bit on every byte, selector and byte position.
func TestImplementationsAgree(t *testing.T) {
	const acc = 0xa5c3_0f96
	tbl, ct := Table{}, ConstantTime{}
	for b := range uint8(4) {
		for x := range uint32(256) {
			in := x<<(8*b) | 0x5a5a_5a5a&^(uint32(0xff)<<(8*b))
			require.Equal(t, tbl.EncRound(acc, in, b), ct.EncRound(acc, in, b), "EncRound(%#08x, %d)", in, b)
			require.Equal(t, tbl.EncRoundLast(acc, in, b), ct.EncRoundLast(acc, in, b), "EncRoundLast(%#08x, %d)", in, b)
		}
	}
}

func TestSelectorMasked(t *testing.T) {
	for _, l := range []Lanes{Table{}, ConstantTime{}} {
		require.Equal(t, l.EncRound(0, 0x01020304, 1), l.EncRound(0, 0x01020304, 5), l.Name())
		require.Equal(t, l.EncRoundLast(0, 0x01020304, 3), l.EncRoundLast(0, 0x01020304, 0xff), l.Name())
	}
}

type brokenLanes struct {
	Table
}

func (brokenLanes) EncRound(acc, in uint32, b uint8) uint32 {
	return Table{}.EncRoundLast(acc, in, b)
}

func TestVerify(t *testing.T) {
	for _, name := range []string{NameTable, NameConstantTime} {
		t.Run(name, func(t *testing.T) {
			l, err := Lookup(name)
			require.NoError(t, err)
			require.Equal(t, name, l.Name())
			require.NoError(t, Verify(l))
		})
	}

	err := Verify(brokenLanes{})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMismatch), err.Error())

	require.ErrorIs(t, Verify(nil), ErrMismatch)
}

func TestLookup(t *testing.T) {
	l, err := Lookup("")
	require.NoError(t, err)
	require.Equal(t, NameConstantTime, l.Name())

	_, err = Lookup("zkne")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestDefault(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, NameConstantTime, a.Name())
}

func BenchmarkEncRound(b *testing.B) {
	for _, l := range []Lanes{Table{}, ConstantTime{}} {
		b.Run(l.Name(), func(b *testing.B) {
			var acc uint32
			var in uint32 = 0x01234567
			for b.Loop() {
				acc = l.EncRound(acc, in, uint8(in))
				in += acc
			}
		})
	}
}
