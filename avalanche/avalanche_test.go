package avalanche

import (
	"testing"

	"git.gammaspectra.live/P2Pool/zk/aes32"
	"github.com/stretchr/testify/require"
)

func TestAES(t *testing.T) {
	ks := aes32.KeySchedule128(aes32.Key128FromBytes([16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}))

	result, err := Measure(func(b aes32.Block) aes32.Block {
		return aes32.Encrypt128(b, &ks)
	}, Config{Samples: 256, Seed: 1})
	require.NoError(t, err)
	require.Equal(t, uint64(256), result.Samples)
	require.NoError(t, result.Check(0.01), "%+v", result)
	require.InDelta(t, 0.5, result.Mean, 0.01)
}

func TestDeterministic(t *testing.T) {
	ks := aes32.KeySchedule256(aes32.Key256{})
	fn := func(b aes32.Block) aes32.Block { return aes32.Encrypt256(b, &ks) }

	a, err := Measure(fn, Config{Samples: 32, Seed: 7, Routines: 1})
	require.NoError(t, err)
	b, err := Measure(fn, Config{Samples: 32, Seed: 7, Routines: 4})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// Whitening alone moves exactly one output bit per input bit.
func TestWhiteningOnly(t *testing.T) {
	key := aes32.Block{0xdeadbeef, 0x01234567, 0x89abcdef, 0xcafebabe}
	result, err := Measure(func(b aes32.Block) aes32.Block {
		return aes32.Block{b[0] ^ key[0], b[1] ^ key[1], b[2] ^ key[2], b[3] ^ key[3]}
	}, Config{Samples: 16})
	require.NoError(t, err)
	require.Equal(t, 1.0/128, result.Mean)
	require.Error(t, result.Check(0.05))
}

func TestNoSamples(t *testing.T) {
	_, err := Measure(func(b aes32.Block) aes32.Block { return b }, Config{})
	require.ErrorIs(t, err, ErrNoSamples)
}
