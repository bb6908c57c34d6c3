package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesFromString(t *testing.T) {
	key, err := BytesFromString[[16]byte]("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	require.Equal(t, [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, key)

	_, err = BytesFromString[[24]byte]("000102030405060708090a0b0c0d0e0f")
	require.ErrorContains(t, err, "wrong size")

	_, err = BytesFromString[[32]byte]("zz")
	require.Error(t, err)

	require.Panics(t, func() { MustBytesFromString[[16]byte]("00") })
}

func TestBytesJSON(t *testing.T) {
	b := Bytes{0x69, 0xc4, 0xe0, 0xd8, 0x6a, 0x7b, 0x04, 0x30}

	buf, err := b.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"69c4e0d86a7b0430"`, string(buf))

	var out Bytes
	require.NoError(t, out.UnmarshalJSON(buf))
	require.Equal(t, b, out)
	require.Equal(t, "69c4e0d86a7b0430", out.String())

	require.Error(t, out.UnmarshalJSON([]byte(`"abc"`)))
	require.Error(t, out.UnmarshalJSON([]byte(`1234`)))
}
