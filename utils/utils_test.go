package utils

import (
	"bytes"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitWork(t *testing.T) {
	const workSize = 1000
	var seen [workSize]atomic.Uint32
	var inits atomic.Int32

	err := SplitWork(4, workSize, func(workIndex uint64, routineIndex int) error {
		if routineIndex >= 4 {
			return errors.New("routine index out of range")
		}
		seen[workIndex].Add(1)
		return nil
	}, func(routines, routineIndex int) error {
		if routines != 4 {
			return errors.New("unexpected routine count")
		}
		inits.Add(1)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int32(4), inits.Load())
	for i := range seen {
		require.Equal(t, uint32(1), seen[i].Load(), "work index %d", i)
	}
}

func TestSplitWorkError(t *testing.T) {
	errStop := errors.New("stop")
	err := SplitWork(0, 100, func(workIndex uint64, routineIndex int) error {
		if workIndex == 50 {
			return errStop
		}
		return nil
	}, nil)
	require.ErrorIs(t, err, errStop)
}

func TestRoutines(t *testing.T) {
	require.Equal(t, 3, Routines(8, 3))
	require.Equal(t, 1, Routines(8, 0))
	require.Equal(t, 2, Routines(2, 100))
}

func TestLogOutput(t *testing.T) {
	var buf bytes.Buffer
	prev, prevLevel := LogOutput, GlobalLogLevel
	defer func() { LogOutput, GlobalLogLevel = prev, prevLevel }()
	LogOutput = &buf

	GlobalLogLevel = LogLevelError | LogLevelInfo
	Logf("AES", "ciphertext %x", []byte{0x69, 0xc4})
	Debugf("AES", "hidden")
	require.Contains(t, buf.String(), "[AES] INFO ciphertext 69c4\n")
	require.NotContains(t, buf.String(), "hidden")

	level, err := ParseLogLevel("debug")
	require.NoError(t, err)
	GlobalLogLevel = level
	require.True(t, IsLogLevelDebug())

	_, err = ParseLogLevel("loud")
	require.Error(t, err)
}

func TestJSON(t *testing.T) {
	buf, err := MarshalJSON(map[string]string{"name": "aes-128"})
	require.NoError(t, err)
	require.Equal(t, `{"name":"aes-128"}`, string(buf))

	var out map[string]string
	require.NoError(t, UnmarshalJSON(buf, &out))
	require.Equal(t, "aes-128", out["name"])
}
