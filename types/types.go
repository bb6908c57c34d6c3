package types

import (
	"errors"
	"fmt"

	fasthex "github.com/tmthrgd/go-hex"
)

// Fixed AES key and block sizes that can be parsed from hex.
type Fixed interface {
	~[16]byte | ~[24]byte | ~[32]byte
}

func MustBytesFromString[T Fixed](s string) T {
	if h, err := BytesFromString[T](s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func BytesFromString[T Fixed](s string) (T, error) {
	var h T
	if buf, err := fasthex.DecodeString(s); err != nil {
		return h, err
	} else {
		if len(buf) != len(h) {
			return h, fmt.Errorf("wrong size: got %d bytes, want %d", len(buf), len(h))
		}
		// no core type to slice, index instead
		for i, v := range buf {
			h[i] = v
		}
		return h, nil
	}
}

//nolint:recvcheck
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	buf := make([]byte, len(b)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], b)
	return buf, nil
}

func (b Bytes) String() string {
	return fasthex.EncodeToString(b)
}

func (b *Bytes) UnmarshalJSON(buf []byte) error {
	if len(buf) < 2 || (len(buf)%2) != 0 || buf[0] != '"' || buf[len(buf)-1] != '"' {
		return errors.New("invalid bytes")
	}

	*b = make(Bytes, (len(buf)-2)/2)

	if _, err := fasthex.Decode(*b, buf[1:len(buf)-1]); err != nil {
		return err
	}

	return nil
}
