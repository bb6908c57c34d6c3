// Package aes32 implements the AES-128/192/256 key schedule and block encryption
// on top of the 32-bit lane primitives of package lanes.
//
// Only the forward cipher is provided. There is no decryption, padding or mode of operation.
package aes32

import (
	"errors"
	"fmt"
	"sync"

	"git.gammaspectra.live/P2Pool/zk/aes32/lanes"
)

// ErrNoLanes is returned by New for a nil lane implementation.
var ErrNoLanes = errors.New("aes32: no lane implementation")

// Engine runs the key schedule and round function over one verified lane implementation.
// It is immutable and safe for concurrent use.
type Engine struct {
	lane lanes.Lanes
}

// New verifies l once and returns an Engine using it. No further checks happen per call.
func New(l lanes.Lanes) (*Engine, error) {
	if l == nil {
		return nil, ErrNoLanes
	}
	if err := lanes.Verify(l); err != nil {
		return nil, fmt.Errorf("aes32: %w", err)
	}
	return &Engine{lane: l}, nil
}

// Lanes returns the verified implementation the engine runs on.
func (e *Engine) Lanes() lanes.Lanes {
	return e.lane
}

var defaultEngine = sync.OnceValue(func() *Engine {
	l, err := lanes.Default()
	if err != nil {
		panic(err)
	}
	e, err := New(l)
	if err != nil {
		panic(err)
	}
	return e
})

// Default returns the process wide Engine over lanes.Default.
// It panics if the lane implementation fails verification.
func Default() *Engine {
	return defaultEngine()
}

// KeySchedule128, KeySchedule192 and KeySchedule256 expand a key on the Default engine.
func KeySchedule128(key Key128) Schedule128 {
	return Default().KeySchedule128(key)
}

func KeySchedule192(key Key192) Schedule192 {
	return Default().KeySchedule192(key)
}

func KeySchedule256(key Key256) Schedule256 {
	return Default().KeySchedule256(key)
}

// Encrypt128, Encrypt192 and Encrypt256 encrypt one block on the Default engine.
func Encrypt128(block Block, ks *Schedule128) Block {
	return Default().Encrypt128(block, ks)
}

func Encrypt192(block Block, ks *Schedule192) Block {
	return Default().Encrypt192(block, ks)
}

func Encrypt256(block Block, ks *Schedule256) Block {
	return Default().Encrypt256(block, ks)
}
