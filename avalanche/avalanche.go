// Package avalanche measures how many ciphertext bits change when a single plaintext bit is flipped.
//
// A sound block cipher flips each output bit with probability one half. A round function
// that skips substitution or mixing shows up as a mean far from 0.5 or as input bits
// whose flips never reach most of the output.
package avalanche

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"math/rand/v2"

	"git.gammaspectra.live/P2Pool/zk/aes32"
	"git.gammaspectra.live/P2Pool/zk/utils"
	"golang.org/x/sys/cpu"
)

const blockBits = aes32.BlockSize * 8

var ErrNoSamples = errors.New("avalanche: no samples")

type Config struct {
	// Samples number of random plaintexts, each flipped at all 128 bit positions.
	Samples uint64
	// Routines zero or less uses one per CPU.
	Routines int
	Seed     uint64
}

type Result struct {
	Samples uint64 `json:"samples"`
	// Mean fraction of ciphertext bits changed per single-bit flip.
	Mean float64 `json:"mean"`
	// MinBitMean and MaxBitMean are the extremes of the per input bit means.
	MinBitMean float64 `json:"min_bit_mean"`
	MaxBitMean float64 `json:"max_bit_mean"`
}

// counters are per routine, padded so neighbours do not share cache lines
type counters struct {
	flips [blockBits]uint64
	_     cpu.CacheLinePad
}

// plaintext returns the deterministic sample for index, independent of scheduling.
func plaintext(seed, index uint64) (b aes32.Block) {
	r := rand.New(rand.NewPCG(seed, index))
	lo, hi := r.Uint64(), r.Uint64()
	return aes32.Block{uint32(lo), uint32(lo >> 32), uint32(hi), uint32(hi >> 32)}
}

func distance(a, b aes32.Block) int {
	return bits.OnesCount32(a[0]^b[0]) + bits.OnesCount32(a[1]^b[1]) + bits.OnesCount32(a[2]^b[2]) + bits.OnesCount32(a[3]^b[3])
}

// Measure runs fn over cfg.Samples plaintexts and their 128 single-bit neighbours.
// fn must be safe for concurrent use.
func Measure(fn func(aes32.Block) aes32.Block, cfg Config) (Result, error) {
	if cfg.Samples == 0 {
		return Result{}, ErrNoSamples
	}

	var perRoutine []counters

	err := utils.SplitWork(cfg.Routines, cfg.Samples, func(workIndex uint64, routineIndex int) error {
		pt := plaintext(cfg.Seed, workIndex)
		ct := fn(pt)

		c := &perRoutine[routineIndex]
		for bit := range blockBits {
			flipped := pt
			flipped[bit/32] ^= 1 << (bit % 32)
			c.flips[bit] += uint64(distance(ct, fn(flipped)))
		}
		return nil
	}, func(routines, routineIndex int) error {
		if routineIndex == 0 {
			perRoutine = make([]counters, routines)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	var total [blockBits]uint64
	for i := range perRoutine {
		for bit := range total {
			total[bit] += perRoutine[i].flips[bit]
		}
	}

	result := Result{
		Samples:    cfg.Samples,
		MinBitMean: math.Inf(1),
		MaxBitMean: math.Inf(-1),
	}
	var sum uint64
	perBit := float64(cfg.Samples * blockBits)
	for _, n := range total {
		sum += n
		m := float64(n) / perBit
		result.MinBitMean = min(result.MinBitMean, m)
		result.MaxBitMean = max(result.MaxBitMean, m)
	}
	result.Mean = float64(sum) / (perBit * blockBits)

	return result, nil
}

// Check reports an error when the mean is further than tolerance from one half,
// or any single input bit is further than twice that.
func (r Result) Check(tolerance float64) error {
	if math.Abs(r.Mean-0.5) > tolerance {
		return fmt.Errorf("avalanche: mean %.4f outside 0.5±%.4f", r.Mean, tolerance)
	}
	if 0.5-r.MinBitMean > 2*tolerance || r.MaxBitMean-0.5 > 2*tolerance {
		return fmt.Errorf("avalanche: per bit mean range [%.4f, %.4f] outside 0.5±%.4f", r.MinBitMean, r.MaxBitMean, 2*tolerance)
	}
	return nil
}
