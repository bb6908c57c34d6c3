package main

import (
	"fmt"
	"strings"
	"time"

	"git.gammaspectra.live/P2Pool/zk/aes32"
	"git.gammaspectra.live/P2Pool/zk/avalanche"
	"git.gammaspectra.live/P2Pool/zk/types"
	"git.gammaspectra.live/P2Pool/zk/utils"
	"github.com/dolthub/swiss"
)

type testFunc func(h *harness, name string) Outcome

type Outcome struct {
	Name       string            `json:"name"`
	Passed     bool              `json:"passed"`
	Error      string            `json:"error,omitempty"`
	Ciphertext types.Bytes       `json:"ciphertext,omitempty"`
	RoundKeys  []types.Bytes     `json:"round_keys,omitempty"`
	Avalanche  *avalanche.Result `json:"avalanche,omitempty"`
	Duration   time.Duration     `json:"duration_ns"`
}

type registry struct {
	names []string
	tests *swiss.Map[string, testFunc]
}

func newRegistry() *registry {
	return &registry{
		tests: swiss.NewMap[string, testFunc](16),
	}
}

func (r *registry) add(name string, fn testFunc) error {
	if r.tests.Has(name) {
		return fmt.Errorf("test %s registered twice", name)
	}
	r.tests.Put(name, fn)
	r.names = append(r.names, name)
	return nil
}

// selected resolves a comma separated list of test names, in registration order when empty.
func (r *registry) selected(run string) ([]string, error) {
	if run == "" {
		return r.names, nil
	}
	var names []string
	for _, name := range strings.Split(run, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !r.tests.Has(name) {
			return nil, fmt.Errorf("unknown test %s", name)
		}
		names = append(names, name)
	}
	return names, nil
}

type harness struct {
	engine *aes32.Engine
	cache  *aes32.CipherCache

	decimal  bool
	showKeys bool
	samples  uint64
}

func (h *harness) format(b [16]byte) string {
	if h.decimal {
		return aes32.BlockFromBytes(b).Uint128().String()
	}
	return types.Bytes(b[:]).String()
}

// check prints the schedule and ciphertext, then asserts against the expected literal.
func (h *harness) check(name string, rk []aes32.RoundKey, ct aes32.Block, want [16]byte) Outcome {
	o := Outcome{Name: name}

	if rk != nil {
		o.RoundKeys = make([]types.Bytes, 0, len(rk))
		if h.showKeys {
			utils.Logf(name, "----- ROUND KEYS -----")
		}
		for i, k := range rk {
			b := k.Bytes()
			o.RoundKeys = append(o.RoundKeys, b[:])
			if h.showKeys {
				utils.Logf(name, "%2d %s", i, h.format(b))
			}
		}
		if h.showKeys {
			utils.Logf(name, "-----  END KEYS  -----")
		}
	}

	out := ct.Bytes()
	o.Ciphertext = out[:]
	utils.Logf(name, "ciphertext %s", h.format(out))

	if out != want {
		o.Error = fmt.Sprintf("ciphertext %s, want %s", types.Bytes(out[:]), types.Bytes(want[:]))
		return o
	}
	o.Passed = true
	return o
}

func testAES128(h *harness, name string) Outcome {
	key := types.MustBytesFromString[[16]byte]("000102030405060708090a0b0c0d0e0f")
	pt := types.MustBytesFromString[[16]byte]("00112233445566778899aabbccddeeff")

	ks := h.engine.KeySchedule128(aes32.Key128FromBytes(key))
	ct := h.engine.Encrypt128(aes32.BlockFromBytes(pt), &ks)
	return h.check(name, ks[:], ct, types.MustBytesFromString[[16]byte]("69c4e0d86a7b0430d8cdb78070b4c55a"))
}

func testAES192(h *harness, name string) Outcome {
	key := types.MustBytesFromString[[24]byte]("8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b")
	pt := types.MustBytesFromString[[16]byte]("6bc1bee22e409f96e93d7e117393172a")

	ks := h.engine.KeySchedule192(aes32.Key192FromBytes(key))
	ct := h.engine.Encrypt192(aes32.BlockFromBytes(pt), &ks)
	return h.check(name, ks[:], ct, types.MustBytesFromString[[16]byte]("bd334f1d6e45f25ff712a214571fa5cc"))
}

func testAES256(h *harness, name string) Outcome {
	key := types.MustBytesFromString[[32]byte]("603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4")
	pt := types.MustBytesFromString[[16]byte]("6bc1bee22e409f96e93d7e117393172a")

	ks := h.engine.KeySchedule256(aes32.Key256FromBytes(key))
	ct := h.engine.Encrypt256(aes32.BlockFromBytes(pt), &ks)
	return h.check(name, ks[:], ct, types.MustBytesFromString[[16]byte]("f3eed1bdb5d2a03c064b5a7e3db181f8"))
}

const avalancheTolerance = 0.01

func testAvalanche(h *harness, name string) Outcome {
	o := Outcome{Name: name}

	ks := h.engine.KeySchedule128(aes32.Key128FromBytes(types.MustBytesFromString[[16]byte]("2b7e151628aed2a6abf7158809cf4f3c")))
	result, err := avalanche.Measure(func(b aes32.Block) aes32.Block {
		return h.engine.Encrypt128(b, &ks)
	}, avalanche.Config{Samples: h.samples, Seed: 0x6165733332})
	if err != nil {
		o.Error = err.Error()
		return o
	}
	o.Avalanche = &result
	utils.Logf(name, "mean %.4f, per bit [%.4f, %.4f] over %d samples", result.Mean, result.MinBitMean, result.MaxBitMean, result.Samples)

	if err = result.Check(avalancheTolerance); err != nil {
		o.Error = err.Error()
		return o
	}
	o.Passed = true
	return o
}

// vectorTest runs a file vector through the cached cipher.Block for its key.
func vectorTest(v Vector) testFunc {
	return func(h *harness, name string) Outcome {
		c, err := h.cache.Get(v.Key)
		if err != nil {
			return Outcome{Name: name, Error: err.Error()}
		}
		if r, ok := c.(interface{ Rounds() int }); ok {
			utils.Debugf(name, "%d-bit key, %d rounds", len(v.Key)*8, r.Rounds())
		}
		var out [aes32.BlockSize]byte
		c.Encrypt(out[:], v.Plaintext)
		return h.check(name, nil, aes32.BlockFromBytes(out), [16]byte(v.Ciphertext))
	}
}

func registerBuiltin(r *registry) error {
	for _, t := range []struct {
		name string
		fn   testFunc
	}{
		{"test_aes128", testAES128},
		{"test_aes192", testAES192},
		{"test_aes256", testAES256},
		{"test_avalanche", testAvalanche},
	} {
		if err := r.add(t.name, t.fn); err != nil {
			return err
		}
	}
	return nil
}

func registerVectors(r *registry, vectors []Vector) error {
	for _, v := range vectors {
		if err := r.add(v.Name, vectorTest(v)); err != nil {
			return err
		}
	}
	return nil
}

func (h *harness) run(r *registry, names []string) (outcomes []Outcome) {
	for _, name := range names {
		fn, _ := r.tests.Get(name)

		start := time.Now()
		o := fn(h, name)
		o.Duration = time.Since(start)

		if o.Passed {
			utils.Logf(name, "PASS (%s)", o.Duration)
		} else {
			utils.Errorf(name, "FAIL: %s", o.Error)
		}
		outcomes = append(outcomes, o)
	}
	return outcomes
}
