package main

import (
	"errors"
	"fmt"
	"os"

	"git.gammaspectra.live/P2Pool/zk/aes32"
	"git.gammaspectra.live/P2Pool/zk/types"
	"git.gammaspectra.live/P2Pool/zk/utils"
	"sigs.k8s.io/yaml"
)

// Vector a known-answer test for a single block.
type Vector struct {
	Name       string      `json:"name"`
	Key        types.Bytes `json:"key"`
	Plaintext  types.Bytes `json:"plaintext"`
	Ciphertext types.Bytes `json:"ciphertext"`
}

type VectorFile struct {
	Vectors []Vector `json:"vectors"`
}

var errVectorSize = errors.New("wrong size")

func (v Vector) validate() error {
	switch len(v.Key) {
	case 16, 24, 32:
	default:
		return fmt.Errorf("vector %s: key: %w: %d bytes", v.Name, errVectorSize, len(v.Key))
	}
	if len(v.Plaintext) != aes32.BlockSize {
		return fmt.Errorf("vector %s: plaintext: %w: %d bytes", v.Name, errVectorSize, len(v.Plaintext))
	}
	if len(v.Ciphertext) != aes32.BlockSize {
		return fmt.Errorf("vector %s: ciphertext: %w: %d bytes", v.Name, errVectorSize, len(v.Ciphertext))
	}
	return nil
}

// ParseVectors decodes a YAML vector file. Every vector is validated, and names must be unique.
func ParseVectors(data []byte) ([]Vector, error) {
	buf, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, err
	}
	var f VectorFile
	if err = utils.UnmarshalJSON(buf, &f); err != nil {
		return nil, err
	}

	names := make(map[string]struct{}, len(f.Vectors))
	for i, v := range f.Vectors {
		if v.Name == "" {
			return nil, fmt.Errorf("vector %d: missing name", i)
		}
		if _, ok := names[v.Name]; ok {
			return nil, fmt.Errorf("vector %s: duplicate name", v.Name)
		}
		names[v.Name] = struct{}{}
		if err = v.validate(); err != nil {
			return nil, err
		}
	}
	return f.Vectors, nil
}

func LoadVectors(path string) ([]Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	vectors, err := ParseVectors(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vectors, nil
}
