// Package keys manages the LWR secret key: an immutable bit vector persisted
// to JSON. The key is loaded once at startup and read-only afterwards, so any
// number of concurrent evaluations may share it without synchronization.
package keys

import (
	"encoding/json"
	"fmt"
	"os"
)

// SecretKey is a fixed-length bit array addressed positionally.
type SecretKey struct {
	bits []uint8
}

// New validates that every entry is 0 or 1 and wraps the bits in a SecretKey.
// The slice is copied; later mutation of the argument cannot reach the key.
func New(bits []uint8) (*SecretKey, error) {
	if len(bits) == 0 {
		return nil, fmt.Errorf("keys: empty secret key")
	}
	out := make([]uint8, len(bits))
	for i, b := range bits {
		if b > 1 {
			return nil, fmt.Errorf("keys: non-binary value %d at position %d", b, i)
		}
		out[i] = b
	}
	return &SecretKey{bits: out}, nil
}

// Len returns the key dimension n_lwr.
func (k *SecretKey) Len() int {
	return len(k.bits)
}

// Bit returns the mask bit at position i. Out-of-range addresses are a
// caller error, reported rather than silently folded into the keystream.
func (k *SecretKey) Bit(i int) (uint8, error) {
	if i < 0 || i >= len(k.bits) {
		return 0, fmt.Errorf("keys: mask address %d out of range [0,%d)", i, len(k.bits))
	}
	return k.bits[i], nil
}

// Bits returns a copy of the bit vector.
func (k *SecretKey) Bits() []uint8 {
	out := make([]uint8, len(k.bits))
	copy(out, k.bits)
	return out
}

// keyFile matches the reference secret_key.json schema.
type keyFile struct {
	NLWR      int     `json:"n_lwr"`
	SecretKey []uint8 `json:"secret_key"`
}

// Save writes the key to path as indented JSON.
func Save(path string, k *SecretKey) error {
	if k == nil {
		return fmt.Errorf("keys: nil secret key")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(keyFile{NLWR: k.Len(), SecretKey: k.bits})
}

// Load reads a secret key from path, rejecting dimension mismatches between
// the declared n_lwr and the stored bits, and any non-binary entry.
func Load(path string) (*SecretKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var kf keyFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("keys: decode %s: %w", path, err)
	}
	if kf.NLWR != len(kf.SecretKey) {
		return nil, fmt.Errorf("keys: n_lwr=%d but %d bits stored", kf.NLWR, len(kf.SecretKey))
	}
	k, err := New(kf.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("keys: %s: %w", path, err)
	}
	return k, nil
}
