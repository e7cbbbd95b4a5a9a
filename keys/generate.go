package keys

import (
	crand "crypto/rand"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

// Generate samples a uniform binary key of dimension n, deterministic in the
// seed material: the seed is expanded to a 64-byte PRNG key with SHAKE-256,
// which keys the deterministic PRNG driving the bit sampling. The same seed
// always reproduces the same key.
func Generate(n int, seed []byte) (*SecretKey, error) {
	if n <= 0 {
		return nil, fmt.Errorf("keys: dimension must be positive, got %d", n)
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("keys: empty seed")
	}

	prngKey := make([]byte, 64)
	h := sha3.NewShake256()
	if _, err := h.Write(seed); err != nil {
		return nil, fmt.Errorf("keys: expand seed: %w", err)
	}
	if _, err := h.Read(prngKey); err != nil {
		return nil, fmt.Errorf("keys: expand seed: %w", err)
	}

	prng, err := utils.NewKeyedPRNG(prngKey)
	if err != nil {
		return nil, fmt.Errorf("keys: keyed PRNG: %w", err)
	}

	buf := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(prng, buf); err != nil {
		return nil, fmt.Errorf("keys: prng read: %w", err)
	}
	bits := make([]uint8, n)
	for i := range bits {
		bits[i] = buf[i/8] >> (uint(i) % 8) & 1
	}
	return New(bits)
}

// GenerateRandom samples a fresh key of dimension n from the system entropy
// source.
func GenerateRandom(n int) (*SecretKey, error) {
	seed := make([]byte, 32)
	if _, err := io.ReadFull(crand.Reader, seed); err != nil {
		return nil, fmt.Errorf("keys: entropy: %w", err)
	}
	return Generate(n, seed)
}
