// Package prf implements the depth-1 LWR pseudorandom function: a SHAKE-256
// derived coefficient vector, gated by the binary secret key, accumulated to
// a keyed inner product, and rescaled from the ring modulus N down to the
// plaintext modulus P.
package prf

import (
	"encoding/json"
	"fmt"
	"io"
	"math/bits"
	"os"
)

// Params holds the public LWR parameters. Coefficients live in Z_{2N}; PRF
// outputs, plaintexts and ciphertexts live in Z_P.
type Params struct {
	NLWR  int    `json:"n_lwr"`  // secret key dimension
	RingN uint64 `json:"ring_n"` // ring modulus N, power of two
	P     uint64 `json:"p"`      // plaintext modulus, power of two
}

// DefaultParams returns the reference parameter set: n=445, N=2048, P=32
// (5-bit symbols).
func DefaultParams() *Params {
	return &Params{NLWR: 445, RingN: 2048, P: 32}
}

// Validate checks the parameter set. N and P must both be powers of two:
// the rounding stage rescales by bit-shifting, which is exact only then. A
// general modulus pair would need true multiply/divide rescaling and is out
// of scope.
func (p *Params) Validate() error {
	if p == nil {
		return fmt.Errorf("prf: nil params")
	}
	if p.NLWR <= 0 {
		return fmt.Errorf("prf: n_lwr must be positive, got %d", p.NLWR)
	}
	if p.RingN == 0 || bits.OnesCount64(p.RingN) != 1 {
		return fmt.Errorf("prf: ring modulus N=%d is not a power of two", p.RingN)
	}
	if p.P == 0 || bits.OnesCount64(p.P) != 1 {
		return fmt.Errorf("prf: plaintext modulus P=%d is not a power of two", p.P)
	}
	if p.P >= p.RingN {
		return fmt.Errorf("prf: need P < N, got P=%d N=%d", p.P, p.RingN)
	}
	if p.P > 256 {
		return fmt.Errorf("prf: P=%d exceeds the byte-wide symbol range", p.P)
	}
	if uint64(p.NLWR) > p.RingN {
		return fmt.Errorf("prf: n_lwr=%d exceeds N=%d", p.NLWR, p.RingN)
	}
	// The accumulator must hold n_lwr worst-case terms without truncation.
	if bits.Len64(2*p.RingN-1)+bits.Len64(uint64(p.NLWR)) > 64 {
		return fmt.Errorf("prf: n_lwr=%d with N=%d overflows the 64-bit accumulator", p.NLWR, p.RingN)
	}
	return nil
}

// coeffMask is the reduction mask for coefficients in Z_{2N}.
func (p *Params) coeffMask() uint64 {
	return 2*p.RingN - 1
}

// LoadParams decodes parameters from JSON and validates them.
func LoadParams(r io.Reader) (*Params, error) {
	var p Params
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("prf: decode params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadParamsFromFile opens path, decodes JSON parameters, and validates them.
func LoadParamsFromFile(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("prf: open params file: %w", err)
	}
	defer f.Close()
	return LoadParams(f)
}
