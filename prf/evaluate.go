package prf

import (
	"fmt"
	"math/bits"

	"LWR-Cipher/keys"
)

// reduceMasked drains the coefficient source, adding into the accumulator
// every coefficient whose secret mask bit is set. The accumulator is sized
// by Params.Validate so no truncation can occur before rounding.
func reduceMasked(cs *coefficientSource, key *keys.SecretKey) (uint64, error) {
	var acc uint64
	for {
		coeff, addr, last, err := cs.Next()
		if err != nil {
			return 0, err
		}
		bit, err := key.Bit(addr)
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			acc += coeff
		}
		if last {
			return acc, nil
		}
	}
}

// roundScale switches the accumulated sum from modulus N down to modulus P:
// the bit at position log2(N) of (sum mod 2N) flags the negative half
// [N, 2N), the low log2(N) bits give the residue mod N, and the top log2(P)
// bits of that residue give the rescaled value. The half flag negates the
// result mod P, with 0 mapping to 0.
func roundScale(sum uint64, params *Params) uint8 {
	logN := uint(bits.TrailingZeros64(params.RingN))
	logP := uint(bits.TrailingZeros64(params.P))

	negative := sum&params.RingN != 0 // bit log2(N) of sum mod 2N
	residue := sum & (params.RingN - 1)
	scaled := residue >> (logN - logP)
	if negative {
		scaled = (params.P - scaled) & (params.P - 1)
	}
	return uint8(scaled)
}

// Evaluate computes PRF(key, nonce, index) in Z_P. The same inputs always
// produce the same output.
func Evaluate(params *Params, key *keys.SecretKey, nonce, index uint64) (uint8, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if key == nil {
		return 0, fmt.Errorf("prf: nil secret key")
	}
	if key.Len() != params.NLWR {
		return 0, fmt.Errorf("prf: key dimension %d, params declare n_lwr=%d", key.Len(), params.NLWR)
	}
	sum, err := reduceMasked(newCoefficientSource(params, nonce, index), key)
	if err != nil {
		return 0, err
	}
	return roundScale(sum, params), nil
}

// EvaluateStream produces count keystream symbols for a single nonce using
// consecutive indices 0..count-1. Each evaluation owns its own sponge and
// accumulator; the secret key is the only shared state and is read-only.
func EvaluateStream(params *Params, key *keys.SecretKey, nonce uint64, count int) ([]uint8, error) {
	if count < 0 {
		return nil, fmt.Errorf("prf: negative keystream length %d", count)
	}
	out := make([]uint8, count)
	for i := range out {
		v, err := Evaluate(params, key, nonce, uint64(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
