// Package stream combines the LWR PRF keystream with plaintext symbols: a
// one-time-pad combiner in Z_P (modular add to encrypt, subtract to
// decrypt), plus counter-mode message encryption over a 64-bit nonce. No
// authentication tag is computed.
package stream

import (
	"fmt"

	"LWR-Cipher/keys"
	"LWR-Cipher/prf"
)

// EncryptSymbol adds a keystream value to a plaintext symbol mod P. The sum
// is formed one bit wider than the symbol so the P crossing is caught before
// reduction.
func EncryptSymbol(m, pad uint8, params *prf.Params) (uint8, error) {
	if err := checkSymbols(params, m, pad); err != nil {
		return 0, err
	}
	s := uint16(m) + uint16(pad)
	if s >= uint16(params.P) {
		s -= uint16(params.P)
	}
	return uint8(s), nil
}

// DecryptSymbol inverts EncryptSymbol: (c + P - pad) mod P.
func DecryptSymbol(c, pad uint8, params *prf.Params) (uint8, error) {
	if err := checkSymbols(params, c, pad); err != nil {
		return 0, err
	}
	s := uint16(c) + uint16(params.P) - uint16(pad)
	if s >= uint16(params.P) {
		s -= uint16(params.P)
	}
	return uint8(s), nil
}

func checkSymbols(params *prf.Params, vals ...uint8) error {
	if err := params.Validate(); err != nil {
		return err
	}
	for _, v := range vals {
		if uint64(v) >= params.P {
			return fmt.Errorf("stream: symbol %d outside Z_%d", v, params.P)
		}
	}
	return nil
}

// Encrypt runs the PRF in counter mode over the message symbols: symbol i is
// padded with PRF(key, nonce, i). A nonce must never be reused under the
// same key.
func Encrypt(params *prf.Params, key *keys.SecretKey, nonce uint64, msg []uint8) ([]uint8, error) {
	pads, err := prf.EvaluateStream(params, key, nonce, len(msg))
	if err != nil {
		return nil, err
	}
	out := make([]uint8, len(msg))
	for i, m := range msg {
		out[i], err = EncryptSymbol(m, pads[i], params)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Decrypt recovers the message from a ciphertext produced by Encrypt with
// the same key and nonce.
func Decrypt(params *prf.Params, key *keys.SecretKey, nonce uint64, ct []uint8) ([]uint8, error) {
	pads, err := prf.EvaluateStream(params, key, nonce, len(ct))
	if err != nil {
		return nil, err
	}
	out := make([]uint8, len(ct))
	for i, c := range ct {
		out[i], err = DecryptSymbol(c, pads[i], params)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
