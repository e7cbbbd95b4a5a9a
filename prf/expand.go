package prf

import (
	"encoding/binary"
	"fmt"

	"LWR-Cipher/sponge"
)

// coefficientSource derives the ordered coefficient stream for one (nonce,
// index) pair: SHAKE-256 over nonce||index (both 8-byte little-endian),
// squeezed 8 bytes per coefficient and reduced into Z_{2N}. The stream is
// strictly ordered and deterministic; encrypt and decrypt rely on replaying
// it identically.
type coefficientSource struct {
	sp     *sponge.Sponge
	params *Params
	next   int
}

func newCoefficientSource(params *Params, nonce, index uint64) *coefficientSource {
	var hdr [16]byte
	binary.LittleEndian.PutUint64(hdr[0:8], nonce)
	binary.LittleEndian.PutUint64(hdr[8:16], index)
	sp := sponge.New()
	_, _ = sp.Write(hdr[:]) // fresh sponge, absorbing phase
	return &coefficientSource{sp: sp, params: params}
}

// Next emits the next {coefficient, mask address} pair. last is set on the
// final coefficient of the sequence; calling past it is a caller error.
func (cs *coefficientSource) Next() (coeff uint64, addr int, last bool, err error) {
	if cs.next >= cs.params.NLWR {
		return 0, 0, false, fmt.Errorf("prf: coefficient stream exhausted after %d items", cs.params.NLWR)
	}
	var buf [8]byte
	if _, err := cs.sp.Read(buf[:]); err != nil {
		return 0, 0, false, err
	}
	coeff = binary.LittleEndian.Uint64(buf[:]) & cs.params.coeffMask()
	addr = cs.next
	cs.next++
	return coeff, addr, cs.next == cs.params.NLWR, nil
}

// HashVector materializes the full coefficient vector H(nonce, index) in
// Z_{2N}^n. Evaluate consumes the stream directly; this is the boundary for
// tooling that needs the whole vector at once.
func HashVector(params *Params, nonce, index uint64) ([]uint64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	cs := newCoefficientSource(params, nonce, index)
	out := make([]uint64, params.NLWR)
	for i := range out {
		coeff, _, _, err := cs.Next()
		if err != nil {
			return nil, err
		}
		out[i] = coeff
	}
	return out, nil
}
