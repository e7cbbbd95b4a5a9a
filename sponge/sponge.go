// Package sponge implements the SHAKE-256 extendable-output sponge on top of
// the Keccak-f[1600] permutation: rate 1088 bits (17 lanes), capacity 512
// bits (8 lanes). A Sponge is a streaming absorb-then-squeeze context; after
// the first squeeze no further input is accepted until an explicit Reset.
package sponge

import (
	"errors"
	"fmt"
	"math/bits"

	"LWR-Cipher/keccak"
)

const (
	// Rate is the SHAKE-256 rate in bytes (17 lanes of 8 bytes).
	Rate = 136

	// domainSuffix carries the SHAKE 1111 domain bits together with the
	// first bit of the multi-rate pad10*1 padding.
	domainSuffix = 0x1f
)

var (
	// ErrFinalized is returned when input is absorbed into a sponge that
	// has already begun squeezing. The context must be Reset first.
	ErrFinalized = errors.New("sponge: absorb after squeeze has begun")

	// ErrValidityMask is returned for byte-validity masks that do not
	// select a contiguous run of low bytes.
	ErrValidityMask = errors.New("sponge: non-contiguous byte-validity mask")
)

type phase int

const (
	absorbing phase = iota
	squeezing
)

// Sponge holds the permutation state plus the rate pointer and phase. The
// capacity lanes (17..24) are only ever touched by the permutation.
type Sponge struct {
	st  keccak.State
	idx int // byte offset within the rate, 0..Rate-1
	ph  phase
}

// New returns a zeroed sponge in the absorbing phase.
func New() *Sponge {
	return &Sponge{}
}

func (s *Sponge) xorByte(b byte) {
	s.st[s.idx/8] ^= uint64(b) << (8 * uint(s.idx%8))
	s.idx++
	if s.idx == Rate {
		s.permute()
	}
}

func (s *Sponge) permute() {
	keccak.Permute(&s.st)
	s.idx = 0
}

// Write absorbs p into the sponge state, permuting whenever the rate fills
// mid-stream. It never fails on a sponge still in the absorbing phase.
func (s *Sponge) Write(p []byte) (int, error) {
	if s.ph != absorbing {
		return 0, ErrFinalized
	}
	for _, b := range p {
		s.xorByte(b)
	}
	return len(p), nil
}

// AbsorbLane absorbs the low valid bytes of a 64-bit word, least significant
// byte first. valid must be in [0, 8]; the remaining high bytes are ignored,
// mirroring a word bus whose trailing bytes carry no data.
func (s *Sponge) AbsorbLane(lane uint64, valid int) error {
	if valid < 0 || valid > 8 {
		return fmt.Errorf("sponge: valid byte count %d out of range [0,8]", valid)
	}
	if s.ph != absorbing {
		return ErrFinalized
	}
	for i := 0; i < valid; i++ {
		s.xorByte(byte(lane >> (8 * uint(i))))
	}
	return nil
}

// ValidBytes converts an 8-bit byte-validity mask to a count of valid low
// bytes. Only contiguous low-byte patterns (0x00, 0x01, 0x03, ..., 0xff) are
// accepted; anything else is rejected rather than guessed at.
func ValidBytes(mask uint8) (int, error) {
	n := bits.OnesCount8(mask)
	if mask != uint8(1<<uint(n))-1 {
		return 0, ErrValidityMask
	}
	return n, nil
}

// pad closes the input stream: domain suffix merged with the leading pad bit
// at the current position, final pad bit at the top of the rate block, then
// one forced permutation before any output is produced. The rate pointer can
// never sit past the last rate byte here (Write permutes eagerly on fill),
// so the pad always lands inside a valid rate lane.
func (s *Sponge) pad() {
	s.st[s.idx/8] ^= uint64(domainSuffix) << (8 * uint(s.idx%8))
	s.st[Rate/8-1] ^= 0x80 << 56
	s.permute()
	s.ph = squeezing
}

// Read squeezes len(p) bytes from the sponge, padding and permuting first if
// this is the first squeeze, and re-permuting whenever the rate lanes are
// exhausted mid-output. The caller sets the consumption granularity; the
// sponge never advances past what a Read has accepted.
func (s *Sponge) Read(p []byte) (int, error) {
	if s.ph == absorbing {
		s.pad()
	}
	for i := range p {
		p[i] = byte(s.st[s.idx/8] >> (8 * uint(s.idx%8)))
		s.idx++
		if s.idx == Rate {
			s.permute()
		}
	}
	return len(p), nil
}

// Reset zeroes the full state array and pointers, returning the sponge to
// the absorbing phase. Nothing leaks across invocations.
func (s *Sponge) Reset() {
	s.st = keccak.State{}
	s.idx = 0
	s.ph = absorbing
}

// Sum256 is the one-shot SHAKE-256 convenience: absorb msg, squeeze outLen
// bytes.
func Sum256(msg []byte, outLen int) []byte {
	s := New()
	_, _ = s.Write(msg) // a fresh sponge is always absorbing
	out := make([]byte, outLen)
	_, _ = s.Read(out)
	return out
}
