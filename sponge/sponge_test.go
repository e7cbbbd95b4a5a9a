package sponge

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"

	"golang.org/x/crypto/sha3"
)

// Standard SHAKE-256 test vectors (32-byte outputs).
var shakeKATs = []struct {
	name string
	msg  []byte
	want string
}{
	{"empty", nil, "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f"},
	{"abc", []byte("abc"), "483366601360a8771c6863080cc4114d8db44530f8f1e1ee4f94ea37e78b5739"},
	{"200xA3", bytes.Repeat([]byte{0xa3}, 200), "cd8a920ed141aa0407a22d59288652e9d9f1a7ee0c1e7c1ca699424da84a904d"},
}

func TestShake256KnownAnswers(t *testing.T) {
	for _, tc := range shakeKATs {
		got := Sum256(tc.msg, 32)
		if hex.EncodeToString(got) != tc.want {
			t.Fatalf("%s: got %x want %s", tc.name, got, tc.want)
		}
	}
}

// 256-byte output of SHAKE256(""), exercising a mid-squeeze re-permutation
// (256 > one 136-byte rate block).
func TestShake256LongSqueeze(t *testing.T) {
	const want = "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f" +
		"d75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be" +
		"141e96616fb13957692cc7edd0b45ae3dc07223c8e92937bef84bc0eab862853" +
		"349ec75546f58fb7c2775c38462c5010d846c185c15111e595522a6bcd16cf86" +
		"f3d122109e3b1fdd943b6aec468a2d621a7c06c6a957c62b54dafc3be87567d6" +
		"77231395f6147293b68ceab7a9e0c58d864e8efde4e1b9a46cbe854713672f5c" +
		"aaae314ed9083dab4b099f8e300f01b8650f1f4b1d8fcf3f3cb53fb8e9eb2ea2" +
		"03bdc970f50ae55428a91f7f53ac266b28419c3778a15fd248d339ede785fb7f"
	got := Sum256(nil, 256)
	if hex.EncodeToString(got) != want {
		t.Fatalf("long squeeze mismatch:\n got %x\nwant %s", got, want)
	}
}

// Absorbing a message in many small chunks must match a one-shot absorb, and
// squeezing in small reads must match a one-shot squeeze.
func TestStreamingEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	msg := make([]byte, 700)
	rng.Read(msg)

	want := Sum256(msg, 300)

	s := New()
	rest := msg
	for len(rest) > 0 {
		n := 1 + rng.Intn(50)
		if n > len(rest) {
			n = len(rest)
		}
		if _, err := s.Write(rest[:n]); err != nil {
			t.Fatalf("chunked write: %v", err)
		}
		rest = rest[n:]
	}
	got := make([]byte, 0, 300)
	for len(got) < 300 {
		n := 1 + rng.Intn(40)
		if n > 300-len(got) {
			n = 300 - len(got)
		}
		buf := make([]byte, n)
		if _, err := s.Read(buf); err != nil {
			t.Fatalf("chunked read: %v", err)
		}
		got = append(got, buf...)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("chunked output differs from one-shot")
	}
}

// Differential check against x/crypto's SHAKE-256 over random inputs and
// output lengths, including rate-boundary message sizes.
func TestAgainstXCrypto(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lengths := []int{0, 1, 7, 8, 135, 136, 137, 271, 272, 273, 1000}
	for _, n := range lengths {
		msg := make([]byte, n)
		rng.Read(msg)
		outLen := 1 + rng.Intn(500)

		got := Sum256(msg, outLen)

		want := make([]byte, outLen)
		h := sha3.NewShake256()
		h.Write(msg)
		h.Read(want)

		if !bytes.Equal(got, want) {
			t.Fatalf("len(msg)=%d outLen=%d: mismatch with x/crypto sha3", n, outLen)
		}
	}
}

func TestAbsorbAfterSqueezeRejected(t *testing.T) {
	s := New()
	if _, err := s.Write([]byte("abc")); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out [16]byte
	if _, err := s.Read(out[:]); err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, err := s.Write([]byte("more")); err != ErrFinalized {
		t.Fatalf("write after squeeze: err=%v want ErrFinalized", err)
	}
	if err := s.AbsorbLane(1, 8); err != ErrFinalized {
		t.Fatalf("absorb lane after squeeze: err=%v want ErrFinalized", err)
	}
}

// A reset context must behave exactly like a fresh one: no residual state.
func TestResetReinitializes(t *testing.T) {
	s := New()
	s.Write([]byte("first invocation with some data"))
	var drain [64]byte
	s.Read(drain[:])

	s.Reset()
	s.Write([]byte("abc"))
	got := make([]byte, 32)
	s.Read(got)

	want, _ := hex.DecodeString(shakeKATs[1].want)
	if !bytes.Equal(got, want) {
		t.Fatalf("post-reset output differs from fresh sponge")
	}
}

func TestAbsorbLaneMatchesWrite(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	msg := make([]byte, 8*21+5) // ends on a partial lane
	rng.Read(msg)

	want := Sum256(msg, 48)

	s := New()
	for off := 0; off < len(msg); off += 8 {
		n := len(msg) - off
		if n > 8 {
			n = 8
		}
		var lane uint64
		for i := 0; i < n; i++ {
			lane |= uint64(msg[off+i]) << (8 * uint(i))
		}
		if err := s.AbsorbLane(lane, n); err != nil {
			t.Fatalf("absorb lane at %d: %v", off, err)
		}
	}
	got := make([]byte, 48)
	s.Read(got)
	if !bytes.Equal(got, want) {
		t.Fatalf("lane absorption differs from byte absorption")
	}
}

func TestAbsorbLaneRange(t *testing.T) {
	s := New()
	if err := s.AbsorbLane(0, 9); err == nil {
		t.Fatalf("valid=9 accepted")
	}
	if err := s.AbsorbLane(0, -1); err == nil {
		t.Fatalf("valid=-1 accepted")
	}
	if err := s.AbsorbLane(0, 0); err != nil {
		t.Fatalf("valid=0 rejected: %v", err)
	}
}

func TestValidBytes(t *testing.T) {
	for n := 0; n <= 8; n++ {
		mask := uint8(1<<uint(n)) - 1
		got, err := ValidBytes(mask)
		if err != nil || got != n {
			t.Fatalf("mask %#02x: got (%d, %v) want (%d, nil)", mask, got, err, n)
		}
	}
	for _, mask := range []uint8{0x02, 0x05, 0x80, 0xf8, 0xaa} {
		if _, err := ValidBytes(mask); err != ErrValidityMask {
			t.Fatalf("mask %#02x: err=%v want ErrValidityMask", mask, err)
		}
	}
}
