package stream

import (
	"testing"

	"LWR-Cipher/keys"
	"LWR-Cipher/prf"
)

func TestSymbolVectors(t *testing.T) {
	p := prf.DefaultParams() // P = 32
	cases := []struct {
		m, pad, want uint8
		decrypt      bool
	}{
		{10, 16, 26, false},
		{26, 16, 10, true},
		{31, 31, 30, false}, // wraps past P
		{30, 31, 31, true},
		{25, 0, 25, false},
		{0, 0, 0, false},
		{0, 1, 31, true},
	}
	for _, tc := range cases {
		var got uint8
		var err error
		if tc.decrypt {
			got, err = DecryptSymbol(tc.m, tc.pad, p)
		} else {
			got, err = EncryptSymbol(tc.m, tc.pad, p)
		}
		if err != nil {
			t.Fatalf("(%d, %d): %v", tc.m, tc.pad, err)
		}
		if got != tc.want {
			t.Fatalf("(%d, %d) decrypt=%v: got %d want %d", tc.m, tc.pad, tc.decrypt, got, tc.want)
		}
	}
}

// decrypt(encrypt(m, k), k) = m for every m and k in Z_P.
func TestSymbolRoundTripExhaustive(t *testing.T) {
	p := prf.DefaultParams()
	for m := uint8(0); uint64(m) < p.P; m++ {
		for pad := uint8(0); uint64(pad) < p.P; pad++ {
			c, err := EncryptSymbol(m, pad, p)
			if err != nil {
				t.Fatalf("encrypt(%d, %d): %v", m, pad, err)
			}
			if uint64(c) >= p.P {
				t.Fatalf("ciphertext %d escapes Z_%d", c, p.P)
			}
			got, err := DecryptSymbol(c, pad, p)
			if err != nil {
				t.Fatalf("decrypt(%d, %d): %v", c, pad, err)
			}
			if got != m {
				t.Fatalf("round trip (%d, %d) -> %d", m, pad, got)
			}
		}
	}
}

func TestSymbolRangeChecks(t *testing.T) {
	p := prf.DefaultParams()
	if _, err := EncryptSymbol(32, 0, p); err == nil {
		t.Fatalf("plaintext 32 accepted with P=32")
	}
	if _, err := EncryptSymbol(0, 200, p); err == nil {
		t.Fatalf("pad 200 accepted with P=32")
	}
	if _, err := DecryptSymbol(255, 0, p); err == nil {
		t.Fatalf("ciphertext 255 accepted with P=32")
	}
}

func testKey(t *testing.T, n int) *keys.SecretKey {
	t.Helper()
	bits := make([]uint8, n)
	for i := range bits {
		v := i
		var pc int
		for v != 0 {
			pc += v & 1
			v >>= 1
		}
		bits[i] = uint8(pc & 1)
	}
	k, err := keys.New(bits)
	if err != nil {
		t.Fatalf("test key: %v", err)
	}
	return k
}

func TestMessageRoundTrip(t *testing.T) {
	p := prf.DefaultParams()
	key := testKey(t, p.NLWR)
	nonce := uint64(0x0123456789ABCDEF)
	msg := []uint8{10, 20, 15, 8, 31, 18, 0, 21, 3, 6}

	ct, err := Encrypt(p, key, nonce, msg)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	// Keystream for this key and nonce: 31,14,10,28,10,2,15,1,4,26.
	wantCT := []uint8{9, 2, 25, 4, 9, 20, 15, 22, 7, 0}
	for i := range wantCT {
		if ct[i] != wantCT[i] {
			t.Fatalf("ct[%d] = %d want %d", i, ct[i], wantCT[i])
		}
	}

	back, err := Decrypt(p, key, nonce, ct)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	for i := range msg {
		if back[i] != msg[i] {
			t.Fatalf("symbol %d: got %d want %d", i, back[i], msg[i])
		}
	}
}

func TestDecryptWrongNonce(t *testing.T) {
	p := prf.DefaultParams()
	key := testKey(t, p.NLWR)
	msg := []uint8{1, 2, 3, 4, 5, 6, 7, 8}

	ct, err := Encrypt(p, key, 100, msg)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	back, err := Decrypt(p, key, 101, ct)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	same := true
	for i := range msg {
		if back[i] != msg[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("wrong nonce reproduced the plaintext")
	}
}

func TestEncryptRejectsOutOfRangeSymbols(t *testing.T) {
	p := prf.DefaultParams()
	key := testKey(t, p.NLWR)
	if _, err := Encrypt(p, key, 5, []uint8{1, 2, 99}); err == nil {
		t.Fatalf("out-of-range plaintext symbol accepted")
	}
}
