package bench

import (
	"testing"

	"LWR-Cipher/keys"
	"LWR-Cipher/prf"
	"LWR-Cipher/stream"
)

func benchKey(b *testing.B, n int) *keys.SecretKey {
	b.Helper()
	k, err := keys.Generate(n, []byte("bench key"))
	if err != nil {
		b.Fatalf("generate: %v", err)
	}
	return k
}

func BenchmarkEvaluate(b *testing.B) {
	p := prf.DefaultParams()
	key := benchKey(b, p.NLWR)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := prf.Evaluate(p, key, 1, uint64(i)); err != nil {
			b.Fatalf("evaluate: %v", err)
		}
	}
}

func BenchmarkEncrypt64Symbols(b *testing.B) {
	p := prf.DefaultParams()
	key := benchKey(b, p.NLWR)
	msg := make([]uint8, 64)
	for i := range msg {
		msg[i] = uint8(uint64(i) % p.P)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := stream.Encrypt(p, key, uint64(i), msg); err != nil {
			b.Fatalf("encrypt: %v", err)
		}
	}
}

func BenchmarkKeyGenerate(b *testing.B) {
	p := prf.DefaultParams()
	seed := []byte("bench keygen seed")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := keys.Generate(p.NLWR, seed); err != nil {
			b.Fatalf("generate: %v", err)
		}
	}
}
