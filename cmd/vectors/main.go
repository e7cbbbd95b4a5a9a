package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"LWR-Cipher/keccak"
	"LWR-Cipher/keys"
	"LWR-Cipher/prf"
	"LWR-Cipher/sponge"
)

// vectors regenerates the known-answer vector files used by the hardware
// testbenches: f1600_vectors.hex, shake256_vectors.hex, and the
// hash_vector.mem / secret_key.mem pair for a chosen nonce and index.
func main() {
	outDir := flag.String("out", ".", "output directory")
	keyPath := flag.String("key", "", "key file for secret_key.mem (empty: skip)")
	nonce := flag.Uint64("nonce", 0, "nonce for hash_vector.mem")
	index := flag.Uint64("index", 0, "index for hash_vector.mem")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}
	if err := writeF1600Vectors(filepath.Join(*outDir, "f1600_vectors.hex")); err != nil {
		log.Fatalf("f1600 vectors: %v", err)
	}
	if err := writeShakeVectors(filepath.Join(*outDir, "shake256_vectors.hex")); err != nil {
		log.Fatalf("shake256 vectors: %v", err)
	}
	if *keyPath != "" {
		if err := writeKeyVectors(*outDir, *keyPath, *nonce, *index); err != nil {
			log.Fatalf("key vectors: %v", err)
		}
	}
}

func writeF1600Vectors(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dump := func(st *keccak.State) {
		keccak.Permute(st)
		for _, lane := range st {
			fmt.Fprintf(f, "%016x\n", lane)
		}
	}
	var st keccak.State
	dump(&st)
	st = keccak.State{}
	st[0] = 0xDEADBEEFCAFEBABE
	dump(&st)
	return nil
}

func writeShakeVectors(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	write := func(msg []byte, outLen int) {
		digest := sponge.Sum256(msg, outLen)
		for len(digest) > 0 {
			n := len(digest)
			if n > 8 {
				n = 8
			}
			var lane uint64
			for i := 0; i < n; i++ {
				lane |= uint64(digest[i]) << (8 * uint(i))
			}
			fmt.Fprintf(f, "%016x\n", lane)
			digest = digest[n:]
		}
	}
	a3 := make([]byte, 200)
	for i := range a3 {
		a3[i] = 0xa3
	}
	write(nil, 32)
	write([]byte("abc"), 32)
	write(a3, 32)
	write(nil, 256) // exercises a squeeze across the rate boundary
	return nil
}

func writeKeyVectors(outDir, keyPath string, nonce, index uint64) error {
	key, err := keys.Load(keyPath)
	if err != nil {
		return err
	}
	params := prf.DefaultParams()
	params.NLWR = key.Len()
	if err := params.Validate(); err != nil {
		return err
	}

	kf, err := os.Create(filepath.Join(outDir, "secret_key.mem"))
	if err != nil {
		return err
	}
	defer kf.Close()
	for _, b := range key.Bits() {
		fmt.Fprintf(kf, "%d\n", b)
	}

	// One coefficient per line, 3 hex digits: values in Z_{2N} = Z_4096.
	hf, err := os.Create(filepath.Join(outDir, "hash_vector.mem"))
	if err != nil {
		return err
	}
	defer hf.Close()

	vec, err := prf.HashVector(params, nonce, index)
	if err != nil {
		return err
	}
	for _, coeff := range vec {
		fmt.Fprintf(hf, "%03x\n", coeff)
	}

	v, err := prf.Evaluate(params, key, nonce, index)
	if err != nil {
		return err
	}
	fmt.Printf("prf(nonce=%d, index=%d) = %d\n", nonce, index, v)
	return nil
}
