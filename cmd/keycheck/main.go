package main

import (
	"flag"
	"fmt"
	"log"

	"LWR-Cipher/keys"
	"LWR-Cipher/prf"
)

// keycheck validates a stored secret key file: dimension against the
// parameter set, binary entries (enforced on load), and a sanity report on
// the bit balance.
func main() {
	keyPath := flag.String("key", "secret_key.json", "key file path")
	n := flag.Int("n", prf.DefaultParams().NLWR, "expected dimension n_lwr")
	flag.Parse()

	k, err := keys.Load(*keyPath)
	if err != nil {
		log.Fatalf("load key: %v", err)
	}
	if k.Len() != *n {
		log.Fatalf("dimension mismatch: file has n_lwr=%d, expected %d", k.Len(), *n)
	}

	params := prf.DefaultParams()
	params.NLWR = k.Len()
	if err := params.Validate(); err != nil {
		log.Fatalf("params: %v", err)
	}

	ones := 0
	for _, b := range k.Bits() {
		ones += int(b)
	}
	fmt.Printf("key file:    %s\n", *keyPath)
	fmt.Printf("n_lwr:       %d\n", k.Len())
	fmt.Printf("hamming:     %d ones, %d zeros\n", ones, k.Len()-ones)
	if ones == 0 || ones == k.Len() {
		log.Fatalf("degenerate key: all bits equal")
	}
	fmt.Println("ok")
}
