package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"LWR-Cipher/keys"
	"LWR-Cipher/prf"
	"LWR-Cipher/stream"
)

func usage() {
	fmt.Println(`usage: lwrcli <gen|eval|encrypt|decrypt> [options]

Subcommands:
  gen      Generate a secret key and write it to -key
           Flags:
             -key   <path>    key file (default: secret_key.json)
             -n     <int>     key dimension n_lwr (default: 445)
             -seed  <string>  deterministic seed; omit for a random key

  eval     Print PRF keystream values for a nonce
           Flags:
             -key   <path>    key file (default: secret_key.json)
             -nonce <uint64>  nonce (required)
             -count <int>     number of values (default: 10)

  encrypt  Encrypt comma-separated Z_P symbols
           Flags:
             -key   <path>    key file (default: secret_key.json)
             -nonce <uint64>  nonce (required)
             -m     <string>  symbols, e.g. "10,20,15" (required)

  decrypt  Decrypt comma-separated Z_P symbols (same flags as encrypt,
           with -c instead of -m)`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "gen":
		runGen(os.Args[2:])
	case "eval":
		runEval(os.Args[2:])
	case "encrypt":
		runCipher(os.Args[2:], true)
	case "decrypt":
		runCipher(os.Args[2:], false)
	default:
		usage()
	}
}

func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	keyPath := fs.String("key", "secret_key.json", "key file path")
	n := fs.Int("n", prf.DefaultParams().NLWR, "key dimension n_lwr")
	seed := fs.String("seed", "", "deterministic seed (empty: random)")
	fs.Parse(args)

	var k *keys.SecretKey
	var err error
	if *seed == "" {
		k, err = keys.GenerateRandom(*n)
	} else {
		k, err = keys.Generate(*n, []byte(*seed))
	}
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	if err := keys.Save(*keyPath, k); err != nil {
		log.Fatalf("save: %v", err)
	}
	fmt.Printf("wrote %s (n_lwr=%d)\n", *keyPath, k.Len())
}

func runEval(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	keyPath := fs.String("key", "secret_key.json", "key file path")
	nonce := fs.Uint64("nonce", 0, "nonce")
	count := fs.Int("count", 10, "number of keystream values")
	fs.Parse(args)

	params, key := loadContext(*keyPath)
	vals, err := prf.EvaluateStream(params, key, *nonce, *count)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}
	fmt.Println(formatSymbols(vals))
}

func runCipher(args []string, encrypt bool) {
	fs := flag.NewFlagSet("cipher", flag.ExitOnError)
	keyPath := fs.String("key", "secret_key.json", "key file path")
	nonce := fs.Uint64("nonce", 0, "nonce")
	m := fs.String("m", "", "plaintext symbols (encrypt)")
	c := fs.String("c", "", "ciphertext symbols (decrypt)")
	fs.Parse(args)

	in := *m
	if !encrypt {
		in = *c
	}
	if in == "" {
		log.Fatalf("no symbols given")
	}
	syms, err := parseSymbols(in)
	if err != nil {
		log.Fatalf("parse symbols: %v", err)
	}

	params, key := loadContext(*keyPath)
	var out []uint8
	if encrypt {
		out, err = stream.Encrypt(params, key, *nonce, syms)
	} else {
		out, err = stream.Decrypt(params, key, *nonce, syms)
	}
	if err != nil {
		log.Fatalf("cipher: %v", err)
	}
	fmt.Println(formatSymbols(out))
}

func loadContext(keyPath string) (*prf.Params, *keys.SecretKey) {
	key, err := keys.Load(keyPath)
	if err != nil {
		log.Fatalf("load key: %v", err)
	}
	params := prf.DefaultParams()
	params.NLWR = key.Len()
	if err := params.Validate(); err != nil {
		log.Fatalf("params: %v", err)
	}
	return params, key
}

func parseSymbols(s string) ([]uint8, error) {
	parts := strings.Split(s, ",")
	out := make([]uint8, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("symbol %q: %w", p, err)
		}
		out[i] = uint8(v)
	}
	return out, nil
}

func formatSymbols(vals []uint8) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}
