// Package keccak implements the Keccak-f[1600] permutation used by the
// SHAKE-256 sponge. Only the permutation primitive is exposed; the sponge
// construction lives in the sponge package.
package keccak

// State is the 1600-bit permutation state: 25 lanes of 64 bits each,
// addressed as lane = x + 5y over the 5x5 lane grid.
type State [25]uint64

// Rounds is the number of rounds of Keccak-f[1600].
const Rounds = 24

// Round constants XORed into lane 0 by the iota step.
var rc = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// Rho rotation offsets, walked in the pi lane order (lane 0 is never rotated).
var rotc = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// Pi lane permutation walk starting from lane 1.
var piln = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// rotl rotates x left by n bits, toward the most significant bit, wrapping
// from the top.
func rotl(x uint64, n int) uint64 {
	return x<<n | x>>(64-n)
}

// Permute applies all 24 rounds of Keccak-f[1600] to st in place.
func Permute(st *State) {
	for r := 0; r < Rounds; r++ {
		round(st, rc[r])
	}
}

func round(st *State, rcv uint64) {
	// theta: column parities, each column XORed with parity(x-1) and
	// rot(parity(x+1), 1).
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = st[x] ^ st[x+5] ^ st[x+10] ^ st[x+15] ^ st[x+20]
	}
	for x := 0; x < 5; x++ {
		t := c[(x+4)%5] ^ rotl(c[(x+1)%5], 1)
		for y := 0; y < 5; y++ {
			st[x+5*y] ^= t
		}
	}

	// rho + pi in a single walk along the pi cycle.
	last := st[1]
	for i := 0; i < 24; i++ {
		j := piln[i]
		last, st[j] = st[j], rotl(last, rotc[i])
	}

	// chi: per-row nonlinear map a[x] ^= ^a[x+1] & a[x+2].
	for y := 0; y < 5; y++ {
		var row [5]uint64
		for x := 0; x < 5; x++ {
			row[x] = st[x+5*y]
		}
		for x := 0; x < 5; x++ {
			st[x+5*y] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}

	// iota: round constant into lane 0 only.
	st[0] ^= rcv
}
