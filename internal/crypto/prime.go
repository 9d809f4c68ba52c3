package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// smallPrimes is the trial-division filter applied before Miller-Rabin.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

// IsProbablePrime runs trial division followed by rounds of Miller-Rabin
// with random bases in [2, n-2]. It returns false for every n < 2 and for
// every composite it catches; a true result is wrong with probability at
// most 4^-rounds.
func IsProbablePrime(n *big.Int, rounds int) bool {
	if n == nil || n.Cmp(bigTwo) < 0 {
		return false
	}

	var rem big.Int
	for _, p := range smallPrimes {
		bp := big.NewInt(p)
		if rem.Mod(n, bp).Sign() == 0 {
			return n.Cmp(bp) == 0
		}
	}

	// n-1 = 2^r * d with d odd
	nm1 := new(big.Int).Sub(n, bigOne)
	r := nm1.TrailingZeroBits()
	d := new(big.Int).Rsh(nm1, r)

	// bases are drawn from [0, n-4] and shifted by 2
	span := new(big.Int).Sub(n, big.NewInt(3))

	for i := 0; i < rounds; i++ {
		a, err := rand.Int(random(), span)
		if err != nil {
			return false
		}
		a.Add(a, bigTwo)

		if !millerRabinWitnessPasses(a, d, n, nm1, r) {
			return false
		}
	}

	return true
}

// millerRabinWitnessPasses reports whether base a fails to prove n composite.
func millerRabinWitnessPasses(a, d, n, nm1 *big.Int, r uint) bool {
	x := new(big.Int).Exp(a, d, n)
	if x.Cmp(bigOne) == 0 || x.Cmp(nm1) == 0 {
		return true
	}

	for j := uint(1); j < r; j++ {
		x.Exp(x, bigTwo, n)
		if x.Cmp(nm1) == 0 {
			return true
		}
	}

	return false
}

// GeneratePrime returns a probable prime of exactly bits bits. Candidates
// are odd with the two most significant bits set, so the product of two
// such primes has exactly 2*bits bits. The loop has no retry bound.
func GeneratePrime(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrimeSize, bits)
	}

	topBits := uint(bits % 8)
	if topBits == 0 {
		topBits = 8
	}

	buf := make([]byte, (bits+7)/8)
	p := new(big.Int)

	for {
		if _, err := io.ReadFull(random(), buf); err != nil {
			return nil, fmt.Errorf("read random: %w", err)
		}

		// Clear bits above the requested length.
		buf[0] &= uint8(int(1<<topBits) - 1)

		// Set the top two bits.
		if topBits >= 2 {
			buf[0] |= 3 << (topBits - 2)
		} else {
			buf[0] |= 1
			if len(buf) > 1 {
				buf[1] |= 0x80
			}
		}

		buf[len(buf)-1] |= 1

		p.SetBytes(buf)
		if IsProbablePrime(p, MillerRabinRounds) {
			return p, nil
		}
	}
}
