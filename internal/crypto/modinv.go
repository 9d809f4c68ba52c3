package crypto

import (
	"fmt"
	"math/big"
)

// extendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
// a and b must be non-negative.
func extendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	if a.Sign() == 0 {
		return new(big.Int).Set(b), big.NewInt(0), big.NewInt(1)
	}

	q, r := new(big.Int).DivMod(b, a, new(big.Int))
	g, x1, y1 := extendedGCD(r, a)

	// x = y1 - (b/a)*x1, y = x1
	x = new(big.Int).Mul(q, x1)
	x.Sub(y1, x)
	return g, x, x1
}

// ModInverse returns d in [0, m) with (a*d) mod m == 1. It fails with
// ErrNoModularInverse when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if a == nil || m == nil || m.Cmp(bigOne) <= 0 {
		return nil, fmt.Errorf("%w: modulus must be greater than 1", ErrNoModularInverse)
	}

	reduced := new(big.Int).Mod(a, m)
	g, x, _ := extendedGCD(reduced, m)
	if g.Cmp(bigOne) != 0 {
		return nil, fmt.Errorf("%w: gcd is %s", ErrNoModularInverse, g)
	}

	return x.Mod(x, m), nil
}
