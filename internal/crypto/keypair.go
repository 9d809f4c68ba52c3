package crypto

import (
	"fmt"
	"math/big"
)

// PublicKey is an RSA public key: the fixed exponent E and the modulus N.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is an RSA private key: the private exponent D and the modulus N.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// KeyPair holds matching public and private keys sharing one modulus.
// It is never mutated after GenerateKeyPair returns it.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
}

// Size returns the modulus length in bytes, which is also the signature length.
func (k *PublicKey) Size() int {
	return (k.N.BitLen() + 7) / 8
}

// Validate checks that the key has a usable modulus and the fixed exponent.
func (k *PublicKey) Validate() error {
	if k == nil || k.E == nil || k.N == nil {
		return fmt.Errorf("%w: missing component", ErrInvalidKey)
	}
	if k.N.Sign() <= 0 || k.N.Bit(0) == 0 {
		return fmt.Errorf("%w: modulus must be positive and odd", ErrInvalidKey)
	}
	if !k.E.IsInt64() || k.E.Int64() != PublicExponent {
		return fmt.Errorf("%w: exponent must be %d", ErrInvalidKey, PublicExponent)
	}
	return nil
}

// Size returns the modulus length in bytes.
func (k *PrivateKey) Size() int {
	return (k.N.BitLen() + 7) / 8
}

// Validate checks that the key has a usable modulus and exponent.
func (k *PrivateKey) Validate() error {
	if k == nil || k.D == nil || k.N == nil {
		return fmt.Errorf("%w: missing component", ErrInvalidKey)
	}
	if k.N.Sign() <= 0 || k.N.Bit(0) == 0 {
		return fmt.Errorf("%w: modulus must be positive and odd", ErrInvalidKey)
	}
	if k.D.Sign() <= 0 {
		return fmt.Errorf("%w: private exponent must be positive", ErrInvalidKey)
	}
	return nil
}

// rsaPrimes carries the secret factors behind a generated key pair. Only
// the package and its tests see them.
type rsaPrimes struct {
	p, q, phi *big.Int
}

// GenerateKeyPair creates a new RSA key pair with a modulus of exactly bits
// bits and public exponent 65537. It blocks until two suitable primes are
// found, which for 2048-bit keys can take seconds.
func GenerateKeyPair(bits int) (*KeyPair, error) {
	kp, _, err := generateKeyPair(bits)
	return kp, err
}

func generateKeyPair(bits int) (*KeyPair, *rsaPrimes, error) {
	if bits < MinKeyBits || bits%2 != 0 {
		return nil, nil, fmt.Errorf("%w: %d bits (need an even size of at least %d)", ErrInvalidKeySize, bits, MinKeyBits)
	}

	e := big.NewInt(PublicExponent)
	gcd := new(big.Int)

	for {
		p, err := GeneratePrime(bits / 2)
		if err != nil {
			return nil, nil, err
		}

		q, err := GeneratePrime(bits / 2)
		if err != nil {
			return nil, nil, err
		}
		for q.Cmp(p) == 0 {
			if q, err = GeneratePrime(bits / 2); err != nil {
				return nil, nil, err
			}
		}

		n := new(big.Int).Mul(p, q)
		phi := new(big.Int).Mul(
			new(big.Int).Sub(p, bigOne),
			new(big.Int).Sub(q, bigOne),
		)

		// Both primes are redrawn when e and phi share a factor.
		if gcd.GCD(nil, nil, e, phi).Cmp(bigOne) != 0 {
			continue
		}

		d, err := ModInverse(e, phi)
		if err != nil {
			panic(fmt.Sprintf("crypto: no inverse of e after coprimality check: %v", err))
		}

		kp := &KeyPair{
			Public:  PublicKey{E: e, N: n},
			Private: PrivateKey{D: d, N: new(big.Int).Set(n)},
		}
		return kp, &rsaPrimes{p: p, q: q, phi: phi}, nil
	}
}

// ValidateKeyPair reports whether a key pair is structurally sound and its
// exponents invert each other.
func ValidateKeyPair(kp *KeyPair) bool {
	if kp == nil {
		return false
	}
	if kp.Public.Validate() != nil || kp.Private.Validate() != nil {
		return false
	}
	if kp.Public.N.Cmp(kp.Private.N) != 0 {
		return false
	}

	m := big.NewInt(2)
	c := new(big.Int).Exp(m, kp.Public.E, kp.Public.N)
	return c.Exp(c, kp.Private.D, kp.Private.N).Cmp(m) == 0
}
