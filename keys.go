package assinatura

import (
	"github.com/pyurini/Gerador-e-Verificador-de-Assinaturas-Digitais/internal/crypto"
)

// PublicKey is an RSA public key (e, n). e is always 65537.
type PublicKey = crypto.PublicKey

// PrivateKey is an RSA private key (d, n).
type PrivateKey = crypto.PrivateKey

// KeyPair holds matching public and private keys sharing one modulus.
type KeyPair = crypto.KeyPair

// GenerateKeyPair creates a new RSA key pair with a modulus of exactly bits
// bits. 512 bits is enough for tests with a shortened salt; use 2048 for
// real use. Generation blocks for a variable time dominated by primality
// testing.
func GenerateKeyPair(bits int) (*KeyPair, error) {
	kp, err := crypto.GenerateKeyPair(bits)
	if err != nil {
		return nil, &KeyGenerationError{Bits: bits, Err: err}
	}
	return kp, nil
}

// ValidateKeyPair reports whether the two halves of kp belong together.
func ValidateKeyPair(kp *KeyPair) bool {
	return crypto.ValidateKeyPair(kp)
}
