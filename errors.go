package assinatura

import (
	"errors"
	"fmt"

	"github.com/pyurini/Gerador-e-Verificador-de-Assinaturas-Digitais/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidKeySize is returned when a requested key size is too small or odd.
	ErrInvalidKeySize = crypto.ErrInvalidKeySize

	// ErrInvalidKey is returned when a key is nil or structurally unusable.
	ErrInvalidKey = crypto.ErrInvalidKey

	// ErrEncodingTooShort is returned when the key is too small for the
	// configured hash and salt length. Use a larger key or a shorter salt.
	ErrEncodingTooShort = crypto.ErrEncodingTooShort

	// ErrUnsupportedHash is returned for an unknown hash name.
	ErrUnsupportedHash = crypto.ErrUnsupportedHash

	// ErrInvalidSaltLength is returned for a negative salt length.
	ErrInvalidSaltLength = crypto.ErrInvalidSaltLength

	// ErrMissingName is returned when an identity is created without a name.
	ErrMissingName = errors.New("identity name is required")

	// ErrInvalidKeyData is returned when imported key data is invalid.
	ErrInvalidKeyData = errors.New("invalid key data")
)

// SignatureError is implemented by all typed errors of this package.
type SignatureError interface {
	error
	SignatureError() // marker method
}

// KeyGenerationError reports a failure to generate a key pair.
type KeyGenerationError struct {
	Bits int
	Err  error
}

func (e *KeyGenerationError) Error() string {
	return fmt.Sprintf("generate %d-bit key pair: %v", e.Bits, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyGenerationError) Unwrap() error {
	return e.Err
}

// SignatureError implements the SignatureError interface.
func (e *KeyGenerationError) SignatureError() {}

// SigningError reports a failure to sign a message on behalf of an identity.
type SigningError struct {
	Signer string
	Err    error
}

func (e *SigningError) Error() string {
	if e.Signer == "" {
		return fmt.Sprintf("sign message: %v", e.Err)
	}
	return fmt.Sprintf("sign message as %q: %v", e.Signer, e.Err)
}

// Unwrap returns the underlying error.
func (e *SigningError) Unwrap() error {
	return e.Err
}

// SignatureError implements the SignatureError interface.
func (e *SigningError) SignatureError() {}
