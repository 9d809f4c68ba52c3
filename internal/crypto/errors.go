package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when a requested modulus size is too
	// small or odd.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidPrimeSize is returned when a requested prime size is below 2 bits.
	ErrInvalidPrimeSize = errors.New("invalid prime size")

	// ErrInvalidKey is returned when a key is nil or structurally unusable.
	ErrInvalidKey = errors.New("invalid key")

	// ErrNoModularInverse is returned when the operands are not coprime.
	ErrNoModularInverse = errors.New("modular inverse does not exist")

	// ErrEncodingTooShort is returned when the encoded block cannot hold the
	// hash, the salt and the two fixed bytes. It indicates a key too small
	// for the configured hash and salt length.
	ErrEncodingTooShort = errors.New("encoding error: encoded message too short for hash and salt")

	// ErrInvalidSaltLength is returned for a negative salt length.
	ErrInvalidSaltLength = errors.New("invalid salt length")

	// ErrUnsupportedHash is returned for an unknown hash identifier.
	ErrUnsupportedHash = errors.New("unsupported hash")
)
