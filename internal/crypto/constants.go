package crypto

const (
	// PublicExponent is the fixed RSA public exponent e.
	PublicExponent = 65537

	// MillerRabinRounds is the number of random bases tried per candidate.
	// A composite survives all rounds with probability at most 4^-20.
	MillerRabinRounds = 20

	// DefaultSaltLength is the PSS salt length in bytes. It matches the
	// output size of every supported hash.
	DefaultSaltLength = 32

	// MinKeyBits is the smallest modulus size GenerateKeyPair accepts.
	// Signing additionally requires the modulus to be large enough for
	// the chosen hash and salt (see EncodePSS).
	MinKeyBits = 64

	// pssTrailer is the last byte of every EMSA-PSS encoded block.
	pssTrailer = 0xbc

	// pssPrefixZeros is the number of zero bytes prepended to M'.
	pssPrefixZeros = 8
)
