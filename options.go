package assinatura

import (
	"github.com/pyurini/Gerador-e-Verificador-de-Assinaturas-Digitais/internal/crypto"
)

const (
	// DefaultKeyBits is the modulus size used by NewIdentity.
	DefaultKeyBits = 2048

	// DefaultSaltLength is the PSS salt length in bytes.
	DefaultSaltLength = crypto.DefaultSaltLength
)

// Hash identifies the digest used for PSS encoding and MGF1.
type Hash = crypto.Hash

// Supported digests. All produce 32 bytes.
const (
	SHA3_256    = crypto.SHA3_256
	SHA256      = crypto.SHA256
	BLAKE2b_256 = crypto.BLAKE2b_256
)

// ParseHash returns the Hash named by s ("sha3-256", "sha256", "blake2b-256").
func ParseHash(s string) (Hash, error) {
	return crypto.ParseHash(s)
}

// config holds signing and key generation settings.
type config struct {
	hash       Hash
	saltLength int
	keyBits    int
}

// Option configures signing, verification and identity creation.
// Signer and verifier must use the same hash and salt length.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{
		hash:       SHA3_256,
		saltLength: DefaultSaltLength,
		keyBits:    DefaultKeyBits,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) pssOptions() *crypto.PSSOptions {
	return &crypto.PSSOptions{Hash: c.hash, SaltLength: c.saltLength}
}

// WithHash sets the digest.
// Default: SHA3_256
func WithHash(h Hash) Option {
	return func(c *config) {
		c.hash = h
	}
}

// WithSaltLength sets the PSS salt length in bytes.
// A 512-bit key needs a salt of at most 30 bytes.
// Default: 32
func WithSaltLength(n int) Option {
	return func(c *config) {
		c.saltLength = n
	}
}

// WithKeyBits sets the modulus size for identities created by NewIdentity.
// Default: 2048
func WithKeyBits(bits int) Option {
	return func(c *config) {
		c.keyBits = bits
	}
}
