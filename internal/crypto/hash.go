package crypto

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hash identifies the message digest used by EMSA-PSS and MGF1.
type Hash int

const (
	// SHA3_256 is the default digest.
	SHA3_256 Hash = iota
	// SHA256 is SHA-2 with 256-bit output. Signatures made with it are
	// interoperable with crypto/rsa PSS at salt length 32.
	SHA256
	// BLAKE2b_256 is unkeyed BLAKE2b with 256-bit output.
	BLAKE2b_256
)

// New returns a fresh hash.Hash for h.
func (h Hash) New() hash.Hash {
	switch h {
	case SHA256:
		return sha256.New()
	case BLAKE2b_256:
		// New256 only fails for keys longer than 64 bytes.
		d, _ := blake2b.New256(nil)
		return d
	default:
		return sha3.New256()
	}
}

// Size returns the digest length in bytes.
func (h Hash) Size() int {
	switch h {
	case SHA256:
		return sha256.Size
	case BLAKE2b_256:
		return blake2b.Size256
	default:
		return 32
	}
}

// Valid reports whether h is a known hash.
func (h Hash) Valid() bool {
	return h >= SHA3_256 && h <= BLAKE2b_256
}

func (h Hash) String() string {
	switch h {
	case SHA3_256:
		return "sha3-256"
	case SHA256:
		return "sha256"
	case BLAKE2b_256:
		return "blake2b-256"
	}
	return fmt.Sprintf("Hash(%d)", int(h))
}

// ParseHash returns the Hash named by s. Matching is case-insensitive.
func ParseHash(s string) (Hash, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sha3-256", "sha3_256", "":
		return SHA3_256, nil
	case "sha256", "sha-256":
		return SHA256, nil
	case "blake2b-256", "blake2b_256":
		return BLAKE2b_256, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedHash, s)
}

func (h Hash) sum(parts ...[]byte) []byte {
	d := h.New()
	for _, p := range parts {
		d.Write(p)
	}
	return d.Sum(nil)
}
