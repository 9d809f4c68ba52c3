package assinatura

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

// ExportVersion is the current export format version.
const ExportVersion = 1

// ExportedPublicKey is the shareable half of an identity: the raw numeric
// pair (e, n) in decimal plus the signature settings a verifier needs.
type ExportedPublicKey struct {
	// Version is the export format version. MUST be 1.
	Version int `json:"version"`
	// Name is the owning identity's display name. Informational only.
	Name string `json:"name,omitempty"`
	// Hash is the digest name, e.g. "sha3-256".
	Hash string `json:"hash"`
	// SaltLength is the PSS salt length in bytes.
	SaltLength int `json:"saltLength"`
	// E is the public exponent in decimal.
	E string `json:"e"`
	// N is the modulus in decimal.
	N string `json:"n"`
}

// ExportedIdentity contains all data needed to restore an identity.
// WARNING: this contains private key material - handle securely.
type ExportedIdentity struct {
	// Version is the export format version. MUST be 1.
	Version int `json:"version"`
	// Name is the identity's display name. Non-empty.
	Name string `json:"name"`
	// Hash is the digest name, e.g. "sha3-256".
	Hash string `json:"hash"`
	// SaltLength is the PSS salt length in bytes.
	SaltLength int `json:"saltLength"`
	// E is the public exponent in decimal.
	E string `json:"e"`
	// D is the private exponent in decimal.
	D string `json:"d"`
	// N is the modulus in decimal.
	N string `json:"n"`
	// ExportedAt is the export timestamp (ISO 8601). Informational only.
	ExportedAt time.Time `json:"exportedAt"`
}

func parseDecimal(field, s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: %s is required", ErrInvalidKeyData, field)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s is not a positive decimal integer", ErrInvalidKeyData, field)
	}
	return v, nil
}

func validateSettings(version int, hash string, saltLength int) (Hash, error) {
	if version != ExportVersion {
		return 0, fmt.Errorf("%w: unsupported version %d, expected %d", ErrInvalidKeyData, version, ExportVersion)
	}
	h, err := ParseHash(hash)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidKeyData, err)
	}
	if saltLength < 0 {
		return 0, fmt.Errorf("%w: saltLength must not be negative", ErrInvalidKeyData)
	}
	return h, nil
}

// PublicKey decodes and validates the exported key.
func (e *ExportedPublicKey) PublicKey() (*PublicKey, error) {
	if _, err := validateSettings(e.Version, e.Hash, e.SaltLength); err != nil {
		return nil, err
	}

	exp, err := parseDecimal("e", e.E)
	if err != nil {
		return nil, err
	}
	n, err := parseDecimal("n", e.N)
	if err != nil {
		return nil, err
	}

	pub := &PublicKey{E: exp, N: n}
	if err := pub.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyData, err)
	}
	return pub, nil
}

// Options returns the verification options recorded in the export.
// Call it after PublicKey has validated the data.
func (e *ExportedPublicKey) Options() []Option {
	h, _ := ParseHash(e.Hash)
	return []Option{WithHash(h), WithSaltLength(e.SaltLength)}
}

// Validate checks that the exported data is complete and that its key
// halves belong together.
func (e *ExportedIdentity) Validate() error {
	if _, err := validateSettings(e.Version, e.Hash, e.SaltLength); err != nil {
		return err
	}
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidKeyData)
	}

	_, err := e.keyPair()
	return err
}

func (e *ExportedIdentity) keyPair() (*KeyPair, error) {
	exp, err := parseDecimal("e", e.E)
	if err != nil {
		return nil, err
	}
	d, err := parseDecimal("d", e.D)
	if err != nil {
		return nil, err
	}
	n, err := parseDecimal("n", e.N)
	if err != nil {
		return nil, err
	}

	kp := &KeyPair{
		Public:  PublicKey{E: exp, N: n},
		Private: PrivateKey{D: d, N: new(big.Int).Set(n)},
	}
	if !ValidateKeyPair(kp) {
		return nil, fmt.Errorf("%w: key halves do not match", ErrInvalidKeyData)
	}
	return kp, nil
}

// Export returns the identity's full key material and settings.
func (i *Identity) Export() *ExportedIdentity {
	return &ExportedIdentity{
		Version:    ExportVersion,
		Name:       i.name,
		Hash:       i.cfg.hash.String(),
		SaltLength: i.cfg.saltLength,
		E:          i.keys.Public.E.String(),
		D:          i.keys.Private.D.String(),
		N:          i.keys.Public.N.String(),
		ExportedAt: time.Now().UTC(),
	}
}

// ExportPublicKey returns the identity's public key and settings for
// distribution to verifiers.
func (i *Identity) ExportPublicKey() *ExportedPublicKey {
	return &ExportedPublicKey{
		Version:    ExportVersion,
		Name:       i.name,
		Hash:       i.cfg.hash.String(),
		SaltLength: i.cfg.saltLength,
		E:          i.keys.Public.E.String(),
		N:          i.keys.Public.N.String(),
	}
}

// ImportIdentity reconstructs an identity from exported data.
func ImportIdentity(data *ExportedIdentity) (*Identity, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: no data", ErrInvalidKeyData)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	// Validate() already parsed these successfully
	kp, _ := data.keyPair()
	h, _ := ParseHash(data.Hash)

	return &Identity{
		name: strings.TrimSpace(data.Name),
		keys: kp,
		cfg: config{
			hash:       h,
			saltLength: data.SaltLength,
			keyBits:    kp.Public.N.BitLen(),
		},
	}, nil
}
