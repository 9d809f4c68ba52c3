package crypto

import (
	"fmt"
	"math/big"
)

// PSSOptions selects the digest and salt length for Sign and Verify.
// Signer and verifier must agree on both.
type PSSOptions struct {
	// Hash is the digest for the message, M' and MGF1.
	Hash Hash
	// SaltLength is the salt size in bytes.
	SaltLength int
}

// DefaultPSSOptions is used when nil options are passed.
var DefaultPSSOptions = PSSOptions{Hash: SHA3_256, SaltLength: DefaultSaltLength}

func (o *PSSOptions) orDefault() PSSOptions {
	if o == nil {
		return DefaultPSSOptions
	}
	return *o
}

// Sign computes an RSA-PSS signature over message. The signature is the
// big-endian encoding of EM^d mod n, left-padded to the modulus size.
func Sign(message []byte, key *PrivateKey, opts *PSSOptions) ([]byte, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	o := opts.orDefault()
	if !o.Hash.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedHash, o.Hash)
	}

	emBits := key.N.BitLen() - 1
	em, err := EncodePSS(o.Hash, message, emBits, o.SaltLength)
	if err != nil {
		return nil, err
	}

	m := new(big.Int).SetBytes(em)
	s := m.Exp(m, key.D, key.N)

	return s.FillBytes(make([]byte, key.Size())), nil
}

// Verify reports whether sig is a valid RSA-PSS signature of message under
// key. Malformed signatures, wrong keys and tampered messages all yield
// false; Verify never panics.
func Verify(message, sig []byte, key *PublicKey, opts *PSSOptions) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()

	if key.Validate() != nil {
		return false
	}

	o := opts.orDefault()
	if !o.Hash.Valid() {
		return false
	}

	if len(sig) != key.Size() {
		return false
	}

	s := new(big.Int).SetBytes(sig)
	if s.Cmp(key.N) >= 0 {
		return false
	}

	emBits := key.N.BitLen() - 1
	emLen := (emBits + 7) / 8

	m := s.Exp(s, key.E, key.N)
	if m.BitLen() > emLen*8 {
		return false
	}

	return VerifyPSS(o.Hash, message, m.FillBytes(make([]byte, emLen)), emBits, o.SaltLength)
}
