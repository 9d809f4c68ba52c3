package assinatura

import (
	"github.com/pyurini/Gerador-e-Verificador-de-Assinaturas-Digitais/internal/crypto"
)

// Sign returns the RSA-PSS signature of the UTF-8 message under key.
// The signature is as long as the modulus in bytes.
func Sign(message string, key *PrivateKey, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	return crypto.Sign([]byte(message), key, cfg.pssOptions())
}

// Verify reports whether signature is a valid RSA-PSS signature of message
// under key. It never returns an error.
func Verify(message string, signature []byte, key *PublicKey, opts ...Option) bool {
	cfg := newConfig(opts)
	return crypto.Verify([]byte(message), signature, key, cfg.pssOptions())
}

// SignBase64 is Sign with the signature encoded as standard base64, the
// form carried in transport payloads.
func SignBase64(message string, key *PrivateKey, opts ...Option) (string, error) {
	sig, err := Sign(message, key, opts...)
	if err != nil {
		return "", err
	}
	return crypto.ToBase64(sig), nil
}

// VerifyBase64 decodes a base64 signature and verifies it. Signatures that
// fail to decode are reported as invalid.
func VerifyBase64(message, signature string, key *PublicKey, opts ...Option) bool {
	sig, err := crypto.DecodeBase64(signature)
	if err != nil {
		return false
	}
	return Verify(message, sig, key, opts...)
}
