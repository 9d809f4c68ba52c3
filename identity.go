package assinatura

import (
	"context"
	"math/big"
	"strings"
	"sync"
)

// Identity is an actor (a bot, a user) that owns an RSA key pair and signs
// on its own behalf. An Identity is immutable and safe for concurrent use.
type Identity struct {
	name string
	keys *KeyPair
	cfg  config
}

// NewIdentity generates a fresh key pair for name. Use WithKeyBits to
// choose the modulus size; WithHash and WithSaltLength apply to every
// signature the identity produces.
func NewIdentity(name string, opts ...Option) (*Identity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}

	cfg := newConfig(opts)
	kp, err := GenerateKeyPair(cfg.keyBits)
	if err != nil {
		return nil, err
	}

	return &Identity{name: name, keys: kp, cfg: cfg}, nil
}

// NewIdentityFromKeyPair wraps an existing key pair.
func NewIdentityFromKeyPair(name string, kp *KeyPair, opts ...Option) (*Identity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	if !ValidateKeyPair(kp) {
		return nil, ErrInvalidKey
	}

	return &Identity{name: name, keys: copyKeyPair(kp), cfg: newConfig(opts)}, nil
}

// NewIdentities generates one identity per name concurrently. Key
// generation cannot be interrupted; when ctx is done NewIdentities returns
// ctx.Err() and the pending generations finish in the background.
func NewIdentities(ctx context.Context, names []string, opts ...Option) ([]*Identity, error) {
	type result struct {
		idx int
		id  *Identity
		err error
	}

	results := make(chan result, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			id, err := NewIdentity(name, opts...)
			results <- result{idx: i, id: id, err: err}
		}(i, name)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
	}
	close(results)

	identities := make([]*Identity, len(names))
	var firstErr error
	for r := range results {
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
		identities[r.idx] = r.id
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return identities, nil
}

// Name returns the identity's display name.
func (i *Identity) Name() string {
	return i.name
}

// PublicKey returns a copy of the identity's public key.
func (i *Identity) PublicKey() *PublicKey {
	return &PublicKey{
		E: new(big.Int).Set(i.keys.Public.E),
		N: new(big.Int).Set(i.keys.Public.N),
	}
}

// KeyBits returns the modulus size in bits.
func (i *Identity) KeyBits() int {
	return i.keys.Public.N.BitLen()
}

// Sign signs message and returns the base64 signature.
func (i *Identity) Sign(message string) (string, error) {
	sig, err := SignBase64(message, &i.keys.Private, i.options()...)
	if err != nil {
		return "", &SigningError{Signer: i.name, Err: err}
	}
	return sig, nil
}

// Verify checks a base64 signature against this identity's public key,
// using the identity's hash and salt settings.
func (i *Identity) Verify(message, signature string) bool {
	return VerifyBase64(message, signature, &i.keys.Public, i.options()...)
}

// SignMessage signs content and wraps it in a transport payload.
func (i *Identity) SignMessage(content string, isUser bool) (*SignedMessage, error) {
	sig, err := i.Sign(content)
	if err != nil {
		return nil, err
	}
	return &SignedMessage{
		Sender:    i.name,
		Content:   content,
		Signature: sig,
		IsUser:    isUser,
	}, nil
}

// options returns the hash and salt settings the identity signs with.
func (i *Identity) options() []Option {
	return []Option{WithHash(i.cfg.hash), WithSaltLength(i.cfg.saltLength)}
}

func copyKeyPair(kp *KeyPair) *KeyPair {
	n := new(big.Int).Set(kp.Public.N)
	return &KeyPair{
		Public:  PublicKey{E: new(big.Int).Set(kp.Public.E), N: n},
		Private: PrivateKey{D: new(big.Int).Set(kp.Private.D), N: new(big.Int).Set(n)},
	}
}
