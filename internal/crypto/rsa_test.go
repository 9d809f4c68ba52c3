package crypto

import (
	stdcrypto "crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"math/big"
	"testing"
)

func TestSignVerify_RoundTrip(t *testing.T) {
	kp := testKeyPair(t, 1024)

	for _, h := range []Hash{SHA3_256, SHA256, BLAKE2b_256} {
		t.Run(h.String(), func(t *testing.T) {
			opts := &PSSOptions{Hash: h, SaltLength: DefaultSaltLength}
			for _, msg := range []string{"", "hello", "Olá, Visitante! Como posso ajudar?", string(make([]byte, 4096))} {
				sig, err := Sign([]byte(msg), &kp.Private, opts)
				if err != nil {
					t.Fatalf("Sign() error = %v", err)
				}
				if len(sig) != kp.Public.Size() {
					t.Errorf("len(sig) = %d, want %d", len(sig), kp.Public.Size())
				}
				if !Verify([]byte(msg), sig, &kp.Public, opts) {
					t.Errorf("Verify(%q) = false", msg)
				}
			}
		})
	}
}

func TestSignVerify_DefaultOptions(t *testing.T) {
	kp := testKeyPair(t, 1024)

	sig, err := Sign([]byte("hello"), &kp.Private, nil)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if !Verify([]byte("hello"), sig, &kp.Public, nil) {
		t.Error("Verify() = false with default options")
	}
	if !Verify([]byte("hello"), sig, &kp.Public, &DefaultPSSOptions) {
		t.Error("Verify() = false with explicit default options")
	}
	if Verify([]byte("hello"), sig, &kp.Public, &PSSOptions{Hash: SHA256, SaltLength: DefaultSaltLength}) {
		t.Error("Verify() = true with a different hash")
	}
}

func TestSign_NonDeterministic(t *testing.T) {
	kp := testKeyPair(t, 1024)

	a, err := Sign([]byte("hello"), &kp.Private, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Sign([]byte("hello"), &kp.Private, nil)
	if err != nil {
		t.Fatal(err)
	}

	if string(a) == string(b) {
		t.Error("two signatures of the same message are identical")
	}
	if !Verify([]byte("hello"), a, &kp.Public, nil) || !Verify([]byte("hello"), b, &kp.Public, nil) {
		t.Error("both signatures should verify")
	}
}

func TestVerify_MessageBitFlips(t *testing.T) {
	kp := testKeyPair(t, 1024)
	msg := []byte("hello")

	sig, err := Sign(msg, &kp.Private, nil)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(msg)*8; i++ {
		tampered := append([]byte(nil), msg...)
		tampered[i/8] ^= 1 << (i % 8)
		if Verify(tampered, sig, &kp.Public, nil) {
			t.Errorf("Verify() accepted message with bit %d flipped", i)
		}
	}
}

func TestVerify_SignatureBitFlips(t *testing.T) {
	kp := testKeyPair(t, 1024)
	msg := []byte("hello")

	sig, err := Sign(msg, &kp.Private, nil)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(sig)*8; i++ {
		tampered := append([]byte(nil), sig...)
		tampered[i/8] ^= 1 << (i % 8)
		if Verify(msg, tampered, &kp.Public, nil) {
			t.Errorf("Verify() accepted signature with bit %d flipped", i)
		}
	}
}

func TestVerify_CorruptedLastByte(t *testing.T) {
	kp := testKeyPair(t, 1024)

	sig, err := Sign([]byte("hello"), &kp.Private, nil)
	if err != nil {
		t.Fatal(err)
	}
	sig[len(sig)-1] ^= 0xff

	if Verify([]byte("hello"), sig, &kp.Public, nil) {
		t.Error("Verify() accepted signature with corrupted last byte")
	}
}

func TestVerify_WrongKey(t *testing.T) {
	kp := testKeyPair(t, 1024)
	other, err := GenerateKeyPair(1024)
	if err != nil {
		t.Fatal(err)
	}

	sig, err := Sign([]byte("hello"), &kp.Private, nil)
	if err != nil {
		t.Fatal(err)
	}

	if Verify([]byte("hello"), sig, &other.Public, nil) {
		t.Error("Verify() accepted signature under a different public key")
	}
}

func TestVerify_MalformedSignatures(t *testing.T) {
	kp := testKeyPair(t, 1024)
	size := kp.Public.Size()

	allOnes := make([]byte, size)
	for i := range allOnes {
		allOnes[i] = 0xff
	}

	tests := []struct {
		name string
		sig  []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"one byte short", make([]byte, size-1)},
		{"one byte long", make([]byte, size+1)},
		{"equal to modulus", kp.Public.N.FillBytes(make([]byte, size))},
		{"above modulus", allOnes},
		{"zero", make([]byte, size)},
		{"one", big.NewInt(1).FillBytes(make([]byte, size))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Verify([]byte("hello"), tt.sig, &kp.Public, nil) {
				t.Error("Verify() = true, want false")
			}
		})
	}
}

func TestVerify_InvalidKeysAndOptions(t *testing.T) {
	kp := testKeyPair(t, 1024)
	sig, err := Sign([]byte("hello"), &kp.Private, nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		key  *PublicKey
		opts *PSSOptions
	}{
		{"nil key", nil, nil},
		{"empty key", &PublicKey{}, nil},
		{"wrong exponent", &PublicKey{E: big.NewInt(3), N: kp.Public.N}, nil},
		{"unknown hash", &kp.Public, &PSSOptions{Hash: Hash(99), SaltLength: DefaultSaltLength}},
		{"negative salt", &kp.Public, &PSSOptions{Hash: SHA3_256, SaltLength: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Verify([]byte("hello"), sig, tt.key, tt.opts) {
				t.Error("Verify() = true, want false")
			}
		})
	}
}

func TestSign_InvalidKey(t *testing.T) {
	tests := []struct {
		name string
		key  *PrivateKey
	}{
		{"nil key", nil},
		{"empty key", &PrivateKey{}},
		{"even modulus", &PrivateKey{D: big.NewInt(3), N: big.NewInt(100)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sign([]byte("hello"), tt.key, nil)
			if !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Sign() error = %v, want ErrInvalidKey", err)
			}
		})
	}
}

func TestSign_UnsupportedHash(t *testing.T) {
	kp := testKeyPair(t, 1024)
	_, err := Sign([]byte("hello"), &kp.Private, &PSSOptions{Hash: Hash(7), SaltLength: 32})
	if !errors.Is(err, ErrUnsupportedHash) {
		t.Errorf("Sign() error = %v, want ErrUnsupportedHash", err)
	}
}

func TestSign_512BitKey(t *testing.T) {
	kp := testKeyPair(t, 512)

	// 64-byte blocks cannot hold a 32-byte hash and a 32-byte salt.
	_, err := Sign([]byte("hello"), &kp.Private, nil)
	if !errors.Is(err, ErrEncodingTooShort) {
		t.Fatalf("Sign() error = %v, want ErrEncodingTooShort", err)
	}

	opts := &PSSOptions{Hash: SHA3_256, SaltLength: 16}
	sig, err := Sign([]byte("hello"), &kp.Private, opts)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if !Verify([]byte("hello"), sig, &kp.Public, opts) {
		t.Error("Verify() = false for 512-bit key with 16-byte salt")
	}

	other := testKeyPair(t, 1024)
	if Verify([]byte("hello"), sig, &other.Public, opts) {
		t.Error("Verify() = true under a different key")
	}
}

func TestSignVerify_UnalignedModulusSizes(t *testing.T) {
	for _, bits := range []int{1026, 1032} {
		kp := testKeyPair(t, bits)
		sig, err := Sign([]byte("size"), &kp.Private, nil)
		if err != nil {
			t.Fatalf("bits=%d: Sign() error = %v", bits, err)
		}
		if !Verify([]byte("size"), sig, &kp.Public, nil) {
			t.Errorf("bits=%d: Verify() = false", bits)
		}
	}
}

func TestInterop_StdlibVerifiesOurSignature(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatal(err)
	}
	key := &PrivateKey{D: priv.D, N: priv.N}
	opts := &PSSOptions{Hash: SHA256, SaltLength: DefaultSaltLength}

	msg := []byte("interoperable")
	sig, err := Sign(msg, key, opts)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	digest := sha256.Sum256(msg)
	err = rsa.VerifyPSS(&priv.PublicKey, stdcrypto.SHA256, digest[:], sig, &rsa.PSSOptions{SaltLength: DefaultSaltLength})
	if err != nil {
		t.Errorf("rsa.VerifyPSS() error = %v", err)
	}
}

func TestInterop_WeVerifyStdlibSignature(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatal(err)
	}
	pub := &PublicKey{E: big.NewInt(int64(priv.E)), N: priv.N}
	opts := &PSSOptions{Hash: SHA256, SaltLength: DefaultSaltLength}

	msg := []byte("interoperable")
	digest := sha256.Sum256(msg)
	sig, err := rsa.SignPSS(rand.Reader, priv, stdcrypto.SHA256, digest[:], &rsa.PSSOptions{SaltLength: DefaultSaltLength})
	if err != nil {
		t.Fatalf("rsa.SignPSS() error = %v", err)
	}

	if !Verify(msg, sig, pub, opts) {
		t.Error("Verify() rejected a crypto/rsa PSS signature")
	}
	if Verify([]byte("interoperable?"), sig, pub, opts) {
		t.Error("Verify() accepted a crypto/rsa signature for another message")
	}
}

func BenchmarkSign1024(b *testing.B) {
	kp := testKeyPair(b, 1024)
	msg := []byte("benchmark")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sign(msg, &kp.Private, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify1024(b *testing.B) {
	kp := testKeyPair(b, 1024)
	msg := []byte("benchmark")
	sig, _ := Sign(msg, &kp.Private, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Verify(msg, sig, &kp.Public, nil) {
			b.Fatal("verify failed")
		}
	}
}

func TestSignVerify_ByteAlignedEncoding(t *testing.T) {
	// A 1025-bit modulus gives emBits = 1024, so EM is one byte shorter
	// than the signature.
	var kp *KeyPair
	for kp == nil {
		p, err := GeneratePrime(513)
		if err != nil {
			t.Fatal(err)
		}
		q, err := GeneratePrime(512)
		if err != nil {
			t.Fatal(err)
		}
		phi := new(big.Int).Mul(new(big.Int).Sub(p, bigOne), new(big.Int).Sub(q, bigOne))
		e := big.NewInt(PublicExponent)
		d, err := ModInverse(e, phi)
		if err != nil {
			continue
		}
		n := new(big.Int).Mul(p, q)
		kp = &KeyPair{Public: PublicKey{E: e, N: n}, Private: PrivateKey{D: d, N: n}}
	}

	if kp.Public.N.BitLen() != 1025 {
		t.Fatalf("modulus bit length = %d, want 1025", kp.Public.N.BitLen())
	}

	sig, err := Sign([]byte("aligned"), &kp.Private, nil)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if len(sig) != 129 {
		t.Errorf("len(sig) = %d, want 129", len(sig))
	}
	if !Verify([]byte("aligned"), sig, &kp.Public, nil) {
		t.Error("Verify() = false")
	}
	if Verify([]byte("misaligned"), sig, &kp.Public, nil) {
		t.Error("Verify() = true for a different message")
	}
}
