package crypto

import (
	"sync"
	"testing"
)

var (
	testKeysMu sync.Mutex
	testKeys   = map[int]*KeyPair{}
)

// testKeyPair returns a key pair of the given size, generating it once per
// test binary.
func testKeyPair(tb testing.TB, bits int) *KeyPair {
	tb.Helper()

	testKeysMu.Lock()
	defer testKeysMu.Unlock()

	if kp, ok := testKeys[bits]; ok {
		return kp
	}

	kp, err := GenerateKeyPair(bits)
	if err != nil {
		tb.Fatalf("GenerateKeyPair(%d) error = %v", bits, err)
	}
	testKeys[bits] = kp
	return kp
}

// countingReader yields a repeating byte pattern starting at seed.
type countingReader struct {
	next byte
}

func (r *countingReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}
