package assinatura

import (
	"sync"
	"testing"
)

var (
	testIdentitiesMu sync.Mutex
	testIdentities   = map[string]*Identity{}
)

// testIdentity returns a 1024-bit identity, generated once per name.
func testIdentity(tb testing.TB, name string) *Identity {
	tb.Helper()

	testIdentitiesMu.Lock()
	defer testIdentitiesMu.Unlock()

	if id, ok := testIdentities[name]; ok {
		return id
	}

	id, err := NewIdentity(name, WithKeyBits(1024))
	if err != nil {
		tb.Fatalf("NewIdentity(%q) error = %v", name, err)
	}
	testIdentities[name] = id
	return id
}
