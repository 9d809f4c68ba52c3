package crypto

import (
	"crypto/rand"
	"io"
)

// randReader is the random source used for prime sampling, Miller-Rabin
// bases and PSS salts. It defaults to nil (which uses crypto/rand) but can
// be overridden for testing.
var randReader io.Reader

func random() io.Reader {
	if randReader == nil {
		return rand.Reader
	}
	return randReader
}

// SetRandReaderForTesting sets the random reader used by the package.
// This is intended for testing only. Returns a function to restore the original reader.
// Since this package is internal, this function cannot be accessed by external code.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}
