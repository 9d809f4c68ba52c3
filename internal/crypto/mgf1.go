package crypto

import "encoding/binary"

// MGF1 expands seed into a mask of exactly length bytes by hashing
// seed || counter for counter = 0, 1, 2, ... and concatenating the digests.
func MGF1(h Hash, seed []byte, length int) []byte {
	if length <= 0 {
		return []byte{}
	}

	out := make([]byte, 0, length+h.Size())
	var counter [4]byte
	d := h.New()

	for c := uint32(0); len(out) < length; c++ {
		binary.BigEndian.PutUint32(counter[:], c)
		d.Reset()
		d.Write(seed)
		d.Write(counter[:])
		out = d.Sum(out)
	}

	return out[:length]
}
