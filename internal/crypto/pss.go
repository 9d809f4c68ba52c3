package crypto

import (
	"crypto/subtle"
	"fmt"
	"io"
)

// EncodePSS produces the EMSA-PSS encoding of message for a block of emBits
// bits, using a fresh random salt of saltLen bytes. The result is
// ceil(emBits/8) bytes: maskedDB || H || 0xBC.
func EncodePSS(h Hash, message []byte, emBits, saltLen int) ([]byte, error) {
	if saltLen < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSaltLength, saltLen)
	}

	mHash := h.sum(message)
	hLen := len(mHash)
	emLen := (emBits + 7) / 8

	if emBits < 1 || emLen < hLen+saltLen+2 {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrEncodingTooShort, emLen, hLen+saltLen+2)
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(random(), salt); err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}

	return encodePSSWithSalt(h, mHash, salt, emBits), nil
}

// encodePSSWithSalt assumes the length check in EncodePSS has passed.
func encodePSSWithSalt(h Hash, mHash, salt []byte, emBits int) []byte {
	hLen := len(mHash)
	emLen := (emBits + 7) / 8
	dbLen := emLen - hLen - 1

	// H = Hash(0x00*8 || mHash || salt)
	hh := h.sum(make([]byte, pssPrefixZeros), mHash, salt)

	em := make([]byte, emLen)
	db := em[:dbLen]

	// DB = PS || 0x01 || salt, PS already zero
	db[dbLen-len(salt)-1] = 0x01
	copy(db[dbLen-len(salt):], salt)

	mask := MGF1(h, hh, dbLen)
	subtle.XORBytes(db, db, mask)

	db[0] &= topByteMask(emLen, emBits)

	copy(em[dbLen:], hh)
	em[emLen-1] = pssTrailer

	return em
}

// VerifyPSS reports whether em is a valid EMSA-PSS encoding of message for
// a block of emBits bits and a salt of saltLen bytes. Every malformed input
// yields false.
func VerifyPSS(h Hash, message, em []byte, emBits, saltLen int) bool {
	if saltLen < 0 || emBits < 1 {
		return false
	}

	mHash := h.sum(message)
	hLen := len(mHash)
	emLen := (emBits + 7) / 8

	if len(em) != emLen || emLen < hLen+saltLen+2 {
		return false
	}
	if em[emLen-1] != pssTrailer {
		return false
	}

	dbLen := emLen - hLen - 1
	maskedDB := em[:dbLen]
	hh := em[dbLen : emLen-1]

	keep := topByteMask(emLen, emBits)
	if maskedDB[0]&^keep != 0 {
		return false
	}

	db := MGF1(h, hh, dbLen)
	subtle.XORBytes(db, db, maskedDB)
	db[0] &= keep

	psLen := dbLen - saltLen - 1
	for _, b := range db[:psLen] {
		if b != 0 {
			return false
		}
	}
	if db[psLen] != 0x01 {
		return false
	}

	salt := db[dbLen-saltLen:]
	expected := h.sum(make([]byte, pssPrefixZeros), mHash, salt)

	return subtle.ConstantTimeCompare(hh, expected) == 1
}

// topByteMask keeps the low bits of the first byte that belong to the
// emBits-bit integer; the top 8*emLen-emBits bits must be zero.
func topByteMask(emLen, emBits int) byte {
	return 0xff >> uint(8*emLen-emBits)
}
