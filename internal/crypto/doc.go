// Package crypto implements RSA key generation and RSA-PSS signatures on top
// of math/big. Apart from the message digest and the secure random source,
// every step is computed here from primitive arithmetic.
//
// # Algorithm Suite
//
//   - Miller-Rabin (20 random bases) behind trial division by the primes
//     below 30, used to sample primes whose two top bits are set.
//
//   - RSA key pairs with public exponent 65537. Both primes are redrawn
//     until gcd(e, phi) = 1; d is computed with the extended Euclidean
//     algorithm.
//
//   - EMSA-PSS (RFC 8017 §9.1) with MGF1 over the same digest and a salt
//     as long as the digest output. SHA3-256 is the default digest; SHA-256
//     and BLAKE2b-256 are also available.
//
// # Failure Model
//
// Key generation and signing return errors for misuse: a key too small for
// the configured hash and salt yields [ErrEncodingTooShort] and is never
// silently downgraded. Verification never returns an error. Wrong keys,
// tampered messages, malformed or out-of-range signatures all produce a
// plain false from [Verify] and [VerifyPSS].
//
// # Security Notes
//
// Nothing here is constant-time apart from the final digest comparison.
// The package is meant for message authenticity inside a trusted process,
// not as a general replacement for crypto/rsa.
package crypto
