// Package assinatura signs and verifies chat messages with RSA-PSS.
//
// Each actor that needs to sign (a bot, a user) owns an [Identity], which
// holds its own RSA key pair. Signatures travel as standard base64 strings
// next to the plaintext; the PSS salt is embedded in the signature itself.
//
// Basic usage:
//
//	bot, err := assinatura.NewIdentity("Bot")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msg, err := bot.SignMessage("Olá! Como posso ajudar?", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if assinatura.VerifyMessage(msg, bot.PublicKey()) {
//	    fmt.Println("Assinatura válida!")
//	}
//
// Key pairs are generated from scratch (Miller-Rabin primes, extended
// Euclid for the private exponent) and default to 2048 bits, which can take
// a few seconds. Verification never returns an error: malformed input,
// wrong keys and tampered messages all report false.
package assinatura
