package assinatura

// SignedMessage is the transport payload for a chat message: the plaintext,
// its sender and the base64 signature over the plaintext.
type SignedMessage struct {
	// Sender is the display name of the signing identity.
	Sender string `json:"sender"`
	// Content is the plaintext message.
	Content string `json:"content"`
	// Signature is the base64 RSA-PSS signature over Content.
	// Unsigned system messages carry "N/A".
	Signature string `json:"signature"`
	// IsUser distinguishes user messages from bot replies.
	IsUser bool `json:"isUser"`
}

// UnsignedSignature marks a payload that was sent without a signature.
const UnsignedSignature = "N/A"

// VerifyMessage reports whether msg carries a valid signature under key.
// Unsigned and malformed payloads are reported as invalid.
func VerifyMessage(msg *SignedMessage, key *PublicKey, opts ...Option) bool {
	if msg == nil || msg.Signature == "" || msg.Signature == UnsignedSignature {
		return false
	}
	return VerifyBase64(msg.Content, msg.Signature, key, opts...)
}

// VerificationResult is the response body for a verification request.
type VerificationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Verification result texts.
const (
	MessageValid   = "Assinatura válida!"
	MessageInvalid = "Assinatura inválida!"
)

// NewVerificationResult builds the response for a verification outcome.
func NewVerificationResult(valid bool) VerificationResult {
	if valid {
		return VerificationResult{Valid: true, Message: MessageValid}
	}
	return VerificationResult{Valid: false, Message: MessageInvalid}
}
