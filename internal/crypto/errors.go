package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned when the GCM authentication tag
	// does not verify. Wrong password and tampered data are
	// indistinguishable here, and no partial plaintext is ever exposed.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrCiphertextTooShort is returned when a blob is shorter than
	// nonce + authentication tag.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)
