package crypto

// SecretCipher performs password-based key derivation and authenticated
// encryption of opaque byte blobs. It is stateless apart from its
// Argon2id tuning parameters.
//
// Sealing scheme:
//
//	salt = GenerateSalt()             (fresh per record)
//	key  = DeriveKey(password, salt)  (Argon2id, 32 bytes)
//	blob = Seal(key, plaintext)       (nonce ‖ AES-256-GCM ciphertext)
type SecretCipher interface {
	// GenerateSalt generates a random salt (16 bytes / 128 bits).
	// The salt is not a secret and is stored alongside the ciphertext.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 32-byte symmetric key from the password and
	// salt via Argon2id. The key exists only in memory.
	DeriveKey(password string, salt []byte) []byte

	// Seal encrypts plaintext under key with AES-256-GCM and returns
	// nonce ‖ ciphertext+tag. A fresh nonce is generated per call.
	Seal(key, plaintext []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. It returns
	// ErrDecryptionFailed if the authentication tag does not verify
	// (wrong key, corruption, tampering) — the causes are deliberately
	// not distinguished.
	Open(key, blob []byte) ([]byte, error)
}
