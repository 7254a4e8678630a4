// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

// Package crypto implements the password-based cryptography used by the
// wallet vault: Argon2id key derivation and AES-256-GCM authenticated
// encryption of opaque byte blobs. It knows nothing about files, sessions
// or the network.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// NonceSize is the AES-GCM nonce length in bytes. Every sealed blob
// starts with a nonce of this size.
const NonceSize = 12

// TagSize is the AES-GCM authentication tag length in bytes. A valid
// sealed blob is never shorter than NonceSize + TagSize.
const TagSize = 16

// SaltSize is the length of freshly generated salts in bytes.
const SaltSize = 16

// secretCipher is the private implementation of [SecretCipher].
type secretCipher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewSecretCipher constructs a [SecretCipher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewSecretCipher() SecretCipher {
	return &secretCipher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt implements [SecretCipher]. It reads SaltSize random bytes
// from the OS CSPRNG. Returns an error only if the random read fails.
func (c *secretCipher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [SecretCipher]. It derives a 256-bit symmetric
// key from password and salt using Argon2id with the parameters stored
// in the receiver. The output is deterministic for a given (password,
// salt) pair and exactly argonKeyLen bytes long; Argon2id produces the
// requested length natively, so no truncation or padding is involved.
func (c *secretCipher) DeriveKey(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)
}

// Seal implements [SecretCipher]. It encrypts plaintext with key using
// AES-256-GCM. A fresh random 12-byte nonce is generated per call and
// prepended to the ciphertext so that Open can locate it:
// blob = nonce ‖ ciphertext+tag. Returns an error if cipher creation or
// the random nonce read fails; valid inputs have no failure path beyond
// the CSPRNG.
func (c *secretCipher) Seal(key, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

// Open implements [SecretCipher]. It decrypts a blob produced by
// [secretCipher.Seal]. The blob must be at least NonceSize + TagSize
// bytes. Any authentication failure — wrong key, corrupted data,
// tampering — surfaces as [ErrDecryptionFailed] without distinguishing
// the cause.
func (c *secretCipher) Open(key, blob []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize+gcm.Overhead() {
		return nil, ErrCiphertextTooShort
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Almost always a wrong password producing a wrong key.
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
