// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

// Package vault persists the wallet's two credential records: the
// Argon2id password hash (password.hash) and the account secret key
// sealed under a password-derived key (private_key.enc). The vault owns
// the on-disk records exclusively; it holds no decrypted secrets beyond
// the duration of a call.
package vault

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/zeweler/sui-pocket/internal/crypto"
	"github.com/zeweler/sui-pocket/internal/logger"
)

const (
	passwordFileName = "password.hash"
	secretFileName   = "private_key.enc"
)

// Vault stores and verifies the wallet password and seals the account
// secret key at rest. Both records live in a single directory that is
// created on demand.
type Vault struct {
	passwordFile string
	secretFile   string
	cipher       crypto.SecretCipher
	log          *logger.Logger

	mu sync.Mutex
	// passwordHash caches the PHC string read from disk. Empty means not
	// loaded; VerifyPassword falls back to re-reading the file so a
	// record that exists on disk is never lost to a stale cache.
	passwordHash string
}

// NewVault creates a Vault rooted at dir. The directory does not need
// to exist yet.
func NewVault(dir string, cipher crypto.SecretCipher, log *logger.Logger) *Vault {
	return &Vault{
		passwordFile: filepath.Join(dir, passwordFileName),
		secretFile:   filepath.Join(dir, secretFileName),
		cipher:       cipher,
		log:          log,
	}
}

// IsInitialized reports whether a password record is persisted. Its
// negation is the first-run condition.
func (v *Vault) IsInitialized() bool {
	v.mu.Lock()
	if v.passwordHash != "" {
		v.mu.Unlock()
		return true
	}
	v.mu.Unlock()

	data, err := os.ReadFile(v.passwordFile)
	return err == nil && strings.TrimSpace(string(data)) != ""
}

// SetPassword validates, hashes and persists a new wallet password.
// Returns ErrEmptyPassword if the trimmed password is empty and
// ErrPasswordMismatch if the confirmation differs. Any previous record
// is overwritten atomically.
func (v *Vault) SetPassword(newPassword, confirmPassword string) error {
	pw := strings.TrimSpace(newPassword)
	pwc := strings.TrimSpace(confirmPassword)

	if pw == "" {
		return ErrEmptyPassword
	}
	if pw != pwc {
		return ErrPasswordMismatch
	}

	encoded, err := hashPassword(pw, defaultArgonParams())
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := writeFileAtomic(v.passwordFile, []byte(encoded)); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	v.mu.Lock()
	v.passwordHash = encoded
	v.mu.Unlock()

	v.log.Info().Msg("password record created")
	return nil
}

// VerifyPassword checks attempt against the stored password record.
// Returns ErrPasswordNotFound when no record exists, ErrCorruptRecord
// when the record cannot be parsed, and (false, nil) for a well-formed
// record that does not match.
func (v *Vault) VerifyPassword(attempt string) (bool, error) {
	stored, err := v.loadPasswordHash()
	if err != nil {
		return false, err
	}

	rec, err := parsePasswordRecord(stored)
	if err != nil {
		return false, err
	}

	return rec.verify(attempt), nil
}

// loadPasswordHash returns the cached PHC string, re-reading the file
// when the cache is empty.
func (v *Vault) loadPasswordHash() (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.passwordHash != "" {
		return v.passwordHash, nil
	}

	data, err := os.ReadFile(v.passwordFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrPasswordNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	stored := strings.TrimSpace(string(data))
	if stored == "" {
		return "", ErrPasswordNotFound
	}

	v.passwordHash = stored
	return stored, nil
}

// SaveEncryptedSecret seals secretText under a key derived from
// password and a freshly generated salt (never the password record's
// salt) and writes the record atomically, overwriting any previous one.
//
// Record layout: base64(salt) ‖ "|" ‖ base64(nonce ‖ ciphertext+tag).
func (v *Vault) SaveEncryptedSecret(secretText, password string) error {
	salt, err := v.cipher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}

	key := v.cipher.DeriveKey(password, salt)
	blob, err := v.cipher.Seal(key, []byte(secretText))
	if err != nil {
		return fmt.Errorf("seal secret: %w", err)
	}

	record := base64.RawStdEncoding.EncodeToString(salt) + "|" +
		base64.StdEncoding.EncodeToString(blob)

	if err := writeFileAtomic(v.secretFile, []byte(record)); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	v.log.Info().Msg("encrypted secret record written")
	return nil
}

// LoadEncryptedSecret reads and decrypts the stored secret. found is
// false when no record file exists — not an error, nothing was saved
// yet. Returns ErrInvalidSecretFormat for an undecodable record and
// propagates crypto.ErrDecryptionFailed on a wrong password.
func (v *Vault) LoadEncryptedSecret(password string) (secret string, found bool, err error) {
	data, err := os.ReadFile(v.secretFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	salt, blob, err := parseSecretRecord(string(data))
	if err != nil {
		return "", false, err
	}

	key := v.cipher.DeriveKey(password, salt)
	plaintext, err := v.cipher.Open(key, blob)
	if err != nil {
		return "", false, err
	}

	return string(plaintext), true, nil
}

// HasEncryptedSecret reports whether a secret record file exists.
func (v *Vault) HasEncryptedSecret() bool {
	_, err := os.Stat(v.secretFile)
	return err == nil
}

// DeleteEncryptedSecret removes the secret record. Calling it when no
// record exists is a no-op.
func (v *Vault) DeleteEncryptedSecret() error {
	if err := os.Remove(v.secretFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// Reset deletes both records and clears the cached hash, returning the
// vault to the first-run state.
func (v *Vault) Reset() error {
	if err := v.DeleteEncryptedSecret(); err != nil {
		return err
	}
	if err := os.Remove(v.passwordFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	v.mu.Lock()
	v.passwordHash = ""
	v.mu.Unlock()

	v.log.Warn().Msg("vault reset, all records removed")
	return nil
}

// parseSecretRecord splits a record into its salt and sealed blob,
// validating the minimum payload length of nonce + tag.
func parseSecretRecord(record string) (salt, blob []byte, err error) {
	parts := strings.Split(strings.TrimSpace(record), "|")
	if len(parts) != 2 {
		return nil, nil, ErrInvalidSecretFormat
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil || len(salt) == 0 {
		return nil, nil, ErrInvalidSecretFormat
	}

	blob, err = base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(blob) < crypto.NonceSize+crypto.TagSize {
		return nil, nil, ErrInvalidSecretFormat
	}

	return salt, blob, nil
}

// writeFileAtomic writes data to a temp file in the target directory
// and renames it into place, so readers never observe a partial record.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
