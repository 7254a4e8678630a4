// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

// Package session tracks the authenticated window of the wallet: the
// auth flag, the transient session password and the sliding expiry.
// Every privileged operation gates on EffectiveAuthenticated, never on
// the raw flag.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zeweler/sui-pocket/internal/keystore"
	"github.com/zeweler/sui-pocket/internal/logger"
	"github.com/zeweler/sui-pocket/internal/vault"
)

// DefaultTimeout is the sliding session lifetime applied when the
// config does not override it.
const DefaultTimeout = 30 * time.Minute

// ErrIncorrectPassword is returned by Login for a well-formed password
// record that does not match the attempt.
var ErrIncorrectPassword = errors.New("incorrect password")

// Session gates access to the vault and the key store. The session
// password exists only between a successful login and logout, expiry or
// process end; it is never persisted.
type Session struct {
	vault   *vault.Vault
	keys    *keystore.Store
	log     *logger.Logger
	timeout time.Duration

	// now is replaceable in tests.
	now func() time.Time

	mu            sync.Mutex
	authenticated bool
	password      []byte
	expiresAt     time.Time // zero means unset
}

// NewSession wires a Session over the vault and key store. A timeout of
// zero or less selects DefaultTimeout.
func NewSession(v *vault.Vault, keys *keystore.Store, timeout time.Duration, log *logger.Logger) *Session {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Session{
		vault:   v,
		keys:    keys,
		log:     log,
		timeout: timeout,
		now:     time.Now,
	}
}

// NeedsSetup reports the first-run condition: no password record exists
// yet.
func (s *Session) NeedsSetup() bool {
	return !s.vault.IsInitialized()
}

// SetPassword creates the password record through the vault and, on
// success, establishes an authenticated session with the new password.
func (s *Session) SetPassword(newPassword, confirmPassword string) error {
	if err := s.vault.SetPassword(newPassword, confirmPassword); err != nil {
		return err
	}

	s.establish(newPassword)
	s.log.Info().Msg("password set, session established")
	return nil
}

// Login verifies attempt against the vault. On success it establishes
// the session and tries to auto-load a stored encrypted secret into the
// key store. The auto-load step is best effort: its failure is reported
// through autoLoaded=false and a warning log, never through err.
//
// Returns ErrIncorrectPassword for a non-matching attempt and
// propagates vault errors (no record, corrupt record, storage).
func (s *Session) Login(attempt string) (autoLoaded bool, err error) {
	ok, err := s.vault.VerifyPassword(attempt)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrIncorrectPassword
	}

	s.establish(attempt)
	s.log.Info().Msg("login successful")

	return s.autoLoadSecret(attempt), nil
}

// autoLoadSecret feeds a stored secret, if any, to the key store.
// Failures are downgraded to warnings: a corrupt or undecryptable
// record must not block authentication.
func (s *Session) autoLoadSecret(password string) bool {
	secret, found, err := s.vault.LoadEncryptedSecret(password)
	if err != nil {
		s.log.Warn().Err(err).Msg("stored key auto-load failed")
		return false
	}
	if !found {
		return false
	}

	if _, err := s.keys.Import(secret); err != nil {
		s.log.Warn().Err(err).Msg("stored key does not parse")
		return false
	}
	return true
}

// establish flips the session to authenticated, retains the password in
// memory only, and arms the expiry.
func (s *Session) establish(password string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wipePasswordLocked()
	s.authenticated = true
	s.password = []byte(password)
	s.expiresAt = s.now().Add(s.timeout)
}

// Logout clears the auth flag, the session password and expiry, and
// resets the key store to the no-wallet state.
func (s *Session) Logout() {
	s.mu.Lock()
	s.authenticated = false
	s.wipePasswordLocked()
	s.expiresAt = time.Time{}
	s.mu.Unlock()

	s.keys.Reset()
	s.log.Info().Msg("logged out")
}

func (s *Session) wipePasswordLocked() {
	for i := range s.password {
		s.password[i] = 0
	}
	s.password = nil
}

// Extend re-arms the sliding expiry from now. Call on user activity.
func (s *Session) Extend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.authenticated {
		s.expiresAt = s.now().Add(s.timeout)
	}
}

// IsExpired reports whether the expiry is set and in the past.
func (s *Session) IsExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.expiresAt.IsZero() && s.now().After(s.expiresAt)
}

// EffectiveAuthenticated is the gate for all privileged operations:
// authenticated and not expired.
func (s *Session) EffectiveAuthenticated() bool {
	s.mu.Lock()
	authenticated := s.authenticated
	s.mu.Unlock()
	return authenticated && !s.IsExpired()
}

// Password returns a copy of the transient session password, used to
// re-seal the account key on import. Fails when the session is not
// effectively authenticated.
func (s *Session) Password() (string, error) {
	if !s.EffectiveAuthenticated() {
		return "", fmt.Errorf("no active session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.password), nil
}

// setNow replaces the clock. Test hook.
func (s *Session) setNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
