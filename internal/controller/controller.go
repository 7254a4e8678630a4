// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

// Package controller orchestrates the wallet use cases: password setup
// and login, key import with auto-save, logout, password change and the
// balance refresh round trip. The TUI calls into this package and
// renders whatever comes back; no wallet decision is made above this
// layer.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/zeweler/sui-pocket/internal/balance"
	"github.com/zeweler/sui-pocket/internal/crypto"
	"github.com/zeweler/sui-pocket/internal/i18n"
	"github.com/zeweler/sui-pocket/internal/keystore"
	"github.com/zeweler/sui-pocket/internal/logger"
	"github.com/zeweler/sui-pocket/internal/session"
	"github.com/zeweler/sui-pocket/internal/suiclient"
	"github.com/zeweler/sui-pocket/internal/vault"
	"github.com/zeweler/sui-pocket/models"
)

// Controller wires the core packages together for one wallet instance.
type Controller struct {
	network   models.Network
	vault     *vault.Vault
	keys      *keystore.Store
	session   *session.Session
	refresher *balance.Refresher
	tr        i18n.Translator
	log       *logger.Logger

	// mu guards balanceText: the TUI mutates it from command goroutines
	// (ImportKey) while the tick loop reads it through PollBalance and
	// BalanceText.
	mu          sync.Mutex
	balanceText string
}

// New assembles a Controller over already-constructed collaborators.
func New(
	network models.Network,
	v *vault.Vault,
	keys *keystore.Store,
	sess *session.Session,
	refresher *balance.Refresher,
	tr i18n.Translator,
	log *logger.Logger,
) *Controller {
	return &Controller{
		network:   network,
		vault:     v,
		keys:      keys,
		session:   sess,
		refresher: refresher,
		tr:        tr,
		log:       log,
	}
}

// NeedsSetup reports the first-run condition.
func (c *Controller) NeedsSetup() bool {
	return c.session.NeedsSetup()
}

// Network returns the configured Sui network.
func (c *Controller) Network() models.Network {
	return c.network
}

// SetupPassword creates the local password record and starts an
// authenticated session. Used on first run and after a full reset.
func (c *Controller) SetupPassword(newPassword, confirmPassword string) error {
	return c.session.SetPassword(newPassword, confirmPassword)
}

// Login verifies the password and, when a stored key exists, tries to
// restore the wallet from encrypted storage. The returned status is
// localized text for the wallet page: restored, restore-failed warning,
// or the plain import prompt.
func (c *Controller) Login(attempt string) (status string, err error) {
	autoLoaded, err := c.session.Login(attempt)
	if err != nil {
		return "", err
	}

	switch {
	case autoLoaded:
		return c.tr.Tr("wallet_loaded_from_storage"), nil
	case c.vault.HasEncryptedSecret():
		return c.tr.Tr("stored_key_load_warning"), nil
	default:
		return c.tr.Tr("import_private_key_message"), nil
	}
}

// Logout drops the session and the in-memory key material, and forgets
// the last displayed balance.
func (c *Controller) Logout() string {
	c.session.Logout()
	c.setBalanceText("")
	return c.tr.Tr("wallet_logged_out_message")
}

// ImportKey parses raw key text, loads the resulting keypair, and saves
// the raw text encrypted under the session password so the wallet
// survives a restart. Save failures are downgraded to a warning: the
// key is already usable in memory.
func (c *Controller) ImportKey(raw string) (address, status string, err error) {
	address, err = c.keys.Import(raw)
	if err != nil {
		return "", "", err
	}

	c.setBalanceText("")

	if password, perr := c.session.Password(); perr == nil {
		if serr := c.vault.SaveEncryptedSecret(raw, password); serr != nil {
			c.log.Warn().Err(serr).Msg("imported key could not be persisted")
		}
	} else {
		c.log.Warn().Err(perr).Msg("no session password, imported key not persisted")
	}

	status = fmt.Sprintf("%s %s",
		c.tr.Tr("wallet_imported_success"),
		models.TruncateAddress(address, 6, 4))
	return address, status, nil
}

// ChangePassword re-keys the wallet: the old password is verified, the
// stored secret (if any) is recovered under it, the new password record
// is written and a fresh session established, and the secret is sealed
// again under the new password.
func (c *Controller) ChangePassword(oldPassword, newPassword, confirmPassword string) error {
	ok, err := c.vault.VerifyPassword(oldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return session.ErrIncorrectPassword
	}

	secret, found, err := c.vault.LoadEncryptedSecret(oldPassword)
	if err != nil {
		return fmt.Errorf("stored key cannot be recovered, password unchanged: %w", err)
	}

	if err := c.session.SetPassword(newPassword, confirmPassword); err != nil {
		return err
	}

	if found {
		if err := c.vault.SaveEncryptedSecret(secret, newPassword); err != nil {
			return err
		}
	}

	c.log.Info().Msg("password changed")
	return nil
}

// ResetWallet deletes both persisted records and returns the wallet to
// the first-run state.
func (c *Controller) ResetWallet() error {
	if err := c.vault.Reset(); err != nil {
		return err
	}
	c.session.Logout()
	c.setBalanceText("")
	c.log.Info().Msg("wallet reset to first run")
	return nil
}

// RequestRefresh starts a balance lookup for the loaded wallet. It is a
// silent no-op while a lookup is already pending. The returned status
// is the localized loading or no-wallet message.
func (c *Controller) RequestRefresh(ctx context.Context) (status string, started bool) {
	if !c.session.EffectiveAuthenticated() {
		return c.tr.Tr("no_wallet_loaded"), false
	}

	address, endpoint, ok := c.refreshTarget()
	if !ok {
		return c.tr.Tr("no_wallet_loaded"), false
	}

	c.refresher.Request(ctx, address, endpoint)
	return c.tr.Tr("refreshing_balance"), true
}

// RefreshTarget adapts the controller to the background refresh job:
// it names the current lookup target, or reports ok=false when there is
// no authenticated loaded wallet.
func (c *Controller) RefreshTarget() (address, endpoint string, ok bool) {
	if !c.session.EffectiveAuthenticated() {
		return "", "", false
	}
	return c.refreshTarget()
}

func (c *Controller) refreshTarget() (address, endpoint string, ok bool) {
	address, ok = c.keys.Address()
	if !ok {
		return "", "", false
	}
	return address, c.network.URL(), true
}

// PollBalance drains at most one refresh outcome. Results for an
// address that is no longer loaded are discarded: they belong to a
// wallet the user has already left. Returns the updated display text
// and whether anything changed this tick.
func (c *Controller) PollBalance() (text string, updated bool) {
	result := c.refresher.Poll()
	if result == nil {
		return c.currentBalanceText(), false
	}

	current, ok := c.keys.Address()
	if !ok || current != result.Address {
		c.log.Debug().
			Str("request_id", result.ID.String()).
			Msg("stale balance result discarded")
		return c.currentBalanceText(), false
	}

	if result.Err != nil {
		text = fmt.Sprintf("%s: %s", c.tr.Tr("async_error"), c.ErrorText(result.Err))
	} else {
		text = result.Text
	}
	c.setBalanceText(text)
	return text, true
}

// BalanceText returns the last displayed balance, or the localized
// unknown placeholder before the first successful refresh.
func (c *Controller) BalanceText() string {
	if text := c.currentBalanceText(); text != "" {
		return text
	}
	return c.tr.Tr("balance_unknown")
}

// RefreshPending reports whether a balance lookup is in flight.
func (c *Controller) RefreshPending() bool {
	return c.refresher.Pending()
}

// Tick advances time-dependent state once per presentation tick. When
// the sliding session window has lapsed the wallet is logged out;
// expired=true tells the caller to fall back to the login page.
func (c *Controller) Tick() (expired bool) {
	if c.session.IsExpired() {
		c.session.Logout()
		c.setBalanceText("")
		c.log.Info().Msg("session expired, logged out")
		return true
	}
	return false
}

func (c *Controller) setBalanceText(text string) {
	c.mu.Lock()
	c.balanceText = text
	c.mu.Unlock()
}

func (c *Controller) currentBalanceText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balanceText
}

// ExtendSession slides the session expiry forward after user activity.
func (c *Controller) ExtendSession() {
	c.session.Extend()
}

// Address returns the loaded wallet address.
func (c *Controller) Address() (string, bool) {
	return c.keys.Address()
}

// CopyAddress puts the loaded wallet address on the system clipboard.
func (c *Controller) CopyAddress() error {
	address, ok := c.keys.Address()
	if !ok {
		return keystore.ErrInvalidKeyFormat
	}
	return clipboard.WriteAll(address)
}

// ExplorerURL returns the network explorer page for the loaded address.
func (c *Controller) ExplorerURL() (string, bool) {
	address, ok := c.keys.Address()
	if !ok {
		return "", false
	}
	return c.network.AddressExplorerURL(address), true
}

// ErrorText maps wallet errors to localized user-facing messages.
// Unknown errors fall back to their Go message.
func (c *Controller) ErrorText(err error) string {
	switch {
	case errors.Is(err, vault.ErrEmptyPassword):
		return c.tr.Tr("password_empty_error")
	case errors.Is(err, vault.ErrPasswordMismatch):
		return c.tr.Tr("password_mismatch_error")
	case errors.Is(err, vault.ErrPasswordNotFound):
		return c.tr.Tr("password_not_found_error")
	case errors.Is(err, session.ErrIncorrectPassword):
		return c.tr.Tr("password_incorrect_error")
	case errors.Is(err, vault.ErrCorruptRecord):
		return c.tr.Tr("parse_hash_error")
	case errors.Is(err, vault.ErrStorage):
		return c.tr.Tr("write_error")
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return c.tr.Tr("secret_decrypt_error")
	case errors.Is(err, vault.ErrInvalidSecretFormat):
		return c.tr.Tr("secret_parse_error")
	case errors.Is(err, keystore.ErrInvalidKeyFormat), errors.Is(err, keystore.ErrUnsupportedScheme):
		return c.tr.Tr("import_private_key_failed")
	case errors.Is(err, suiclient.ErrTransport):
		return c.tr.Tr("async_error")
	default:
		return err.Error()
	}
}
