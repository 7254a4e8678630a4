// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

// Package keystore holds the in-memory account key material and the
// two-state wallet lifecycle: no wallet loaded (only an input buffer)
// or loaded (address plus keypair). Nothing in this package touches
// disk; persistence of the sealed key belongs to the vault.
package keystore

import (
	"sync"

	"github.com/zeweler/sui-pocket/internal/logger"
)

// State is the wallet lifecycle state: exactly [NoWallet] or [Loaded].
// Modeling the two variants as distinct types makes "address set but
// keypair missing" unrepresentable.
type State interface {
	isWalletState()
}

// NoWallet is the state before a key has been imported. Input is the
// user's in-progress key text; it is never persisted.
type NoWallet struct {
	Input string
}

func (NoWallet) isWalletState() {}

// Loaded is the state after a successful import.
type Loaded struct {
	Address string
	Keypair *Keypair
}

func (Loaded) isWalletState() {}

// Store owns the current wallet state. All transitions go through its
// methods; the keypair is zeroed whenever a Loaded state is replaced.
type Store struct {
	log *logger.Logger

	mu    sync.Mutex
	state State
}

// NewStore creates a Store in the NoWallet state with an empty input
// buffer.
func NewStore(log *logger.Logger) *Store {
	return &Store{
		log:   log,
		state: NoWallet{},
	}
}

// Import parses raw and transitions to Loaded, overwriting any existing
// loaded wallet unconditionally. On parse failure the current state is
// left untouched.
func (s *Store) Import(raw string) (string, error) {
	address, kp, err := ParseKey(raw)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.dropKeypairLocked()
	s.state = Loaded{Address: address, Keypair: kp}
	s.mu.Unlock()

	s.log.Info().Str("address", address).Msg("wallet key imported")
	return address, nil
}

// Reset returns to NoWallet with an empty input buffer, zeroing any
// held keypair.
func (s *Store) Reset() {
	s.mu.Lock()
	s.dropKeypairLocked()
	s.state = NoWallet{}
	s.mu.Unlock()
}

// dropKeypairLocked zeroes the keypair of a Loaded state. Caller holds mu.
func (s *Store) dropKeypairLocked() {
	if loaded, ok := s.state.(Loaded); ok && loaded.Keypair != nil {
		loaded.Keypair.Zero()
	}
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsLoaded reports whether a wallet is currently loaded.
func (s *Store) IsLoaded() bool {
	_, ok := s.State().(Loaded)
	return ok
}

// Address returns the loaded wallet address, if any.
func (s *Store) Address() (string, bool) {
	if loaded, ok := s.State().(Loaded); ok {
		return loaded.Address, true
	}
	return "", false
}

// Input returns the in-progress key text of the NoWallet state.
func (s *Store) Input() string {
	if nw, ok := s.State().(NoWallet); ok {
		return nw.Input
	}
	return ""
}

// SetInput updates the in-progress key text. A no-op while a wallet is
// loaded.
func (s *Store) SetInput(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.(NoWallet); ok {
		s.state = NoWallet{Input: input}
	}
}
