// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

// Package config assembles the wallet configuration by merging values
// from environment variables, command-line flags and an optional JSON
// file, in that order of discovery, with hard defaults applied last.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container for
// sui-pocket. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the data directory that
	// stores password.hash and private_key.enc, and the UI language.
	App App `envPrefix:"APP_"`

	// Network holds fullnode selection and request timeout settings.
	Network Network `envPrefix:"NETWORK_"`

	// Session holds authentication session settings.
	Session Session `envPrefix:"SESSION_"`

	// Refresh holds background balance refresh settings.
	Refresh Refresh `envPrefix:"REFRESH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the
	// values already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DataDir is the directory holding the wallet's persisted records.
	// Defaults to <user config dir>/sui-pocket.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// Language is the UI language code ("en" or "zh-CN").
	// Env: APP_LANGUAGE
	Language string `env:"LANGUAGE"`
}

// Network holds fullnode selection and transport settings.
type Network struct {
	// Name selects the Sui network: "devnet", "testnet" or "mainnet".
	// Env: NETWORK_NAME
	Name string `env:"NAME"`

	// RequestTimeout bounds a single fullnode RPC round trip.
	// Env: NETWORK_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds authentication session settings.
type Session struct {
	// Timeout is the sliding session lifetime (e.g. "30m").
	// Env: SESSION_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Refresh holds background balance refresh settings.
type Refresh struct {
	// AutoInterval is how often the background job refreshes the
	// balance of the loaded wallet. Zero means unset (one minute);
	// a negative value disables auto refresh.
	// Env: REFRESH_AUTO_INTERVAL
	AutoInterval time.Duration `env:"AUTO_INTERVAL"`
}

// validate rejects values that cannot be defaulted away.
func (c *StructuredConfig) validate() error {
	switch c.Network.Name {
	case "", "devnet", "dev", "testnet", "test", "mainnet", "main":
	default:
		return ErrUnknownNetwork
	}

	// Refresh.AutoInterval is exempt: negative means disabled.
	if c.Network.RequestTimeout < 0 || c.Session.Timeout < 0 {
		return ErrNegativeDuration
	}

	return nil
}

// GetStructuredConfig builds the merged configuration: flags first,
// then environment, then the JSON file if one was named by either.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}

// WalletConfig is the validated, defaulted view consumed by the wallet
// runtime.
type WalletConfig struct {
	// DataDir is the directory for password.hash, private_key.enc and
	// the log file.
	DataDir string

	// Language is the resolved UI language code.
	Language string

	// NetworkName is the resolved network name.
	NetworkName string

	// RequestTimeout bounds one fullnode call.
	RequestTimeout time.Duration

	// SessionTimeout is the sliding authentication window.
	SessionTimeout time.Duration

	// AutoRefreshInterval drives the background refresh job; zero
	// disables it.
	AutoRefreshInterval time.Duration
}

// GetWalletConfig loads, merges and defaults the wallet configuration.
func GetWalletConfig() (*WalletConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}
	return walletConfigFrom(cfg), nil
}

func walletConfigFrom(cfg *StructuredConfig) *WalletConfig {
	out := &WalletConfig{
		DataDir:             cfg.App.DataDir,
		Language:            cfg.App.Language,
		NetworkName:         cfg.Network.Name,
		RequestTimeout:      cfg.Network.RequestTimeout,
		SessionTimeout:      cfg.Session.Timeout,
		AutoRefreshInterval: cfg.Refresh.AutoInterval,
	}

	if out.DataDir == "" {
		out.DataDir = defaultDataDir()
	}
	if out.Language == "" {
		out.Language = languageFromEnv()
	}
	if out.NetworkName == "" {
		out.NetworkName = "testnet"
	}
	if out.RequestTimeout == 0 {
		out.RequestTimeout = 15 * time.Second
	}
	if out.SessionTimeout == 0 {
		out.SessionTimeout = 30 * time.Minute
	}
	switch {
	case out.AutoRefreshInterval == 0:
		out.AutoRefreshInterval = time.Minute
	case out.AutoRefreshInterval < 0:
		out.AutoRefreshInterval = 0
	}

	return out
}

// defaultDataDir is <user config dir>/sui-pocket, falling back to the
// working directory when the platform config dir cannot be resolved.
func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "sui-pocket")
}

// languageFromEnv mirrors the desktop convention of honoring LANG.
func languageFromEnv() string {
	if lang := os.Getenv("LANG"); len(lang) >= 2 && lang[:2] == "zh" {
		return "zh-CN"
	}
	return "en"
}
