// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors used throughout sui-pocket.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on
// *Logger.
//
// Secret material — passwords, derived keys, decrypted key text — must
// never reach a log call site. The logger has no redaction layer; the
// callers simply do not hand it secrets.
package logger

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing
// the application to add helper methods without modifying the upstream
// type.
type Logger struct {
	zerolog.Logger
}

// NewWalletLogger constructs a *Logger for the interactive wallet. The
// TUI owns the terminal, so output goes to wallet.log inside dataDir,
// falling back to stderr if the file cannot be opened.
func NewWalletLogger(dataDir string) *Logger {
	configureGlobals()

	var out *os.File
	if err := os.MkdirAll(dataDir, 0o700); err == nil {
		f, err := os.OpenFile(filepath.Join(dataDir, "wallet.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err == nil {
			out = f
		}
	}
	if out == nil {
		out = os.Stderr
	}

	logger := zerolog.New(out).With().
		Str("role", "wallet").
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
