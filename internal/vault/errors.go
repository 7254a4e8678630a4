package vault

import "errors"

var (
	// ErrEmptyPassword is returned when the trimmed password is empty.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrPasswordNotFound is returned when no password record exists on disk.
	ErrPasswordNotFound = errors.New("no saved password found")

	// ErrCorruptRecord is returned when the stored password hash cannot be
	// parsed. The record is unusable until reset; it is never silently fixed.
	ErrCorruptRecord = errors.New("stored password record is corrupt")

	// ErrInvalidSecretFormat is returned when the encrypted secret record
	// cannot be split into salt and payload, or the payload is shorter than
	// nonce plus authentication tag.
	ErrInvalidSecretFormat = errors.New("invalid encrypted secret format")

	// ErrStorage wraps file-system failures (permissions, disk full). The
	// underlying cause is preserved in the error message for diagnostics.
	ErrStorage = errors.New("storage error")
)
