package keystore

import "errors"

var (
	// ErrInvalidKeyFormat is returned when the input matches none of the
	// supported private key encodings, or decodes to key material of the
	// wrong shape.
	ErrInvalidKeyFormat = errors.New("invalid private key format")

	// ErrUnsupportedScheme is returned for a well-formed key whose flag
	// byte selects a signature scheme other than Ed25519.
	ErrUnsupportedScheme = errors.New("unsupported signature scheme")
)
