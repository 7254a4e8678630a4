package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	ErrUnknownNetwork   = errors.New("unknown network name")
	ErrNegativeDuration = errors.New("durations must not be negative")
)
