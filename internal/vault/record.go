// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

package vault

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// passwordRecord is a parsed PHC-encoded Argon2id password hash, the
// single line stored in password.hash:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<b64(salt)>$<b64(hash)>
//
// Salt and hash use unpadded standard base64. The string is
// self-describing: verification always uses the embedded parameters,
// so tuning changes never invalidate existing records.
type passwordRecord struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	hash    []byte
}

const (
	recordSaltLen = 16
	recordHashLen = 32

	// maxRecordMemory caps the m= cost a record may demand, in KiB.
	// Without the cap a crafted record forces a multi-GiB allocation
	// during verification.
	maxRecordMemory = 1 << 21
)

// hashPassword produces a fresh PHC string for password using the
// Argon2id parameters of params and a random salt.
func hashPassword(password string, p argonParams) (string, error) {
	salt := make([]byte, recordSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, recordHashLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.memory, p.time, p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// parsePasswordRecord decodes a PHC string. Returns ErrCorruptRecord
// for anything that does not parse; attacker-controlled file content
// must never panic.
func parsePasswordRecord(encoded string) (*passwordRecord, error) {
	parts := strings.Split(strings.TrimSpace(encoded), "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, ErrCorruptRecord
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, ErrCorruptRecord
	}

	rec := &passwordRecord{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &rec.memory, &rec.time, &rec.threads); err != nil {
		return nil, ErrCorruptRecord
	}

	// argon2.IDKey panics on zero rounds or zero parallelism, and an
	// oversized m= cost is a memory bomb. All three are corrupt records,
	// not verification failures.
	if rec.time == 0 || rec.threads == 0 || rec.memory > maxRecordMemory {
		return nil, ErrCorruptRecord
	}

	var err error
	if rec.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil || len(rec.salt) == 0 {
		return nil, ErrCorruptRecord
	}
	if rec.hash, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(rec.hash) == 0 {
		return nil, ErrCorruptRecord
	}

	return rec, nil
}

// verify recomputes the hash of attempt under the record's own
// parameters and compares in constant time.
func (r *passwordRecord) verify(attempt string) bool {
	recomputed := argon2.IDKey([]byte(attempt), r.salt, r.time, r.memory, r.threads, uint32(len(r.hash)))
	return subtle.ConstantTimeCompare(recomputed, r.hash) == 1
}

// argonParams are the Argon2id costs used for new password records.
type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

// defaultArgonParams mirrors the OWASP-recommended profile also used
// for key derivation in the crypto package.
func defaultArgonParams() argonParams {
	return argonParams{time: 1, memory: 64 * 1024, threads: 4}
}
