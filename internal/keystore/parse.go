// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

package keystore

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"

	"github.com/zeweler/sui-pocket/models"
)

const (
	// bech32HRP is the human-readable prefix of Sui private key exports.
	bech32HRP = "suiprivkey"

	// ed25519Flag is the scheme flag byte for Ed25519 keys. Other
	// schemes (secp256k1, secp256r1) are not supported by this wallet.
	ed25519Flag = 0x00

	seedLen = 32
)

// Keypair is an in-memory Ed25519 account keypair. It is owned by the
// Loaded wallet state and zeroed when the wallet is reset.
type Keypair struct {
	flag byte
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// Public returns the public key bytes.
func (k *Keypair) Public() ed25519.PublicKey {
	return k.pub
}

// Zero wipes the private key material. The keypair is unusable after.
func (k *Keypair) Zero() {
	for i := range k.priv {
		k.priv[i] = 0
	}
	k.priv = nil
}

// String implements fmt.Stringer and deliberately hides key material
// from any default formatting.
func (k *Keypair) String() string {
	return "Keypair(ed25519)"
}

// ParseKey decodes a user-supplied private key string into an address
// and keypair. Encodings are tried in a fixed priority order:
//
//  1. bech32 "suiprivkey1..." (self-describing, flag ‖ seed)
//  2. 44-character standard base64 (flag ‖ seed)
//  3. 64-character hex (bare seed, Ed25519 assumed)
//
// The address is derived deterministically from the keypair. Returns
// ErrInvalidKeyFormat when no encoding matches and ErrUnsupportedScheme
// for non-Ed25519 flag bytes. Garbage input never panics.
func ParseKey(raw string) (string, *Keypair, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil, ErrInvalidKeyFormat
	}

	flagged, err := decodeKeyMaterial(trimmed)
	if err != nil {
		return "", nil, err
	}

	flag, seed := flagged[0], flagged[1:]
	if flag != ed25519Flag {
		return "", nil, fmt.Errorf("%w: flag 0x%02x", ErrUnsupportedScheme, flag)
	}

	priv := ed25519.NewKeyFromSeed(seed)
	kp := &Keypair{
		flag: flag,
		priv: priv,
		pub:  priv.Public().(ed25519.PublicKey),
	}

	return deriveAddress(kp), kp, nil
}

// decodeKeyMaterial returns flag ‖ seed (33 bytes) for any supported
// encoding of trimmed input.
func decodeKeyMaterial(in string) ([]byte, error) {
	if strings.HasPrefix(in, bech32HRP+"1") {
		return decodeBech32Key(in)
	}

	if len(in) == 44 {
		decoded, err := base64.StdEncoding.DecodeString(in)
		if err == nil && len(decoded) == seedLen+1 {
			return decoded, nil
		}
		// fall through: a 44-char string that is not valid base64 may
		// still be something else entirely
	}

	if len(in) == seedLen*2 {
		seed, err := hex.DecodeString(in)
		if err == nil {
			return append([]byte{ed25519Flag}, seed...), nil
		}
	}

	return nil, ErrInvalidKeyFormat
}

func decodeBech32Key(in string) ([]byte, error) {
	hrp, data, err := bech32.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyFormat, err)
	}
	if hrp != bech32HRP {
		return nil, ErrInvalidKeyFormat
	}

	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil || len(converted) != seedLen+1 {
		return nil, ErrInvalidKeyFormat
	}

	return converted, nil
}

// deriveAddress computes the Sui account address:
// "0x" + hex(BLAKE2b-256(flag ‖ public key)).
func deriveAddress(kp *Keypair) string {
	digest := blake2b.Sum256(append([]byte{kp.flag}, kp.pub...))
	return "0x" + hex.EncodeToString(digest[:])
}

// FormatHint classifies raw input by length and prefix heuristics for
// UI feedback. It makes no trust decisions: ParseKey revalidates
// everything from scratch.
func FormatHint(raw string) (models.KeyFormat, bool) {
	trimmed := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(trimmed, bech32HRP+"1"):
		return models.KeyFormatBech32, true
	case len(trimmed) == 44 && isBase64Alphabet(trimmed):
		return models.KeyFormatBase64, true
	case len(trimmed) == seedLen*2 && isHexAlphabet(trimmed):
		return models.KeyFormatHex, true
	}
	return 0, false
}

func isBase64Alphabet(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '+' || r == '/' || r == '=':
		default:
			return false
		}
	}
	return true
}

func isHexAlphabet(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
