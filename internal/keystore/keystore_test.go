package keystore

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeweler/sui-pocket/internal/logger"
	"github.com/zeweler/sui-pocket/models"
)

// testKeyEncodings renders the same 32-byte seed in all three supported
// input encodings.
func testKeyEncodings(t *testing.T, seed []byte) (bech32Key, base64Key, hexKey string) {
	t.Helper()
	require.Len(t, seed, seedLen)

	flagged := append([]byte{ed25519Flag}, seed...)

	converted, err := bech32.ConvertBits(flagged, 8, 5, true)
	require.NoError(t, err)
	bech32Key, err = bech32.Encode(bech32HRP, converted)
	require.NoError(t, err)

	base64Key = base64.StdEncoding.EncodeToString(flagged)
	hexKey = hex.EncodeToString(seed)
	return bech32Key, base64Key, hexKey
}

func TestParseKey_AllEncodingsYieldSameAddress(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, seedLen)
	b32, b64, hx := testKeyEncodings(t, seed)

	addrBech32, kp1, err := ParseKey(b32)
	require.NoError(t, err)
	addrBase64, kp2, err := ParseKey(b64)
	require.NoError(t, err)
	addrHex, kp3, err := ParseKey(hx)
	require.NoError(t, err)

	assert.Equal(t, addrBech32, addrBase64)
	assert.Equal(t, addrBech32, addrHex)
	assert.Equal(t, kp1.Public(), kp2.Public())
	assert.Equal(t, kp1.Public(), kp3.Public())
}

func TestParseKey_AddressShape(t *testing.T) {
	seed := bytes.Repeat([]byte{0x01}, seedLen)
	_, b64, _ := testKeyEncodings(t, seed)

	addr, _, err := ParseKey(b64)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(addr, "0x"))
	assert.Len(t, addr, 2+64, "address must be 32 bytes of hex")
}

func TestParseKey_TrimsInput(t *testing.T) {
	seed := bytes.Repeat([]byte{0x07}, seedLen)
	_, b64, _ := testKeyEncodings(t, seed)

	addr1, _, err := ParseKey(b64)
	require.NoError(t, err)
	addr2, _, err := ParseKey("  " + b64 + "\n")
	require.NoError(t, err)

	assert.Equal(t, addr1, addr2)
}

func TestParseKey_GarbageInputs(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"hello world",
		"suiprivkey1notvalidbech32!!!",
		strings.Repeat("!", 44), // right length, wrong alphabet
		strings.Repeat("0", 63), // one short of hex length
		strings.Repeat("g", 64), // hex length, non-hex chars
		// wrong payload size
		base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{1}, 20)),
	}

	for _, in := range inputs {
		_, _, err := ParseKey(in)
		assert.ErrorIs(t, err, ErrInvalidKeyFormat, "input %q", in)
	}
}

func TestParseKey_NonEd25519FlagRejected(t *testing.T) {
	flagged := append([]byte{0x01}, bytes.Repeat([]byte{0x05}, seedLen)...) // secp256k1 flag
	in := base64.StdEncoding.EncodeToString(flagged)

	_, _, err := ParseKey(in)
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestFormatHint(t *testing.T) {
	seed := bytes.Repeat([]byte{0x11}, seedLen)
	b32, b64, hx := testKeyEncodings(t, seed)

	tests := []struct {
		name  string
		input string
		want  models.KeyFormat
		ok    bool
	}{
		{"bech32", b32, models.KeyFormatBech32, true},
		{"base64", b64, models.KeyFormatBase64, true},
		{"hex", hx, models.KeyFormatHex, true},
		{"bech32 with spaces", "  " + b32 + " ", models.KeyFormatBech32, true},
		{"empty", "", 0, false},
		{"random text", "not a key at all", 0, false},
		{"hex length non hex", strings.Repeat("g", 64), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatHint(tt.input)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStore_Lifecycle(t *testing.T) {
	seed := bytes.Repeat([]byte{0x23}, seedLen)
	_, b64, _ := testKeyEncodings(t, seed)

	s := NewStore(logger.Nop())
	assert.False(t, s.IsLoaded())

	s.SetInput(b64)
	assert.Equal(t, b64, s.Input())

	addr, err := s.Import(s.Input())
	require.NoError(t, err)
	assert.True(t, s.IsLoaded())

	got, ok := s.Address()
	assert.True(t, ok)
	assert.Equal(t, addr, got)

	// Input buffer is only meaningful while no wallet is loaded.
	assert.Empty(t, s.Input())

	s.Reset()
	assert.False(t, s.IsLoaded())
	assert.Empty(t, s.Input(), "reset must discard the prior input buffer")
}

func TestStore_ImportOverwritesLoadedWallet(t *testing.T) {
	_, first, _ := testKeyEncodings(t, bytes.Repeat([]byte{0x31}, seedLen))
	_, second, _ := testKeyEncodings(t, bytes.Repeat([]byte{0x32}, seedLen))

	s := NewStore(logger.Nop())

	addr1, err := s.Import(first)
	require.NoError(t, err)
	addr2, err := s.Import(second)
	require.NoError(t, err)

	assert.NotEqual(t, addr1, addr2)
	got, _ := s.Address()
	assert.Equal(t, addr2, got)
}

func TestStore_FailedImportKeepsState(t *testing.T) {
	_, b64, _ := testKeyEncodings(t, bytes.Repeat([]byte{0x44}, seedLen))

	s := NewStore(logger.Nop())
	addr, err := s.Import(b64)
	require.NoError(t, err)

	_, err = s.Import("garbage")
	assert.ErrorIs(t, err, ErrInvalidKeyFormat)

	got, ok := s.Address()
	assert.True(t, ok, "failed import must not unload the wallet")
	assert.Equal(t, addr, got)
}

func TestKeypair_ZeroWipesPrivateKey(t *testing.T) {
	_, b64, _ := testKeyEncodings(t, bytes.Repeat([]byte{0x55}, seedLen))

	_, kp, err := ParseKey(b64)
	require.NoError(t, err)

	kp.Zero()
	assert.Nil(t, kp.priv)
}

func TestKeypair_StringHidesMaterial(t *testing.T) {
	_, b64, _ := testKeyEncodings(t, bytes.Repeat([]byte{0x66}, seedLen))

	_, kp, err := ParseKey(b64)
	require.NoError(t, err)

	assert.Equal(t, "Keypair(ed25519)", kp.String())
}
