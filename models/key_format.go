package models

// KeyFormat classifies the textual encoding of a private key entered by
// the user. It is a display hint only; actual parsing never trusts it.
type KeyFormat int

const (
	// KeyFormatBech32 is the self-describing "suiprivkey1..." encoding.
	KeyFormatBech32 KeyFormat = iota + 1

	// KeyFormatBase64 is the 44-character standard base64 encoding of
	// flag byte plus 32-byte seed.
	KeyFormatBase64

	// KeyFormatHex is the 64-character hex encoding of a bare seed.
	KeyFormatHex
)

func (f KeyFormat) String() string {
	switch f {
	case KeyFormatBech32:
		return "Bech32 (suiprivkey1...)"
	case KeyFormatBase64:
		return "Base64 (44 characters)"
	case KeyFormatHex:
		return "Hex (64 characters)"
	}
	return "Unknown"
}
