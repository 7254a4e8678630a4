package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewSecretCipher()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewSecretCipher()

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1 := svc.DeriveKey(password, salt)
	k2 := svc.DeriveKey(password, salt)

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same password+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewSecretCipher()

	password := "same password"
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	if bytes.Equal(svc.DeriveKey(password, salt1), svc.DeriveKey(password, salt2)) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestSeal_OpenRoundTrip(t *testing.T) {
	svc := NewSecretCipher()

	key := bytes.Repeat([]byte{0x2A}, 32) // valid AES-256 key length
	plaintext := []byte("suiprivkey1qexample")

	blob, err := svc.Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if len(blob) < NonceSize+TagSize {
		t.Fatalf("blob length = %d, below nonce+tag minimum", len(blob))
	}

	got, err := svc.Open(key, blob)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round-trip mismatch: got %q want %q", got, plaintext)
	}
}

func TestSeal_FreshNoncePerCall(t *testing.T) {
	svc := NewSecretCipher()

	key := bytes.Repeat([]byte{0x2A}, 32)
	plaintext := []byte("same plaintext")

	b1, err := svc.Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b2, err := svc.Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if bytes.Equal(b1, b2) {
		t.Fatalf("two seals of the same plaintext produced identical blobs")
	}
	if bytes.Equal(b1[:NonceSize], b2[:NonceSize]) {
		t.Fatalf("nonce was reused across seals")
	}
}

func TestOpen_WrongKeyFailsClosed(t *testing.T) {
	svc := NewSecretCipher()

	key := bytes.Repeat([]byte{0x11}, 32)
	wrongKey := bytes.Repeat([]byte{0x22}, 32)

	blob, err := svc.Seal(key, []byte("secret"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if _, err := svc.Open(wrongKey, blob); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("Open with wrong key: err = %v, want ErrDecryptionFailed", err)
	}
}

func TestOpen_TamperedCiphertextFailsClosed(t *testing.T) {
	svc := NewSecretCipher()

	key := bytes.Repeat([]byte{0x11}, 32)
	blob, err := svc.Seal(key, []byte("secret"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	blob[len(blob)-1] ^= 0xFF
	if _, err := svc.Open(key, blob); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("Open with tampered blob: err = %v, want ErrDecryptionFailed", err)
	}
}

func TestOpen_ShortBlobRejected(t *testing.T) {
	svc := NewSecretCipher()

	key := bytes.Repeat([]byte{0x11}, 32)
	if _, err := svc.Open(key, make([]byte, NonceSize+TagSize-1)); !errors.Is(err, ErrCiphertextTooShort) {
		t.Fatalf("short blob: err = %v, want ErrCiphertextTooShort", err)
	}
}
