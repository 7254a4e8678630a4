package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeweler/sui-pocket/internal/crypto"
	"github.com/zeweler/sui-pocket/internal/keystore"
	"github.com/zeweler/sui-pocket/internal/logger"
	"github.com/zeweler/sui-pocket/internal/vault"
)

// base64 encoding of flag 0x00 plus a fixed 32-byte seed; parses as a
// valid Ed25519 wallet key.
const testKeyBase64 = "AEJCQkJCQkJCQkJCQkJCQkJCQkJCQkJCQkJCQkJCQkJC"

func newTestSession(t *testing.T, timeout time.Duration) (*Session, *vault.Vault, *keystore.Store) {
	t.Helper()
	v := vault.NewVault(t.TempDir(), crypto.NewSecretCipher(), logger.Nop())
	keys := keystore.NewStore(logger.Nop())
	return NewSession(v, keys, timeout, logger.Nop()), v, keys
}

func TestNeedsSetup_MirrorsVault(t *testing.T) {
	s, _, _ := newTestSession(t, 0)

	assert.True(t, s.NeedsSetup())
	require.NoError(t, s.SetPassword("pw", "pw"))
	assert.False(t, s.NeedsSetup())
}

func TestSetPassword_EstablishesSession(t *testing.T) {
	s, _, _ := newTestSession(t, 0)

	require.NoError(t, s.SetPassword("pw", "pw"))
	assert.True(t, s.EffectiveAuthenticated())

	got, err := s.Password()
	require.NoError(t, err)
	assert.Equal(t, "pw", got)
}

func TestLogin_WrongPassword(t *testing.T) {
	s, _, _ := newTestSession(t, 0)
	require.NoError(t, s.SetPassword("pw", "pw"))
	s.Logout()

	_, err := s.Login("nope")
	assert.ErrorIs(t, err, ErrIncorrectPassword)
	assert.False(t, s.EffectiveAuthenticated())
}

func TestLogin_BeforeSetup(t *testing.T) {
	s, _, _ := newTestSession(t, 0)

	_, err := s.Login("pw")
	assert.ErrorIs(t, err, vault.ErrPasswordNotFound)
}

func TestLogin_AutoLoadsStoredKey(t *testing.T) {
	s, v, keys := newTestSession(t, 0)
	require.NoError(t, s.SetPassword("pw", "pw"))
	require.NoError(t, v.SaveEncryptedSecret(testKeyBase64, "pw"))
	s.Logout()

	autoLoaded, err := s.Login("pw")
	require.NoError(t, err)
	assert.True(t, autoLoaded)
	assert.True(t, keys.IsLoaded())
}

func TestLogin_AutoLoadFailureDoesNotBlockLogin(t *testing.T) {
	s, v, keys := newTestSession(t, 0)
	require.NoError(t, s.SetPassword("pw", "pw"))
	// A stored record that decrypts fine but does not parse as a key.
	require.NoError(t, v.SaveEncryptedSecret("this is not a key", "pw"))
	s.Logout()

	autoLoaded, err := s.Login("pw")
	require.NoError(t, err, "auto-load failure must stay non-fatal")
	assert.False(t, autoLoaded)
	assert.False(t, keys.IsLoaded())
	assert.True(t, s.EffectiveAuthenticated())
}

func TestLogout_ClearsEverything(t *testing.T) {
	s, _, keys := newTestSession(t, 0)
	require.NoError(t, s.SetPassword("pw", "pw"))
	_, err := keys.Import(testKeyBase64)
	require.NoError(t, err)

	s.Logout()

	assert.False(t, s.EffectiveAuthenticated())
	assert.False(t, keys.IsLoaded())
	_, err = s.Password()
	assert.Error(t, err)
}

func TestExpiry_EffectiveAuthenticatedGoesFalse(t *testing.T) {
	s, _, _ := newTestSession(t, time.Minute)
	require.NoError(t, s.SetPassword("pw", "pw"))

	current := time.Now()
	s.setNow(func() time.Time { return current })
	s.Extend()

	assert.True(t, s.EffectiveAuthenticated())

	// Jump past the expiry: the raw flag stays set, the effective
	// check flips immediately.
	current = current.Add(2 * time.Minute)
	assert.True(t, s.authenticated)
	assert.True(t, s.IsExpired())
	assert.False(t, s.EffectiveAuthenticated())
}

func TestExtend_SlidesExpiry(t *testing.T) {
	s, _, _ := newTestSession(t, time.Minute)
	require.NoError(t, s.SetPassword("pw", "pw"))

	current := time.Now()
	s.setNow(func() time.Time { return current })
	s.Extend()

	current = current.Add(50 * time.Second)
	s.Extend()
	current = current.Add(50 * time.Second)

	assert.False(t, s.IsExpired(), "activity must slide the expiry forward")
}

func TestPassword_RequiresActiveSession(t *testing.T) {
	s, _, _ := newTestSession(t, 0)

	_, err := s.Password()
	assert.Error(t, err)
}
