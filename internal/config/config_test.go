package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletConfigFrom_Defaults(t *testing.T) {
	t.Setenv("LANG", "en_US.UTF-8")

	got := walletConfigFrom(&StructuredConfig{})

	assert.NotEmpty(t, got.DataDir)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "testnet", got.NetworkName)
	assert.Equal(t, 15*time.Second, got.RequestTimeout)
	assert.Equal(t, 30*time.Minute, got.SessionTimeout)
	assert.Equal(t, time.Minute, got.AutoRefreshInterval)
}

func TestWalletConfigFrom_ExplicitValuesWin(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{DataDir: "/tmp/wallet", Language: "zh-CN"},
		Network: Network{Name: "mainnet", RequestTimeout: 5 * time.Second},
		Session: Session{Timeout: time.Hour},
		Refresh: Refresh{AutoInterval: 10 * time.Second},
	}

	got := walletConfigFrom(cfg)

	assert.Equal(t, "/tmp/wallet", got.DataDir)
	assert.Equal(t, "zh-CN", got.Language)
	assert.Equal(t, "mainnet", got.NetworkName)
	assert.Equal(t, 5*time.Second, got.RequestTimeout)
	assert.Equal(t, time.Hour, got.SessionTimeout)
	assert.Equal(t, 10*time.Second, got.AutoRefreshInterval)
}

func TestWalletConfigFrom_NegativeIntervalDisablesAutoRefresh(t *testing.T) {
	got := walletConfigFrom(&StructuredConfig{
		Refresh: Refresh{AutoInterval: -time.Second},
	})

	assert.Equal(t, time.Duration(0), got.AutoRefreshInterval)
}

func TestWalletConfigFrom_ChineseLocaleFallback(t *testing.T) {
	t.Setenv("LANG", "zh_CN.UTF-8")

	got := walletConfigFrom(&StructuredConfig{})

	assert.Equal(t, "zh-CN", got.Language)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{name: "empty config is valid", cfg: StructuredConfig{}},
		{name: "known network", cfg: StructuredConfig{Network: Network{Name: "devnet"}}},
		{name: "network alias", cfg: StructuredConfig{Network: Network{Name: "main"}}},
		{
			name:    "unknown network",
			cfg:     StructuredConfig{Network: Network{Name: "localnet"}},
			wantErr: ErrUnknownNetwork,
		},
		{
			name:    "negative timeout",
			cfg:     StructuredConfig{Session: Session{Timeout: -time.Second}},
			wantErr: ErrNegativeDuration,
		},
		{
			name: "negative refresh interval means disabled",
			cfg:  StructuredConfig{Refresh: Refresh{AutoInterval: -time.Second}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_DATA_DIR", "/var/lib/sui-pocket")
	t.Setenv("NETWORK_NAME", "devnet")
	t.Setenv("NETWORK_REQUEST_TIMEOUT", "7s")
	t.Setenv("SESSION_TIMEOUT", "45m")
	t.Setenv("REFRESH_AUTO_INTERVAL", "2m")
	t.Setenv("CONFIG", "/etc/sui-pocket/config.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "/var/lib/sui-pocket", cfg.App.DataDir)
	assert.Equal(t, "devnet", cfg.Network.Name)
	assert.Equal(t, 7*time.Second, cfg.Network.RequestTimeout)
	assert.Equal(t, 45*time.Minute, cfg.Session.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.Refresh.AutoInterval)
	assert.Equal(t, "/etc/sui-pocket/config.json", cfg.JSONFilePath)
}

func TestParseJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
		"app": {"data_dir": "/data", "language": "en"},
		"network": {"name": "testnet", "request_timeout": "20s"},
		"session": {"timeout": "1h"},
		"refresh": {"auto_interval": "90s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/data", cfg.App.DataDir)
	assert.Equal(t, "en", cfg.App.Language)
	assert.Equal(t, "testnet", cfg.Network.Name)
	assert.Equal(t, 20*time.Second, cfg.Network.RequestTimeout)
	assert.Equal(t, time.Hour, cfg.Session.Timeout)
	assert.Equal(t, 90*time.Second, cfg.Refresh.AutoInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
		ok    bool
	}{
		{name: "duration string", input: `"30m"`, want: 30 * time.Minute, ok: true},
		{name: "seconds string", input: `"15s"`, want: 15 * time.Second, ok: true},
		{name: "raw nanoseconds", input: `1000000000`, want: time.Second, ok: true},
		{name: "garbage string", input: `"soon"`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestConfigBuilder_MergePriority(t *testing.T) {
	// Earlier sources win: mergo only fills fields still at their zero
	// value, so a value set by flags survives the env merge.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Network: Network{Name: "mainnet"}},
		&StructuredConfig{Network: Network{Name: "devnet", RequestTimeout: 9 * time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "mainnet", cfg.Network.Name)
	assert.Equal(t, 9*time.Second, cfg.Network.RequestTimeout)
}

func TestConfigBuilder_PropagatesError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	assert.ErrorIs(t, err, assert.AnError)
}
