package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-data-dir wallet data directory
//	-lang UI language code ("en", "zh-CN")
//	-n/-network network name ("devnet", "testnet", "mainnet")
//	-request-timeout fullnode request timeout (e.g., "15s")
//	-session-timeout authentication session timeout (e.g., "30m")
//	-refresh-interval background balance refresh interval (e.g., "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var dataDir string
	var language string
	var networkName string
	var requestTimeout time.Duration
	var sessionTimeout time.Duration
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&dataDir, "data-dir", "", "Wallet data directory")
	flag.StringVar(&language, "lang", "", "UI language code")
	flag.StringVar(&networkName, "n", "", "Sui network name")
	flag.StringVar(&networkName, "network", "", "Sui network name (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Fullnode request timeout (e.g., 15s)")
	flag.DurationVar(&sessionTimeout, "session-timeout", 0, "Session timeout (e.g., 30m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Auto refresh interval (e.g., 1m; negative disables)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DataDir:  dataDir,
			Language: language,
		},
		Network: Network{
			Name:           networkName,
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			Timeout: sessionTimeout,
		},
		Refresh: Refresh{
			AutoInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
