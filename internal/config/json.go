package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations ("30m", "15s").
type StructuredJSONConfig struct {
	App struct {
		DataDir  string `json:"data_dir"`
		Language string `json:"language"`
	} `json:"app,omitempty"`

	Network struct {
		Name           string   `json:"name"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"network,omitempty"`

	Session struct {
		Timeout Duration `json:"timeout"`
	} `json:"session,omitempty"`

	Refresh struct {
		AutoInterval Duration `json:"auto_interval"`
	} `json:"refresh,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DataDir:  jsonCfg.App.DataDir,
			Language: jsonCfg.App.Language,
		},
		Network: Network{
			Name:           jsonCfg.Network.Name,
			RequestTimeout: time.Duration(jsonCfg.Network.RequestTimeout),
		},
		Session: Session{
			Timeout: time.Duration(jsonCfg.Session.Timeout),
		},
		Refresh: Refresh{
			AutoInterval: time.Duration(jsonCfg.Refresh.AutoInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
