package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
// Durations are accepted as strings ("1s") or integer nanoseconds.
type StructuredJSONConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		SocketURL      string   `json:"socket_url"`
		RequestTimeout Duration `json:"request_timeout"`
		SessionToken   string   `json:"session_token"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Realtime struct {
		ConnectDelay      Duration `json:"connect_delay"`
		ReconnectAttempts int      `json:"reconnect_attempts"`
		ReconnectInterval Duration `json:"reconnect_interval"`
	} `json:"realtime,omitempty"`

	Vault struct {
		KDFIterations int     `json:"kdf_iterations"`
		UnlockRate    float64 `json:"unlock_rate"`
		UnlockBurst   int     `json:"unlock_burst"`
	} `json:"vault,omitempty"`

	Media struct {
		MaxSize int64 `json:"max_size"`
	} `json:"media,omitempty"`
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

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			SocketURL:      jsonCfg.Adapter.SocketURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			SessionToken:   jsonCfg.Adapter.SessionToken,
		},
		Storage: Storage{DB: DB{DSN: jsonCfg.Storage.DB.DSN}},
		Realtime: Realtime{
			ConnectDelay:      time.Duration(jsonCfg.Realtime.ConnectDelay),
			ReconnectAttempts: jsonCfg.Realtime.ReconnectAttempts,
			ReconnectInterval: time.Duration(jsonCfg.Realtime.ReconnectInterval),
		},
		Vault: Vault{
			KDFIterations: jsonCfg.Vault.KDFIterations,
			UnlockRate:    jsonCfg.Vault.UnlockRate,
			UnlockBurst:   jsonCfg.Vault.UnlockBurst,
		},
		Media: Media{MaxSize: jsonCfg.Media.MaxSize},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
