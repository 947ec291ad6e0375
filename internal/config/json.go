package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	App struct {
		Version       string `json:"version"`
		LogLevel      string `json:"log_level"`
		LogFile       string `json:"log_file"`
		KDFIterations int    `json:"kdf_iterations"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`

		Local struct {
			DSN string `json:"dsn"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxBodyBytes   int64    `json:"max_body_bytes"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		S3             struct {
			Endpoint     string `json:"endpoint"`
			Region       string `json:"region"`
			Bucket       string `json:"bucket"`
			AccessKey    string `json:"access_key"`
			SecretKey    string `json:"secret_key"`
			UsePathStyle bool   `json:"use_path_style"`
		} `json:"s3,omitempty"`
	} `json:"adapter,omitempty"`

	AI struct {
		APIKey string `json:"api_key"`
		Model  string `json:"model"`
	} `json:"ai,omitempty"`

	Workers struct {
		DebounceWindow Duration `json:"debounce_window"`
	} `json:"workers,omitempty"`
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
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
			LogFile:       jsonCfg.App.LogFile,
			KDFIterations: jsonCfg.App.KDFIterations,
		},
		Storage: Storage{
			DB: DBConfig{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
			Local: LocalStorageConfig{DSN: jsonCfg.Storage.Local.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxBodyBytes:   jsonCfg.Server.MaxBodyBytes,
			RateLimit:      jsonCfg.Server.RateLimit,
			RateBurst:      jsonCfg.Server.RateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			S3: S3{
				Endpoint:     jsonCfg.Adapter.S3.Endpoint,
				Region:       jsonCfg.Adapter.S3.Region,
				Bucket:       jsonCfg.Adapter.S3.Bucket,
				AccessKey:    jsonCfg.Adapter.S3.AccessKey,
				SecretKey:    jsonCfg.Adapter.S3.SecretKey,
				UsePathStyle: jsonCfg.Adapter.S3.UsePathStyle,
			},
		},
		AI: AI{
			APIKey: jsonCfg.AI.APIKey,
			Model:  jsonCfg.AI.Model,
		},
		Workers: Workers{
			DebounceWindow: time.Duration(jsonCfg.Workers.DebounceWindow),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
