package config

import (
	"fmt"
	"time"
)

// ClientConfig is the panel's configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	Version       string
	LogLevel      string
	LogFile       string
	KDFIterations int

	Storage LocalStorageConfig
	Adapter Adapter
	AI      AI
	Workers Workers
}

// ServerConfig is the bin server's configuration view.
type ServerConfig struct {
	Version  string
	LogLevel string

	DB DBConfig

	HTTPAddress    string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	RateLimit      float64
	RateBurst      int
}

// GetClientConfig builds and validates the panel's config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.ClientView()
}

// GetServerConfig builds and validates the bin server's config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.ServerView()
}

// ClientView maps the fields relevant to the panel and validates them.
func (cfg *StructuredConfig) ClientView() (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Version:       cfg.App.Version,
		LogLevel:      cfg.App.LogLevel,
		LogFile:       cfg.App.LogFile,
		KDFIterations: cfg.App.KDFIterations,
		Storage:       cfg.Storage.Local,
		Adapter:       cfg.Adapter,
		AI:            cfg.AI,
		Workers:       cfg.Workers,
	}

	return clientCfg, clientCfg.validate()
}

// ServerView maps the fields relevant to the bin server and validates them.
func (cfg *StructuredConfig) ServerView() (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Version:        cfg.App.Version,
		LogLevel:       cfg.App.LogLevel,
		DB:             cfg.Storage.DB,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		RateLimit:      cfg.Server.RateLimit,
		RateBurst:      cfg.Server.RateBurst,
	}

	return serverCfg, serverCfg.validate()
}
