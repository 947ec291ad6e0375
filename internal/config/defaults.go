package config

import "time"

// Defaults applied before any other source.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 10 * time.Second
	DefaultMaxBodyBytes   = 5 << 20
	DefaultRateLimit      = 10
	DefaultRateBurst      = 20
	DefaultMaxOpenConns   = 10
	DefaultLocalDSN       = "painel.db"
	DefaultLogFile        = "painel.log"
	DefaultLogLevel       = "info"
	DefaultDebounceWindow = time.Second
	DefaultAIModel        = "gemini-2.5-flash"
	DefaultKDFIterations  = 100_000
	DefaultS3Region       = "us-east-1"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       "dev",
			LogLevel:      DefaultLogLevel,
			LogFile:       DefaultLogFile,
			KDFIterations: DefaultKDFIterations,
		},
		Storage: Storage{
			DB:    DBConfig{MaxOpenConns: DefaultMaxOpenConns},
			Local: LocalStorageConfig{DSN: DefaultLocalDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxBodyBytes:   DefaultMaxBodyBytes,
			RateLimit:      DefaultRateLimit,
			RateBurst:      DefaultRateBurst,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			S3:             S3{Region: DefaultS3Region},
		},
		AI:      AI{Model: DefaultAIModel},
		Workers: Workers{DebounceWindow: DefaultDebounceWindow},
	}
}
