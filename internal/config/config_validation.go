// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the merged [StructuredConfig]. Rules specific to one
// binary live on its view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.DebounceWindow < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.HTTPAddress != "" {
		u, err := url.Parse(cfg.Adapter.HTTPAddress)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: bin server URL %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
		}
	}
	if s3 := cfg.Adapter.S3; s3.Bucket != "" && (s3.AccessKey == "") != (s3.SecretKey == "") {
		return fmt.Errorf("%w: S3 access and secret keys go together", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.DebounceWindow <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.MaxBodyBytes <= 0 || cfg.RateLimit <= 0 || cfg.RateBurst <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}
