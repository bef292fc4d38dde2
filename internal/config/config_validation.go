// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.MaxConns <= 0 {
		return fmt.Errorf("%w: max connections must be positive, got %d", ErrInvalidStorageConfigs, cfg.Storage.DB.MaxConns)
	}

	if cfg.Storage.DB.ConnectTimeout <= 0 {
		return fmt.Errorf("%w: connect timeout must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.App.CredentialScheme {
	case CredentialSchemeBcrypt, CredentialSchemePlain:
	default:
		return fmt.Errorf("%w: unknown credential scheme %q", ErrInvalidAppConfigs, cfg.App.CredentialScheme)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
