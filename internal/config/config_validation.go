// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// applyDefaults fills fields left empty by every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.App.SessionIssuer == "" {
		cfg.App.SessionIssuer = DefaultSessionIssuer
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = DefaultSessionDuration
	}
	if cfg.App.PostEditPolicy == "" {
		cfg.App.PostEditPolicy = DefaultPostEditPolicy
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKey == "" {
		return fmt.Errorf("%w: empty secret key", ErrInvalidAppConfigs)
	}

	switch cfg.App.PostEditPolicy {
	case PostEditPolicyAuthor, PostEditPolicyAny:
	default:
		return fmt.Errorf("%w: unknown post edit policy %q", ErrInvalidAppConfigs, cfg.App.PostEditPolicy)
	}

	if cfg.App.SessionDuration < 0 {
		return fmt.Errorf("%w: negative session duration", ErrInvalidAppConfigs)
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
