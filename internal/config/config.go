// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Post edit policies accepted by [App.PostEditPolicy].
const (
	// PostEditPolicyAuthor allows only the author of a post to edit or
	// delete it.
	PostEditPolicyAuthor = "author"

	// PostEditPolicyAny allows any logged-in account to edit or delete any
	// post.
	PostEditPolicyAny = "any"
)

// Default values applied to zero fields after all sources are merged.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultDSN             = "forum.db"
	DefaultSessionIssuer   = "go-forum"
	DefaultSessionDuration = 24 * time.Hour
	DefaultPostEditPolicy  = PostEditPolicyAuthor
)

// StructuredConfig is the top-level configuration container for the
// go-forum server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the secret key, session
	// parameters and the post edit policy.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the relational store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security
// and the session lifecycle.
type App struct {
	// SecretKey signs session envelopes. Must be kept confidential.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// SessionIssuer is the "iss" claim of every session envelope.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration is how long a session envelope stays valid
	// (e.g. "24h").
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// PostEditPolicy selects who may edit or delete a post: "author" or
	// "any".
	// Env: APP_POST_EDIT_POLICY
	PostEditPolicy string `env:"POST_EDIT_POLICY"`

	// BcryptCost is the bcrypt work factor for password hashes. Zero means
	// bcrypt.DefaultCost.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Version is the version string shown on the home page.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the store. A value starting with "postgres://" or
	// "postgresql://" opens PostgreSQL; anything else is a SQLite file path
	// (e.g. "forum.db" or ":memory:").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields that are still zero afterwards.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
