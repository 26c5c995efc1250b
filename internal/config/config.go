// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"strings"

	"github.com/spf13/pflag"
)

// Environment is the deployment-specific settings record consumed by the
// client application. It carries the addresses and identifiers of two
// external collaborators: the backend API server and the Auth0 identity
// provider.
//
// Struct tags:
//   - json/yaml: key names of the consumer-facing shape
//     (production, apiServerUrl, auth0.*).
type Environment struct {
	// Production selects the build/runtime mode of the client.
	Production bool `json:"production" yaml:"production"`

	// APIServerURL is the base URL of the backend API
	// (e.g. "http://127.0.0.1:5000").
	APIServerURL string `json:"apiServerUrl" yaml:"apiServerUrl"`

	// Auth0 holds the identity provider settings.
	Auth0 Auth0 `json:"auth0" yaml:"auth0"`
}

// Auth0 groups the identity provider settings of the client application.
type Auth0 struct {
	// URL is the Auth0 tenant domain without a scheme
	// (e.g. "dev-p7svlxqg87lur76u.us.auth0.com").
	// Env: AUTH0_URL
	URL string `env:"URL" json:"url" yaml:"url"`

	// Audience is the API identifier that issued access tokens are scoped to.
	// Env: AUTH0_AUDIENCE
	Audience string `env:"AUDIENCE" json:"audience" yaml:"audience"`

	// ClientID is the client identifier generated for the Auth0 application.
	// Env: AUTH0_CLIENT_ID
	ClientID string `env:"CLIENT_ID" json:"clientId" yaml:"clientId"`

	// CallbackURL is the base URL of the running client application that
	// Auth0 redirects back to after login (e.g. "http://localhost:8100").
	// Env: AUTH0_CALLBACK_URL
	CallbackURL string `env:"CALLBACK_URL" json:"callbackURL" yaml:"callbackURL"`
}

// Options controls which layers [Load] reads.
type Options struct {
	// Preset names the base record ("development" or "production").
	// When empty, the --env flag and then APP_ENV are consulted, falling back
	// to "development".
	Preset string

	// FilePath is an explicit config file path. When empty, the path named by
	// the CONFIG environment variable or the -c / --config flag is used.
	FilePath string

	// Flags is a flag set previously prepared with [RegisterFlags] and parsed
	// by the caller. Nil skips the flag layer.
	Flags *pflag.FlagSet
}

// Default returns the built-in development record. It never fails and every
// call returns an equal value.
func Default() Environment {
	return Development()
}

// Load builds, merges, and validates the environment record from all layers
// selected by opts.
//
// Returns the merged [Environment] or an error if any layer fails to load or
// the final record fails validation.
func Load(opts Options) (Environment, error) {
	return newConfigBuilder().
		withPreset(opts.Preset, opts.Flags).
		withEnv().
		withFlags(opts.Flags).
		withFile(opts.FilePath).
		build()
}

// InsecureAPI reports whether a production record addresses a non-loopback
// API server over plain HTTP.
func (e Environment) InsecureAPI() bool {
	if !e.Production {
		return false
	}

	u, err := url.Parse(e.APIServerURL)
	if err != nil || u.Scheme != "http" {
		return false
	}

	host := u.Hostname()
	if strings.EqualFold(host, "localhost") {
		return false
	}

	ip := net.ParseIP(host)
	return ip == nil || !ip.IsLoopback()
}
