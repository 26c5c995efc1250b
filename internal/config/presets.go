// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Preset names accepted by [PresetByName], APP_ENV and the --env flag.
const (
	PresetDevelopment = "development"
	PresetProduction  = "production"
)

const (
	auth0TenantDomain = "dev-p7svlxqg87lur76u.us.auth0.com"
	auth0Audience     = "cafe"
	auth0ClientID     = "8L0fRDYAQGFlIRjqr4NyVUx0XabRSsHP"
)

// Development returns the record used while running the client against a
// local Flask API and a local Ionic dev server.
func Development() Environment {
	return Environment{
		Production:   false,
		APIServerURL: "http://127.0.0.1:5000",
		Auth0: Auth0{
			URL:         auth0TenantDomain,
			Audience:    auth0Audience,
			ClientID:    auth0ClientID,
			CallbackURL: "http://localhost:8100",
		},
	}
}

// Production returns the production base record. The Auth0 tenant is shared
// with development; the API server and callback URLs are deployment specific
// and must be supplied by a later layer.
func Production() Environment {
	return Environment{
		Production: true,
		Auth0: Auth0{
			URL:      auth0TenantDomain,
			Audience: auth0Audience,
			ClientID: auth0ClientID,
		},
	}
}

// PresetByName resolves a preset name case-insensitively. An empty name
// selects development.
func PresetByName(name string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PresetDevelopment:
		return Development(), nil
	case PresetProduction:
		return Production(), nil
	default:
		return Environment{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}
