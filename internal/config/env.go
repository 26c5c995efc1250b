// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envLayer mirrors [Environment] with the variable names read from the
// process environment.
type envLayer struct {
	// Env: PRODUCTION
	Production *bool `env:"PRODUCTION"`

	// Env: API_SERVER_URL
	APIServerURL string `env:"API_SERVER_URL"`

	// Env: AUTH0_URL, AUTH0_AUDIENCE, AUTH0_CLIENT_ID, AUTH0_CALLBACK_URL
	Auth0 Auth0 `envPrefix:"AUTH0_"`

	// Env: CONFIG
	FilePath string `env:"CONFIG"`
}

// parseEnv reads the environment layer using the caarlos0/env library.
//
// Returns a wrapped error if env.Parse fails (e.g. PRODUCTION is not a
// boolean).
func parseEnv() (Layer, error) {
	var cfg envLayer
	if err := env.Parse(&cfg); err != nil {
		return Layer{}, fmt.Errorf("error getting env configs: %w", err)
	}

	return Layer{
		Source:     "env",
		Production: cfg.Production,
		Values: Environment{
			APIServerURL: cfg.APIServerURL,
			Auth0:        cfg.Auth0,
		},
		FilePath: cfg.FilePath,
	}, nil
}

type presetEnv struct {
	// Env: APP_ENV
	Name string `env:"APP_ENV"`
}

func presetFromEnv() (string, error) {
	cfg, err := env.ParseAs[presetEnv]()
	if err != nil {
		return "", fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg.Name, nil
}
