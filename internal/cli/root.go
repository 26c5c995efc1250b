// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/cafe-env/internal/config"
	"github.com/MKhiriev/cafe-env/internal/logger"
	"github.com/MKhiriev/cafe-env/models"
)

type app struct {
	log      *logger.Logger
	build    models.AppBuildInfo
	logLevel string
}

// NewRootCommand builds the cafe-env command tree. Logs go to log; command
// output goes to the command's out writer.
func NewRootCommand(build models.AppBuildInfo, log *logger.Logger) *cobra.Command {
	a := &app{log: log, build: build}

	root := &cobra.Command{
		Use:   "cafe-env",
		Short: "Environment configuration for the coffee-shop client",
		Long: `Loads the coffee-shop client environment record from a preset,
environment variables, flags and an optional JSON or YAML file, then prints,
validates or derives Auth0 addresses from it.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setLogLevel,
	}

	config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(
		a.newShowCommand(),
		a.newValidateCommand(),
		a.newLoginURLCommand(),
		a.newVersionCommand(),
	)

	return root
}

func (a *app) setLogLevel(_ *cobra.Command, _ []string) error {
	l, err := a.log.WithMinLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	a.log = l

	return nil
}

func (a *app) loadEnvironment(cmd *cobra.Command) (config.Environment, error) {
	env, err := config.Load(config.Options{Flags: cmd.Flags()})
	if err != nil {
		return config.Environment{}, fmt.Errorf("error loading environment: %w", err)
	}

	if env.InsecureAPI() {
		a.log.Warn().
			Str("apiServerUrl", env.APIServerURL).
			Msg("production environment addresses the API server over plain http")
	}

	a.log.Debug().Object("environment", env).Msg("environment loaded")

	return env, nil
}
