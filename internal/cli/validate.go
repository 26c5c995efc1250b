package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the environment record and report whether it is valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := a.loadEnvironment(cmd)
			if err != nil {
				return err
			}

			a.log.Info().Object("environment", env).Msg("environment is valid")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "environment is valid")
			return err
		},
	}
}
