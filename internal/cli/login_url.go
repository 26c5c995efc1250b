package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newLoginURLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login-url",
		Short: "Print the Auth0 login address for the configured client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := a.loadEnvironment(cmd)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), env.Auth0.AuthorizeURL())
			return err
		},
	}
}
