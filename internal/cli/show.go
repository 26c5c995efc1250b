package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/cafe-env/internal/config"
)

func (a *app) newShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the environment record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(config.Formats, format) {
				return fmt.Errorf("%w: %q (want one of %s)",
					config.ErrUnsupportedFormat, format, strings.Join(config.Formats, ", "))
			}

			env, err := a.loadEnvironment(cmd)
			if err != nil {
				return err
			}

			return config.Render(cmd.OutOrStdout(), env, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", config.FormatJSON,
		"Output format ("+strings.Join(config.Formats, ", ")+")")

	return cmd
}
