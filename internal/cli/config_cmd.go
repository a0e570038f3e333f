// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration a solver command would use: defaults,
overlaid by --config and WAGERIG_* environment variables. Text output is YAML and is itself a valid
experiment file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			if rootOpts.Format == "json" {
				return s.out.emit(s.exp, nil)
			}
			data, err := s.exp.YAML()
			if err != nil {
				return WrapExitError(ExitCommandError, "encoding configuration", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
