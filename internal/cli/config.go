package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/moatarget/pkg/config"
)

// configCommand creates the config command, which prints the built-in
// configuration as a starting point for a config file.
func (c *CLI) configCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration",
		Example: `  moatarget config > target.toml
  moatarget config --format yaml > target.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Encode(stdout, config.Default(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatTOML, "config format (toml, yaml)")
	return cmd
}
