package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand returns the uakit command tree. version is printed by the
// version subcommand.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:          "uakit",
		Short:        "Classify User-Agent strings and serve the device session API",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(newParseCommand())
	root.AddCommand(newServeCommand())
	root.AddCommand(newVersionCommand(version))
	return root
}
