package cmd

import (
	"github.com/spf13/cobra"
)

const serviceName = "gaschecker"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Farcaster username to primary wallet method volume checker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(), newCheckCommand())
	return root
}

// Execute runs the command line. Without a subcommand it serves the HTTP API.
func Execute() error {
	root := newRootCommand()
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	}
	return root.Execute()
}
