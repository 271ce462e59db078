package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. Without a subcommand it serves, taking the same
// flags as serve.
func newRootCmd() *cobra.Command {
	serveCommand := serveCmd()

	rootCmd := &cobra.Command{
		Use:           "agenda",
		Short:         "Agenda - personal task management API",
		Version:       Version,
		Args:          cobra.NoArgs,
		RunE:          serveCommand.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().AddFlagSet(serveCommand.Flags())

	rootCmd.AddCommand(serveCommand)
	rootCmd.AddCommand(migrateCmd())

	return rootCmd
}
