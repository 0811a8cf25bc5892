package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "nickelodeon",
		Short:         "Locate and export Nickel application configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newWhichCommand())
	root.AddCommand(newExportCommand())

	return root
}
