package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nickelodeon"
)

func newWhichCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "which <app>",
		Short: "Print the configuration file that would be loaded for an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := args[0]
			out := cmd.OutOrStdout()

			if all {
				for _, candidate := range nickelodeon.Candidates(app) {
					fmt.Fprintln(out, candidate)
				}
				return nil
			}

			path, ok := nickelodeon.Resolve(app)
			if !ok {
				return fmt.Errorf("no configuration file found for %q", app)
			}
			fmt.Fprintln(out, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every candidate location in precedence order")
	return cmd
}
