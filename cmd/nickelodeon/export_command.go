package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nickelodeon"
)

func newExportCommand() *cobra.Command {
	var explicitPath string
	var format string

	cmd := &cobra.Command{
		Use:   "export <app>",
		Short: "Evaluate an application's configuration and print it",
		Long: "Resolves the configuration file for the given application codename " +
			"(or uses --path), evaluates it with nickel, and prints the result " +
			"in the requested format.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := nickelodeon.LoadContext[map[string]any](
				cmd.Context(), args[0], explicitPath,
				nickelodeon.WithEvaluator(nickelodeon.NewCLI(
					nickelodeon.WithStderr(cmd.ErrOrStderr()),
				)),
			)
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), format, tree)
		},
	}

	cmd.Flags().StringVarP(&explicitPath, "path", "p", "", "Explicit configuration file, bypassing discovery")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, toml, or yaml")
	return cmd
}

func encode(out io.Writer, format string, tree map[string]any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	case "toml":
		return toml.NewEncoder(out).Encode(tree)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(tree)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
