// The descriptors command renders the custom resources the test suites
// deploy, useful to inspect or apply them without running a suite.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jboss-intersmash/intersmash-tests/pkg/descriptors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "descriptors",
		Short:        "Inspect the service descriptors of the test suites",
		SilenceUsage: true,
	}
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newListCmd())
	return cmd
}

func newRenderCmd() *cobra.Command {
	var app string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the custom resources of one descriptor as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := descriptors.Render(app)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&app, "app", "", "Name of the descriptor to render")
	if err := cmd.MarkFlagRequired("app"); err != nil {
		panic(err)
	}
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the renderable descriptors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range descriptors.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
