package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/goldrun/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [suites...]",
		Short: "List configured suites and their discovered tests",
		Long:  "List the suites defined in goldrun.yaml together with the number of test files their patterns match.",
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(context.Background(), domain.ListArgs{
				Config: configPath(),
				Suites: args,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
