package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gemlock/internal/app"
)

func newFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find [root]",
		Short: "List Gemfile.lock and gems.locked files below a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runFind(cmd, root)
		},
	}
}

func runFind(cmd *cobra.Command, root string) error {
	service := newAppService()
	result, err := service.Find(app.FindRequest{Root: root})
	if err != nil {
		return err
	}
	for _, path := range result.Paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
