package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gemlock/internal/app"
	"gemlock/internal/types"
)

type summarizeOptions struct {
	Format string
}

func newSummarizeCommand() *cobra.Command {
	opts := summarizeOptions{}
	cmd := &cobra.Command{
		Use:   "summarize <lockfile>",
		Short: "Print direct dependencies, the dependency graph and resolved versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd, args[0], opts.Format)
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "json", "Output format (json, yaml)")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func runSummarize(cmd *cobra.Command, path string, format string) error {
	service := newAppService()
	result, err := service.Summarize(cmd.Context(), app.SummarizeRequest{LockfilePath: path})
	if err != nil {
		return err
	}
	outputFormat := types.OutputFormat(resolveString(cmd, format, "format", "format"))
	return service.Render(cmd.OutOrStdout(), result.Summary, outputFormat)
}
