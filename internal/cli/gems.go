package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gemlock/internal/app"
)

type gemsOptions struct {
	GemPaths []string
	Workers  int
}

func newGemsCommand() *cobra.Command {
	opts := gemsOptions{}
	cmd := &cobra.Command{
		Use:   "gems <lockfile>",
		Short: "Locate cached gem archives and print their checksums",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGems(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.GemPaths, "gem-path", nil, "Gem installation directories (default: gem environment gempath)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "Concurrent checksum workers")
	_ = viper.BindPFlag("gem_path", cmd.Flags().Lookup("gem-path"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	return cmd
}

func runGems(cmd *cobra.Command, path string, opts gemsOptions) error {
	service := newAppService()
	result, err := service.Gems(cmd.Context(), app.GemsRequest{
		LockfilePath: path,
		GemPaths:     resolveStrings(cmd, opts.GemPaths, "gem_path", "gem-path"),
		Workers:      resolveInt(cmd, opts.Workers, "workers", "workers"),
	})
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(result.Artifacts, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal gem artifacts").
			WithCause(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
