package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gemlock/internal/app"
)

type sbomOptions struct {
	Output    string
	Name      string
	Namespace string
}

func newSBOMCommand() *cobra.Command {
	opts := sbomOptions{}
	cmd := &cobra.Command{
		Use:   "sbom <lockfile>",
		Short: "Write an SPDX document for the resolved gems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSBOM(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "sbom.spdx.json", "SBOM output path")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Document name (default: lockfile directory name)")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", "SPDX document namespace base URL")
	_ = viper.BindPFlag("sbom_namespace", cmd.Flags().Lookup("namespace"))
	return cmd
}

func runSBOM(cmd *cobra.Command, path string, opts sbomOptions) error {
	service := newAppService()
	result, err := service.SBOM(cmd.Context(), app.SBOMRequest{
		LockfilePath: path,
		OutputPath:   opts.Output,
		Name:         opts.Name,
		Namespace:    resolveString(cmd, opts.Namespace, "sbom_namespace", "namespace"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "sbom written: %s (%d packages)\n", result.OutputPath, result.PackageCount)
	return nil
}
