package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"gemlock/internal/app"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <lockfile>",
		Short: "Show lockfile sources, platforms and unresolved references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

func runInspect(cmd *cobra.Command, path string) error {
	service := newAppService()
	result, err := service.Inspect(cmd.Context(), app.InspectRequest{LockfilePath: path})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "packages: %d\n", result.PackageCount)
	fmt.Fprintf(out, "direct dependencies: %d\n", result.DirectCount)
	fmt.Fprintln(out, "sources:")
	for _, source := range result.Sources {
		location := source.Remote
		if source.Revision != "" {
			location = fmt.Sprintf("%s@%s", location, source.Revision)
		}
		fmt.Fprintf(out, "- %s %s\n", source.Type, location)
	}
	if len(result.Platforms) > 0 {
		fmt.Fprintf(out, "platforms: %s\n", strings.Join(result.Platforms, ", "))
	}
	if result.RubyVersion != "" {
		fmt.Fprintf(out, "ruby: %s\n", result.RubyVersion)
	}
	if result.BundledWith != "" {
		fmt.Fprintf(out, "bundled with: %s\n", result.BundledWith)
	}
	if result.ChecksumCount > 0 {
		fmt.Fprintf(out, "checksums: %d\n", result.ChecksumCount)
	}

	report := result.Report
	if report.Consistent() {
		fmt.Fprintln(out, "all referenced gems are resolved")
		return nil
	}
	if len(report.MissingDirect) > 0 {
		fmt.Fprintf(out, "direct dependencies without spec: %s\n", strings.Join(report.MissingDirect, ", "))
	}
	parents := make([]string, 0, len(report.MissingChildren))
	for parent := range report.MissingChildren {
		parents = append(parents, parent)
	}
	sort.Strings(parents)
	for _, parent := range parents {
		fmt.Fprintf(out, "%s depends on unresolved: %s\n", parent, strings.Join(report.MissingChildren[parent], ", "))
	}
	return nil
}
