package core

import "gemlock/internal/types"

// CheckConsistency lists direct dependencies and children that have no entry
// in the summary. The summary itself is left untouched.
func CheckConsistency(summary types.Summary) types.ConsistencyReport {
	report := types.ConsistencyReport{
		MissingChildren: map[string][]string{},
	}
	for _, name := range summary.DirectDependencies {
		if _, ok := summary.Entry(name); !ok {
			report.MissingDirect = append(report.MissingDirect, name)
		}
	}
	for _, parent := range summary.PackageNames() {
		children, _ := summary.Children(parent)
		for _, child := range children {
			if _, ok := summary.Entry(child); !ok {
				report.MissingChildren[parent] = append(report.MissingChildren[parent], child)
			}
		}
	}
	return report
}
