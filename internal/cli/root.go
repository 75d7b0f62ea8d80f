// Package cli implements the pyforge command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyforge/pyforge/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "pyforge",
	Short: "pyforge: opinionated Python project scaffolding",
	Long: `pyforge generates production-ready Python project repositories.

Pick a project kind, Python version, framework, and deployment target
and pyforge lays out a src-layout package with pyproject.toml, ruff,
mypy, pytest, pre-commit, CI workflows, and deployment files wired to
work together out of the box.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("pyforge %s\n", version.GetVersion()))
}
