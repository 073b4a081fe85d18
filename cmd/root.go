// Package cmd provides the CLI commands for solar.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ivanyeors/solar-design-system/cmd/extract"
	"github.com/ivanyeors/solar-design-system/cmd/report"
	"github.com/ivanyeors/solar-design-system/cmd/resolve"
	"github.com/ivanyeors/solar-design-system/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "solar",
	Short: "Extract and resolve design tokens",
	Long:  `solar flattens Token Studio exports, resolves token references to concrete values, and emits classified SCSS, CSS and JS variable files.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(extract.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(report.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
