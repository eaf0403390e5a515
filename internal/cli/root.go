// Package cli wires the strasak command surface.
package cli

import (
	"github.com/sergei-lamce/STraSAK/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "strasak",
	Short:   "Translation package automation for Trados projects",
	Long:    `Strasak automates creation and import of translation project packages by driving the Trados project-automation host. Export creates one package per target language; import merges returned work back into the project.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
