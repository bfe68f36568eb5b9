package main

import (
	"github.com/spf13/cobra"

	"github.com/crimson-sun/menubot/internal/config"
)

var version = config.Version

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("menubot version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
