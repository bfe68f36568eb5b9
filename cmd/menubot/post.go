package main

import (
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Fetch today's menu and deliver it to the configured outputs",
	Args:  cobra.NoArgs,
	RunE:  runPost,
}

func init() {
	rootCmd.AddCommand(postCmd)
}

func runPost(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, err = run(cmd, cfg)
	return err
}
