package main

import (
	"github.com/spf13/cobra"

	"github.com/crimson-sun/menubot/internal/config"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render a menu to stdout without posting it",
	Long: `Renders the menu as the Slack payload JSON on stdout. With a file argument
the page is read from disk; otherwise it is fetched from the configured
connector. Nothing is sent to the webhook or archived.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Connector.Provider = "file"
		cfg.Connector.DocumentPath = args[0]
	}
	cfg.Output.Targets = []string{config.TargetStdout}

	_, err = run(cmd, cfg)
	return err
}
