package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/crimson-sun/menubot/internal/config"
	"github.com/crimson-sun/menubot/internal/connector"
	"github.com/crimson-sun/menubot/internal/engine"
	"github.com/crimson-sun/menubot/internal/logging"
	"github.com/crimson-sun/menubot/internal/model"
	"github.com/crimson-sun/menubot/internal/output"
	fileout "github.com/crimson-sun/menubot/internal/output/file"
	"github.com/crimson-sun/menubot/internal/output/multi"
	"github.com/crimson-sun/menubot/internal/output/stdout"
	"github.com/crimson-sun/menubot/internal/output/webhook"
	"github.com/crimson-sun/menubot/internal/pipeline"
)

var (
	flagConfig   string
	flagLogLevel string
	flagOutput   string
)

var rootCmd = &cobra.Command{
	Use:   "menubot",
	Short: "Post today's dining hall menu to Slack",
	Long: `Fetches the CampusDish menu page, picks the entrées and sides from the
configured stations and posts them to a Slack incoming webhook.

Settings come from MENUBOT_* environment variables, optionally layered over a
TOML file given with --config or MENUBOT_CONFIG.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPost,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "TOML config file (env: MENUBOT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error (env: MENUBOT_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagOutput, "output", "", "comma-separated outputs: webhook, stdout, file (env: MENUBOT_OUTPUT)")
}

// loadConfig resolves configuration from file, environment and flags, in
// increasing precedence.
func loadConfig() (config.Config, error) {
	path := flagConfig
	if path == "" {
		path = os.Getenv("MENUBOT_CONFIG")
	}

	cfg := config.Load()
	if path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return config.Config{}, err
		}
	}

	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagOutput != "" {
		cfg.Output.Targets = config.ParseTargets(flagOutput)
	}
	return cfg, nil
}

// run executes one pipeline run with the outputs selected in cfg.
func run(cmd *cobra.Command, cfg config.Config) (model.Message, error) {
	if err := cfg.Validate(); err != nil {
		return model.Message{}, fmt.Errorf("invalid configuration:\n%w", err)
	}

	runID := uuid.NewString()
	logging.Init(cfg.HasTarget(config.TargetStdout), logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(slog.Default().With("run_id", runID))

	ctor, err := connector.Get(cfg.Connector.Provider)
	if err != nil {
		return model.Message{}, err
	}
	out, err := buildOutput(cfg, cmd.OutOrStdout())
	if err != nil {
		return model.Message{}, err
	}

	p := pipeline.New(ctor(), engine.New(engine.WithTitle(cfg.Title)), out, pipeline.WithRunID(runID))
	slog.Info("menubot starting",
		"version", config.Version,
		"connector", cfg.Connector.Provider,
		"outputs", cfg.Output.Targets)

	msg, runErr := p.Run(cmd.Context(), connectorConfig(cfg))
	if err := p.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close outputs: %w", err)
	}
	return msg, runErr
}

func connectorConfig(cfg config.Config) connector.ConnectorConfig {
	return connector.ConnectorConfig{
		Provider:  cfg.Connector.Provider,
		Endpoint:  cfg.Connector.Endpoint,
		UserAgent: "menubot/" + config.Version,
		Extra: map[string]string{
			"location_id": cfg.Connector.LocationID,
			"period_id":   cfg.Connector.PeriodID,
			"path":        cfg.Connector.DocumentPath,
			"timeout":     cfg.Timeout.String(),
		},
	}
}

// buildOutput opens every selected output. A single target is returned
// unwrapped.
func buildOutput(cfg config.Config, w io.Writer) (output.Output, error) {
	var outs []output.Output
	for _, t := range cfg.Output.Targets {
		switch t {
		case config.TargetWebhook:
			outs = append(outs, webhook.New(cfg.Output.WebhookURL,
				webhook.WithTimeout(cfg.Timeout),
				webhook.WithHeaders(cfg.Output.WebhookHeaders)))
		case config.TargetStdout:
			outs = append(outs, stdout.NewWriter(w, cfg.Output.Pretty))
		case config.TargetFile:
			f, err := fileout.New(cfg.Output.Path, fileout.WithMaxSize(cfg.Output.MaxSize))
			if err != nil {
				multi.New(outs...).Close()
				return nil, err
			}
			outs = append(outs, f)
		default:
			multi.New(outs...).Close()
			return nil, fmt.Errorf("unknown output %q", t)
		}
	}
	if len(outs) == 1 {
		return outs[0], nil
	}
	return multi.New(outs...), nil
}
