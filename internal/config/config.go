package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Version is the current menubot release version.
const Version = "0.3.0"

// Output targets accepted in OutputConfig.Targets.
const (
	TargetWebhook = "webhook"
	TargetStdout  = "stdout"
	TargetFile    = "file"
)

// Config holds all menubot configuration.
type Config struct {
	Connector ConnectorConfig `toml:"connector"`
	Output    OutputConfig    `toml:"output"`
	Title     string          `toml:"title"`
	LogLevel  string          `toml:"log_level"`
	// Timeout bounds each HTTP exchange (fetch and delivery). In a TOML
	// file it is written as a Go duration string.
	Timeout time.Duration `toml:"-"`
}

// ConnectorConfig holds document source settings.
type ConnectorConfig struct {
	Provider     string `toml:"provider"`
	Endpoint     string `toml:"endpoint"`
	LocationID   string `toml:"location_id"`
	PeriodID     string `toml:"period_id"`
	DocumentPath string `toml:"document_path"`
}

// OutputConfig holds delivery settings. WebhookHeaders are sent with every
// webhook POST, e.g. for an authenticating proxy in front of Slack. MaxSize
// is the archive rotation threshold in bytes; 0 disables rotation.
type OutputConfig struct {
	Targets        []string          `toml:"targets"`
	WebhookURL     string            `toml:"webhook_url"`
	WebhookHeaders map[string]string `toml:"webhook_headers"`
	Path           string            `toml:"path"`
	MaxSize        int64             `toml:"max_size"`
	Pretty         bool              `toml:"pretty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Connector: ConnectorConfig{
			Provider:   "campusdish",
			Endpoint:   "https://mit.campusdish.com",
			LocationID: "9333",
			PeriodID:   "1440",
		},
		Output: OutputConfig{
			Targets: []string{TargetWebhook},
			Path:    "menubot.jsonl",
		},
		Title:    "Today's menu",
		LogLevel: "info",
		Timeout:  30 * time.Second,
	}
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	cfg := Default()
	applyEnv(&cfg)
	return cfg
}

// LoadFile decodes a TOML file over the defaults, then applies the
// environment on top. Keys absent from the file keep their defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	// Durations are strings in the file, and the target list must replace
	// the default rather than extend it.
	var extra struct {
		Timeout string `toml:"timeout"`
		Output  struct {
			Targets []string `toml:"targets"`
		} `toml:"output"`
	}
	if err := toml.Unmarshal(data, &extra); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if extra.Timeout != "" {
		d, err := time.ParseDuration(extra.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: timeout %q: %w", path, extra.Timeout, err)
		}
		cfg.Timeout = d
	}
	if extra.Output.Targets != nil {
		cfg.Output.Targets = extra.Output.Targets
	}
	cfg.Output.Targets = normalizeTargets(cfg.Output.Targets)

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Connector.Provider = getenv("MENUBOT_CONNECTOR", cfg.Connector.Provider)
	cfg.Connector.Endpoint = getenv("MENUBOT_ENDPOINT", cfg.Connector.Endpoint)
	cfg.Connector.LocationID = getenv("MENUBOT_LOCATION_ID", cfg.Connector.LocationID)
	cfg.Connector.PeriodID = getenv("MENUBOT_PERIOD_ID", cfg.Connector.PeriodID)
	cfg.Connector.DocumentPath = getenv("MENUBOT_DOCUMENT_PATH", cfg.Connector.DocumentPath)

	// SLACK_WEBHOOK_URL is the name the deployment cron has always used.
	cfg.Output.WebhookURL = getenv("SLACK_WEBHOOK_URL", cfg.Output.WebhookURL)
	cfg.Output.WebhookURL = getenv("MENUBOT_WEBHOOK_URL", cfg.Output.WebhookURL)
	if v := os.Getenv("MENUBOT_OUTPUT"); v != "" {
		cfg.Output.Targets = ParseTargets(v)
	}
	if v := os.Getenv("MENUBOT_WEBHOOK_HEADERS"); v != "" {
		cfg.Output.WebhookHeaders = ParseHeaders(v)
	}
	cfg.Output.Path = getenv("MENUBOT_OUTPUT_PATH", cfg.Output.Path)
	cfg.Output.MaxSize = getenvInt64("MENUBOT_OUTPUT_MAX_SIZE", cfg.Output.MaxSize)
	cfg.Output.Pretty = getenvBool("MENUBOT_OUTPUT_PRETTY", cfg.Output.Pretty)

	cfg.Title = getenv("MENUBOT_TITLE", cfg.Title)
	cfg.LogLevel = getenv("MENUBOT_LOG_LEVEL", cfg.LogLevel)
	cfg.Timeout = getenvDuration("MENUBOT_TIMEOUT", cfg.Timeout)
}

// ParseTargets splits a comma-separated output list, lower-casing and
// dropping empty and repeated entries.
func ParseTargets(s string) []string {
	return normalizeTargets(strings.Split(s, ","))
}

func normalizeTargets(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ParseHeaders reads "Name=value" pairs separated by commas. Entries
// without a name or '=' are ignored.
func ParseHeaders(s string) map[string]string {
	var h map[string]string
	for _, pair := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			continue
		}
		if h == nil {
			h = make(map[string]string)
		}
		h[name] = strings.TrimSpace(value)
	}
	return h
}

// HasTarget reports whether the named output is selected.
func (c Config) HasTarget(name string) bool {
	return contains(c.Output.Targets, name)
}

// Validate checks that the configuration can drive a run. It returns all
// problems joined, not just the first.
func (c Config) Validate() error {
	var errs []error

	if c.Connector.Provider == "" {
		errs = append(errs, errors.New("connector provider must be set (MENUBOT_CONNECTOR)"))
	}
	if c.Connector.Provider == "file" && c.Connector.DocumentPath == "" {
		errs = append(errs, errors.New("file connector requires a document path (MENUBOT_DOCUMENT_PATH)"))
	}

	if len(c.Output.Targets) == 0 {
		errs = append(errs, errors.New("at least one output must be selected (MENUBOT_OUTPUT)"))
	}
	for _, t := range c.Output.Targets {
		switch t {
		case TargetWebhook, TargetStdout, TargetFile:
		default:
			errs = append(errs, fmt.Errorf("unknown output %q (want webhook, stdout or file)", t))
		}
	}
	if c.HasTarget(TargetWebhook) && c.Output.WebhookURL == "" {
		errs = append(errs, errors.New("webhook output requires a webhook URL (SLACK_WEBHOOK_URL or MENUBOT_WEBHOOK_URL)"))
	}
	if c.HasTarget(TargetFile) && c.Output.Path == "" {
		errs = append(errs, errors.New("file output requires a path (MENUBOT_OUTPUT_PATH)"))
	}
	if c.Output.MaxSize < 0 {
		errs = append(errs, fmt.Errorf("output max size must not be negative (MENUBOT_OUTPUT_MAX_SIZE), got %d", c.Output.MaxSize))
	}

	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %v", c.Timeout))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
