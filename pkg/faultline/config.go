// config.go holds the read-only configuration shared by every error event.

package faultline

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/strongdm/faultline/pkg/faultline/errortypes"
	"github.com/strongdm/faultline/pkg/faultline/stacktrace"
)

// Config is the process-wide reporting configuration. Events only read it.
type Config struct {
	// Filters lists substrings; metadata keys containing any of them are redacted.
	Filters []string `yaml:"filters"`

	// ErrorReportingLevel is the bitmask of runtime error codes to report.
	// When nil, errortypes.ReportingLevel() is used.
	ErrorReportingLevel *errortypes.Code `yaml:"errorReportingLevel,omitempty"`

	// ProjectRoot marks stack frames under it as in-project.
	ProjectRoot string `yaml:"projectRoot"`

	// StripPath is removed from the front of stack frame file names.
	StripPath string `yaml:"stripPath"`

	ReleaseStage string `yaml:"releaseStage"`

	// NotifyReleaseStages limits delivery to these stages. Empty means all.
	NotifyReleaseStages []string `yaml:"notifyReleaseStages"`

	AppVersion string `yaml:"appVersion"`
	AppType    string `yaml:"appType"`
	Hostname   string `yaml:"hostname"`

	// Context describes where errors happen (a route, a job name).
	Context string `yaml:"context"`

	User map[string]any `yaml:"user"`

	// MetaData is merged into every event delivered by a Notifier.
	MetaData map[string]any `yaml:"metaData"`

	// Logger receives warnings about misuse. Defaults to slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns a configuration that filters password fields and
// reports from the production release stage.
func DefaultConfig() *Config {
	return &Config{
		Filters:      []string{"password"},
		ReleaseStage: "production",
	}
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig and then
// applies FAULTLINE_* environment overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.ReleaseStage = getenv("FAULTLINE_RELEASE_STAGE", c.ReleaseStage)
	c.AppVersion = getenv("FAULTLINE_APP_VERSION", c.AppVersion)
	c.Hostname = getenv("FAULTLINE_HOSTNAME", c.Hostname)

	if v := os.Getenv("FAULTLINE_FILTERS"); v != "" {
		var filters []string
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				filters = append(filters, f)
			}
		}
		c.Filters = filters
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Config) stackOptions() stacktrace.Options {
	return stacktrace.Options{
		ProjectRoot: c.ProjectRoot,
		StripPath:   c.StripPath,
	}
}

func (c *Config) reportingLevel() errortypes.Code {
	if c.ErrorReportingLevel != nil {
		return *c.ErrorReportingLevel
	}
	return errortypes.ReportingLevel()
}

func (c *Config) shouldNotify() bool {
	if len(c.NotifyReleaseStages) == 0 {
		return true
	}
	return slices.Contains(c.NotifyReleaseStages, c.ReleaseStage)
}
