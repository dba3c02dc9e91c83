package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rici4kubicek/software-timer/pkg/log"
	"github.com/rici4kubicek/software-timer/pkg/swtimer"
)

// Policy selects how precondition violations are handled.
type Policy string

const (
	// PolicyPanic aborts on violation (debug default).
	PolicyPanic Policy = "panic"
	// PolicyLog logs the violation and continues.
	PolicyLog Policy = "log"
	// PolicyIgnore silently ignores violations.
	PolicyIgnore Policy = "ignore"
)

// Config is the YAML-backed deployment configuration.
type Config struct {
	// TickUnit names the tick unit for display purposes (e.g. "ms", "us").
	// It is informational; the library never converts units.
	TickUnit string `yaml:"tick_unit"`

	// ViolationPolicy selects the precondition violation handler.
	ViolationPolicy Policy `yaml:"violation_policy"`

	// EventLog is an optional path for the binary (CBOR) event log.
	// Empty disables file capture.
	EventLog string `yaml:"event_log"`

	// ConsoleEvents enables event capture to slog at debug level.
	ConsoleEvents bool `yaml:"console_events"`
}

// Default returns the configuration used when no file is given:
// millisecond display unit, panic on violation, no event capture.
func Default() Config {
	return Config{
		TickUnit:        "ms",
		ViolationPolicy: PolicyPanic,
	}
}

// Parse parses YAML configuration data. Missing fields keep their
// defaults; unknown policies are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config read error: %w", err)
	}
	return Parse(data)
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.ViolationPolicy {
	case PolicyPanic, PolicyLog, PolicyIgnore:
	default:
		return fmt.Errorf("config: unknown violation_policy %q", c.ViolationPolicy)
	}
	if c.TickUnit == "" {
		return fmt.Errorf("config: tick_unit must not be empty")
	}
	return nil
}

// ViolationHandler builds the handler selected by ViolationPolicy.
// The logger is only used by PolicyLog; nil means slog.Default().
func (c Config) ViolationHandler(logger *slog.Logger) swtimer.ViolationHandler {
	switch c.ViolationPolicy {
	case PolicyLog:
		return swtimer.NewSlogHandler(logger)
	case PolicyIgnore:
		return swtimer.NoopHandler
	default:
		return swtimer.PanicHandler
	}
}

// BuildLogger builds the event logger stack selected by EventLog and
// ConsoleEvents. It returns a nil Logger when capture is disabled. The
// returned close function flushes and closes any file sink and is always
// non-nil.
func (c Config) BuildLogger(logger *slog.Logger) (log.Logger, func() error, error) {
	noClose := func() error { return nil }

	var sinks []log.Logger
	closeFn := noClose

	if c.ConsoleEvents {
		if logger == nil {
			logger = slog.Default()
		}
		sinks = append(sinks, log.NewSlogAdapter(logger))
	}
	if c.EventLog != "" {
		fl, err := log.NewFileLogger(c.EventLog)
		if err != nil {
			return nil, noClose, fmt.Errorf("config: event log: %w", err)
		}
		sinks = append(sinks, fl)
		closeFn = fl.Close
	}

	switch len(sinks) {
	case 0:
		return nil, noClose, nil
	case 1:
		return sinks[0], closeFn, nil
	default:
		return log.NewMultiLogger(sinks...), closeFn, nil
	}
}
