package ember

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"time"

	"github.com/lixenwraith/config"
)

// Config is the richer, struct-tagged configuration surface offered
// alongside the minimal fileconfig contract spec.md §6 names. It covers the
// subset of the teacher's config.go fields that map onto this module's
// scope: retention, disk-free checks, and adaptive check intervals are
// dropped since spec.md names only size-based rotation and no cleanup
// policy (see DESIGN.md).
type Config struct {
	Level     string `toml:"level"`     // DEBUG, INFO, WARN, ERROR, FATAL
	Directory string `toml:"directory"` // log file directory
	Name      string `toml:"name"`      // base file name, without extension
	Extension string `toml:"extension"`

	RingCapacity int   `toml:"ring_capacity"`
	MaxSizeMB    int64 `toml:"max_size_mb"`
	BatchSize    int   `toml:"batch_size"`

	HeartbeatLevel     int   `toml:"heartbeat_level"`      // 0=disabled, 1=proc, 2=+disk, 3=+sys
	HeartbeatIntervalS int64 `toml:"heartbeat_interval_s"`

	EnableStdout bool   `toml:"enable_stdout"`
	StdoutTarget string `toml:"stdout_target"` // "stdout" or "stderr"
}

var defaultConfig = Config{
	Level:        "INFO",
	Directory:    "./logs",
	Name:         "app",
	Extension:    "log",
	RingCapacity: defaultRingCapacity,
	MaxSizeMB:    100,
	BatchSize:    defaultBatchSize,

	HeartbeatLevel:     0,
	HeartbeatIntervalS: int64(defaultHeartbeatInterval / time.Second),

	EnableStdout: false,
	StdoutTarget: "stdout",
}

// DefaultConfig returns a copy of the package defaults.
func DefaultConfig() *Config {
	cfg := defaultConfig
	return &cfg
}

// NewConfigFromFile loads a TOML configuration file via
// github.com/lixenwraith/config, falling back silently to defaults for a
// missing file (matching config.ErrConfigNotFound's graceful-skip contract),
// and propagating any other load error.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()
	if err := loader.RegisterStruct("ember.", *cfg); err != nil {
		return nil, fmt.Errorf("ember: registering config struct: %w", err)
	}
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("ember: loading config from %s: %w", path, err)
	}
	if err := extractConfig(loader, "ember.", cfg); err != nil {
		return nil, fmt.Errorf("ember: extracting config values: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// extractConfig copies loader values into cfg's toml-tagged fields via
// reflection, leaving unset keys at their existing (default) value.
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("toml")
		if tag == "" {
			continue
		}
		val, found := loader.Get(prefix + tag)
		if !found {
			continue
		}
		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

func setFieldValue(field reflect.Value, val any) error {
	rv := reflect.ValueOf(val)
	if !rv.Type().AssignableTo(field.Type()) {
		if rv.Type().ConvertibleTo(field.Type()) {
			rv = rv.Convert(field.Type())
		} else {
			return fmt.Errorf("cannot assign %T to %s", val, field.Type())
		}
	}
	field.Set(rv)
	return nil
}

func (c *Config) validate() error {
	if _, err := ParseSeverity(c.Level); err != nil {
		return fmtErrorf("config: %w", err)
	}
	if c.MaxSizeMB < 0 {
		return fmtErrorf("config: max_size_mb cannot be negative: %d", c.MaxSizeMB)
	}
	if c.HeartbeatLevel < 0 || c.HeartbeatLevel > 3 {
		return fmtErrorf("config: heartbeat_level must be 0-3: %d", c.HeartbeatLevel)
	}
	if c.StdoutTarget != "stdout" && c.StdoutTarget != "stderr" {
		return fmtErrorf("config: invalid stdout_target %q", c.StdoutTarget)
	}
	return nil
}

// ToOptions bridges a loaded Config into the Option values New expects.
func (c *Config) ToOptions() []Option {
	level, _ := ParseSeverity(c.Level)
	opts := []Option{
		WithFilePath(filepath.Join(c.Directory, c.Name+"."+c.Extension)),
		WithLevel(level),
		WithMaxFileSize(c.MaxSizeMB * 1024 * 1024),
	}
	if c.RingCapacity > 0 {
		opts = append(opts, WithRingCapacity(c.RingCapacity))
	}
	if c.BatchSize > 0 {
		opts = append(opts, WithBatchSize(c.BatchSize))
	}
	if c.HeartbeatLevel > 0 {
		opts = append(opts, WithHeartbeat(c.HeartbeatLevel, time.Duration(c.HeartbeatIntervalS)*time.Second))
	}
	return opts
}

// Clone returns a deep copy (the struct has no reference fields, so a value
// copy suffices).
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
