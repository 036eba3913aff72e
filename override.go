package ember

import "strconv"

// ApplyOverride mutates a cloned copy of cfg with "key=value" string
// overrides and returns it, leaving cfg itself untouched. Grounded on the
// teacher's override.go ApplyOverride/applyConfigField, reduced to this
// module's field set.
func (c *Config) ApplyOverride(overrides ...string) (*Config, error) {
	cfg := c.Clone()
	var errs []error

	for _, o := range overrides {
		key, value, err := parseKeyValue(o)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if err := combineErrors(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "level":
		if _, err := ParseSeverity(value); err != nil {
			return fmtErrorf("invalid level %q: %w", value, err)
		}
		cfg.Level = value
	case "directory":
		cfg.Directory = value
	case "name":
		cfg.Name = value
	case "extension":
		cfg.Extension = value
	case "ring_capacity":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmtErrorf("invalid ring_capacity %q: %w", value, err)
		}
		cfg.RingCapacity = n
	case "max_size_mb":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid max_size_mb %q: %w", value, err)
		}
		cfg.MaxSizeMB = n
	case "batch_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmtErrorf("invalid batch_size %q: %w", value, err)
		}
		cfg.BatchSize = n
	case "heartbeat_level":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmtErrorf("invalid heartbeat_level %q: %w", value, err)
		}
		cfg.HeartbeatLevel = n
	case "heartbeat_interval_s":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid heartbeat_interval_s %q: %w", value, err)
		}
		cfg.HeartbeatIntervalS = n
	case "enable_stdout":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid enable_stdout %q: %w", value, err)
		}
		cfg.EnableStdout = b
	case "stdout_target":
		cfg.StdoutTarget = value
	default:
		return fmtErrorf("unknown configuration key %q", key)
	}
	return nil
}
