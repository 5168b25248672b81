package logging

import (
	"fmt"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

// Mode selects defaults. The TUI owns the terminal, so it logs to a file.
type Mode int

const (
	ModeCLI Mode = iota + 1
	ModeTUI
)

func (m Mode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeCLI:
		return "cli"
	default:
		return "unknown"
	}
}

// Config holds logging settings. Nil fields fall back to the mode defaults.
type Config struct {
	Level  *string `toml:"level,omitempty" yaml:"level,omitempty" json:"level,omitempty"`
	Format *string `toml:"format,omitempty" yaml:"format,omitempty" json:"format,omitempty"`
	Sink   *string `toml:"sink,omitempty" yaml:"sink,omitempty" json:"sink,omitempty"`
	File   *string `toml:"file,omitempty" yaml:"file,omitempty" json:"file,omitempty"`

	MaxSizeMB  *int  `toml:"max_size_mb,omitempty" yaml:"max_size_mb,omitempty" json:"max_size_mb,omitempty"`
	MaxBackups *int  `toml:"max_backups,omitempty" yaml:"max_backups,omitempty" json:"max_backups,omitempty"`
	MaxAgeDays *int  `toml:"max_age_days,omitempty" yaml:"max_age_days,omitempty" json:"max_age_days,omitempty"`
	Compress   *bool `toml:"compress,omitempty" yaml:"compress,omitempty" json:"compress,omitempty"`
}

func DefaultConfig(mode Mode) Config {
	level := "info"
	sink := string(SinkFile)
	format := string(FormatText)

	if mode == ModeCLI {
		level = "warn"
		sink = string(SinkStderr)
	}

	maxSizeMB := 10
	maxBackups := 3
	maxAgeDays := 14
	compress := true

	return Config{
		Level:      &level,
		Format:     &format,
		Sink:       &sink,
		MaxSizeMB:  &maxSizeMB,
		MaxBackups: &maxBackups,
		MaxAgeDays: &maxAgeDays,
		Compress:   &compress,
	}
}

// Merge returns base with every non-nil field of override applied
func Merge(base, override Config) Config {
	out := base
	if override.Level != nil {
		out.Level = override.Level
	}
	if override.Format != nil {
		out.Format = override.Format
	}
	if override.Sink != nil {
		out.Sink = override.Sink
	}
	if override.File != nil {
		out.File = override.File
	}
	if override.MaxSizeMB != nil {
		out.MaxSizeMB = override.MaxSizeMB
	}
	if override.MaxBackups != nil {
		out.MaxBackups = override.MaxBackups
	}
	if override.MaxAgeDays != nil {
		out.MaxAgeDays = override.MaxAgeDays
	}
	if override.Compress != nil {
		out.Compress = override.Compress
	}
	return out
}

func (c Config) Normalize() (Config, error) {
	normalizeString := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.ToLower(strings.TrimSpace(*s))
		if v == "" {
			return nil
		}
		return &v
	}
	c.Level = normalizeString(c.Level)
	c.Format = normalizeString(c.Format)
	c.Sink = normalizeString(c.Sink)
	if c.File != nil {
		v := strings.TrimSpace(*c.File)
		if v == "" {
			c.File = nil
		} else {
			c.File = &v
		}
	}
	for _, n := range []**int{&c.MaxSizeMB, &c.MaxBackups, &c.MaxAgeDays} {
		if *n != nil && **n < 0 {
			zero := 0
			*n = &zero
		}
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Level != nil {
		switch *c.Level {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("logging.level: invalid %q", *c.Level)
		}
	}
	if c.Format != nil {
		switch Format(*c.Format) {
		case FormatText, FormatJSON:
		default:
			return fmt.Errorf("logging.format: invalid %q", *c.Format)
		}
	}
	if c.Sink != nil {
		switch Sink(*c.Sink) {
		case SinkStderr, SinkFile, SinkNone:
		default:
			return fmt.Errorf("logging.sink: invalid %q", *c.Sink)
		}
	}
	return nil
}
